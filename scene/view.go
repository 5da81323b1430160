package scene

import (
	"github.com/lixenwraith/orrery/celestial"
	"github.com/lixenwraith/orrery/starfield"
)

// Snapshot returns a detached copy of the whole scene
func (s *Scene) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *Scene) snapshot() Snapshot {
	snap := Snapshot{
		Tick:           s.tick,
		Time:           s.simTime,
		Speed:          s.speed,
		StarSize:       s.starSize,
		Mode:           s.mode.String(),
		OrbitsVisible:  s.orbitsVisible,
		LabelsVisible:  s.labelsVisible,
		StarfieldClock: s.stars.Clock(),
		Collisions:     s.collisions,
		Bodies:         make([]celestial.Snapshot, len(s.bodies)),
		Camera:         s.camera.State(),
	}
	for i, b := range s.bodies {
		snap.Bodies[i] = b.Snapshot()
	}
	return snap
}

// FrameInto fills f for rendering, reusing f.Stars storage
func (s *Scene) FrameInto(f *Frame) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f.Snapshot = s.snapshot()
	f.Camera = *s.camera
	f.Stars = f.Stars[:0]
	s.stars.Each(func(st *starfield.Star) {
		f.Stars = append(f.Stars, *st)
	})
}

// Starfield returns the static description of the background
func (s *Scene) Starfield() starfield.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stars.Snapshot()
}

// Body returns a snapshot of the named body
func (s *Scene) Body(name string) (celestial.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.byName[name]
	if !ok {
		return celestial.Snapshot{}, ErrUnknownBody
	}
	return b.Snapshot(), nil
}

// TickCount returns completed ticks
func (s *Scene) TickCount() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tick
}

// Time returns accumulated simulation time
func (s *Scene) Time() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.simTime
}
