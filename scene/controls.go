package scene

import (
	"fmt"
	"log"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/orrery/vmath"
)

// SetSimulationSpeed sets the multiplier applied to the nominal step from the next tick
// Negative values clamp to 0 (frozen); NaN and infinities are ignored
func (s *Scene) SetSimulationSpeed(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.speed = math.Max(v, 0)
	s.statSpeed.Store(s.speed)
}

// SimulationSpeed returns the current multiplier
func (s *Scene) SimulationSpeed() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.speed
}

// SetStarSize rescales the star to scale × its configured radius
// Values below MinStarSize clamp to it; NaN and infinities are ignored
func (s *Scene) SetStarSize(scale float64) {
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setStarSize(scale)
}

func (s *Scene) setStarSize(scale float64) {
	scale = math.Max(scale, MinStarSize)
	s.starSize = scale
	s.star.Resize(s.star.BaseRadius() * scale)
	s.statStarSize.Store(scale)
}

// StarSize returns the current star size multiplier
func (s *Scene) StarSize() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.starSize
}

// SetOrbitsVisible shows or hides every planet's orbit ring
func (s *Scene) SetOrbitsVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setOrbitsVisible(visible)
}

func (s *Scene) setOrbitsVisible(visible bool) {
	s.orbitsVisible = visible
	for _, p := range s.planets {
		p.SetOrbitVisible(visible)
	}
}

// SetLabelsVisible shows or hides every planet's label
func (s *Scene) SetLabelsVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLabelsVisible(visible)
}

func (s *Scene) setLabelsVisible(visible bool) {
	s.labelsVisible = visible
	for _, p := range s.planets {
		p.SetLabelVisible(visible)
	}
}

// OrbitsVisible reports the orbit ring toggle
func (s *Scene) OrbitsVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orbitsVisible
}

// LabelsVisible reports the label toggle
func (s *Scene) LabelsVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.labelsVisible
}

// SetTrackingTarget makes the camera follow the named body; empty name stops tracking
func (s *Scene) SetTrackingTarget(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name != "" {
		if _, ok := s.byName[name]; !ok {
			return fmt.Errorf("track %q: %w", name, ErrUnknownBody)
		}
	}
	s.camera.Track(name)
	s.statTracking.Store(name)
	return nil
}

// SetMode switches stepping mode from the next tick
// Entering gravity mode seeds planets with circular-orbit velocities around the star;
// returning to prescribed mode restores their configured angular rates
func (s *Scene) SetMode(m Mode) error {
	if m != ModePrescribed && m != ModeGravity {
		return fmt.Errorf("set mode: unknown mode %d", m)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setMode(m)
	return nil
}

func (s *Scene) setMode(m Mode) {
	if m == s.mode && s.statMode.Load() != "" {
		return
	}
	s.mode = m

	switch m {
	case ModeGravity:
		for _, p := range s.planets {
			r := vmath.HorizontalDistance(r3.Sub(p.Position(), s.star.Position()))
			p.SetVelocity(s.calc.CircularOrbitVelocity(p, s.star, r))
		}
	default:
		for i, p := range s.planets {
			p.SetVelocity(s.prescribed[i])
		}
	}
	s.statMode.Store(m.String())
	log.Printf("scene: mode %s", m)
}

// Mode returns the current stepping mode
func (s *Scene) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// OrbitCamera rotates and zooms the free camera; zoom is a distance multiplier, 1 for none
func (s *Scene) OrbitCamera(dAzimuth, dElevation, zoom float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.camera.Orbit(dAzimuth, dElevation)
	if zoom != 1 {
		s.camera.Zoom(zoom)
	}
}

// BodyNames lists bodies in update order
func (s *Scene) BodyNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, len(s.bodies))
	for i, b := range s.bodies {
		names[i] = b.Name()
	}
	return names
}

// PlanetNames lists planets innermost-first as configured
func (s *Scene) PlanetNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, len(s.planets))
	for i, p := range s.planets {
		names[i] = p.Name()
	}
	return names
}

// Tracking returns the tracked body name
func (s *Scene) Tracking() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.camera.Tracking()
}
