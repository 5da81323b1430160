package scene

import (
	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/celestial"
	"github.com/lixenwraith/orrery/starfield"
)

// Snapshot is a consistent, detached copy of the scene after a tick
type Snapshot struct {
	Tick           uint64               `json:"tick"`
	Time           float64              `json:"time"`
	Speed          float64              `json:"speed"`
	StarSize       float64              `json:"star_size"`
	Mode           string               `json:"mode"`
	OrbitsVisible  bool                 `json:"orbits_visible"`
	LabelsVisible  bool                 `json:"labels_visible"`
	StarfieldClock float64              `json:"starfield_clock"`
	Collisions     int                  `json:"collisions"`
	Bodies         []celestial.Snapshot `json:"bodies"`
	Camera         camera.State         `json:"camera"`
}

// Frame is what a renderer needs for one draw: the snapshot, current star states and a camera copy
// Stars is reused across FrameInto calls
type Frame struct {
	Snapshot
	Stars  []starfield.Star
	Camera camera.Camera
}

// Body returns the snapshot of the named body
func (s *Snapshot) Body(name string) (celestial.Snapshot, bool) {
	for _, b := range s.Bodies {
		if b.Name == name {
			return b, true
		}
	}
	return celestial.Snapshot{}, false
}
