package render

import (
	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/status"
)

// Context provides frame state for renderers, passed by value
type Context struct {
	Frame     *scene.Frame
	Projector *camera.Projector

	// Screen dimensions; the 3D view occupies the rows above the HUD
	Width      int
	Height     int
	ViewHeight int

	Paused      bool
	FrameNumber uint64
	Status      *status.Registry
}
