package celestial

import "gonum.org/v1/gonum/spatial/r3"

// Transform is the renderable pose of a body
// Kept in lock-step with the simulated state by Object
type Transform struct {
	Position r3.Vec
	Rotation r3.Vec // Euler angles, radians
	Scale    float64
	Visible  bool
}

func newTransform(pos r3.Vec) Transform {
	return Transform{Position: pos, Scale: 1, Visible: true}
}
