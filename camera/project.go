package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/orrery/vmath"
)

// Projector maps world points onto a character grid
// cellAspect is the height/width ratio of a cell, about 2 for terminals
type Projector struct {
	view       mgl64.Mat4
	proj       mgl64.Mat4
	width      int
	height     int
	cellAspect float64
	focal      float64 // rows per unit at unit view depth
	near, far  float64
}

// Point is a projected position; X grows right, Y grows down
type Point struct {
	X, Y  float64
	Depth float64 // normalized [0, 1], smaller is nearer
	Dist  float64 // view-space distance along the view axis
}

// NewProjector snapshots the camera matrices for a width×height grid
func NewProjector(c *Camera, width, height int, cellAspect float64) *Projector {
	if cellAspect <= 0 {
		cellAspect = 1
	}
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / (float64(height) * cellAspect)
	}
	return &Projector{
		view:       c.View(),
		proj:       c.Projection(aspect),
		width:      width,
		height:     height,
		cellAspect: cellAspect,
		focal:      float64(height) / 2 / math.Tan(mgl64.DegToRad(c.fov)/2),
		near:       c.near,
		far:        c.far,
	}
}

// Project maps p to grid coordinates; ok is false behind the camera or outside the clip range
func (pr *Projector) Project(p r3.Vec) (Point, bool) {
	obj := vmath.ToGL(p)
	eye := pr.view.Mul4x1(obj.Vec4(1))
	dist := -eye.Z()
	if dist < pr.near || dist > pr.far {
		return Point{}, false
	}

	win := mgl64.Project(obj, pr.view, pr.proj, 0, 0, pr.width, pr.height)
	return Point{
		X:     win[0],
		Y:     float64(pr.height) - win[1],
		Depth: win[2],
		Dist:  dist,
	}, true
}

// Radius returns the on-screen radius in rows of a sphere of radius r at view distance dist
func (pr *Projector) Radius(r, dist float64) float64 {
	if dist <= 0 {
		return 0
	}
	return r * pr.focal / dist
}

// CellAspect returns the configured cell height/width ratio
func (pr *Projector) CellAspect() float64 {
	return pr.cellAspect
}

// Size returns grid dimensions
func (pr *Projector) Size() (int, int) {
	return pr.width, pr.height
}

// InBounds reports whether pt falls on the grid
func (pr *Projector) InBounds(pt Point) bool {
	return pt.X >= 0 && pt.X < float64(pr.width) && pt.Y >= 0 && pt.Y < float64(pr.height)
}
