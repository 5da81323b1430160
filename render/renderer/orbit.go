package renderer

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/orrery/celestial"
	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/vmath"
)

const (
	orbitMinSegments = 64
	orbitMaxSegments = 720
)

// OrbitRenderer traces each visible planet ring on the horizontal plane
type OrbitRenderer struct{}

// NewOrbitRenderer creates the orbit ring renderer
func NewOrbitRenderer() *OrbitRenderer {
	return &OrbitRenderer{}
}

// Render samples every ring densely enough to leave no gaps at typical zoom
func (r *OrbitRenderer) Render(ctx render.Context, buf *render.Buffer) {
	for i := range ctx.Frame.Bodies {
		b := &ctx.Frame.Bodies[i]
		if b.Kind != celestial.KindPlanet || b.Ring == nil || !b.Ring.Visible {
			continue
		}

		// Ring opacity is tuned for additive GL blending; terminals need a floor to stay readable
		fg := render.Scale(hexRGB(b.Color), math.Max(b.Ring.Opacity*2, 0.35))
		segments := int(vmath.Clamp(vmath.Tau*b.Ring.Radius*2, orbitMinSegments, orbitMaxSegments))
		lastX, lastY := -1, -1

		for s := 0; s < segments; s++ {
			theta := vmath.Tau * float64(s) / float64(segments)
			sin, cos := math.Sincos(theta)
			p := r3.Vec{X: b.Ring.Radius * cos, Z: b.Ring.Radius * sin}

			pt, ok := ctx.Projector.Project(p)
			if !ok || !ctx.Projector.InBounds(pt) {
				continue
			}
			x, y := int(pt.X), int(pt.Y)
			if x == lastX && y == lastY {
				continue
			}
			lastX, lastY = x, y
			buf.Set(x, y, '·', fg, render.RGB{}, render.BlendFgOnly, 1, pt.Dist)
		}
	}
}
