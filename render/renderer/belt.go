package renderer

import (
	"math"

	"github.com/lixenwraith/orrery/celestial"
	"github.com/lixenwraith/orrery/render"
)

// BeltRenderer draws asteroid belt particles
type BeltRenderer struct{}

// NewBeltRenderer creates the belt renderer
func NewBeltRenderer() *BeltRenderer {
	return &BeltRenderer{}
}

// Render plots each particle; larger rocks get a heavier glyph
func (r *BeltRenderer) Render(ctx render.Context, buf *render.Buffer) {
	for i := range ctx.Frame.Bodies {
		b := &ctx.Frame.Bodies[i]
		if b.Kind != celestial.KindBelt || !b.Visible {
			continue
		}
		base := hexRGB(b.Color)

		for _, p := range b.Particles {
			pt, ok := ctx.Projector.Project(p.Position.R3())
			if !ok || !ctx.Projector.InBounds(pt) {
				continue
			}
			glyph := '.'
			if p.Size > 0.3 {
				glyph = ':'
			}
			// tumble phase varies shade so the belt does not read as a flat band
			shade := 0.7 + 0.15*float64(int(math.Abs(p.Rotation[1])*10)%3)
			buf.Set(int(pt.X), int(pt.Y), glyph, render.Scale(base, shade), render.RGB{}, render.BlendFgOnly, 1, pt.Dist)
		}
	}
}
