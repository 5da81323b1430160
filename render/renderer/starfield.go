package renderer

import (
	"github.com/lixenwraith/orrery/render"
)

// StarfieldRenderer draws background stars as single glyphs sized by their current size
type StarfieldRenderer struct{}

// NewStarfieldRenderer creates the background renderer
func NewStarfieldRenderer() *StarfieldRenderer {
	return &StarfieldRenderer{}
}

// starGlyph picks a glyph by current star size
func starGlyph(size float64) rune {
	switch {
	case size >= 7:
		return '*'
	case size >= 3:
		return '+'
	case size >= 1:
		return '·'
	default:
		return '.'
	}
}

// Render draws all stars in front of the camera
func (r *StarfieldRenderer) Render(ctx render.Context, buf *render.Buffer) {
	for i := range ctx.Frame.Stars {
		s := &ctx.Frame.Stars[i]
		pt, ok := ctx.Projector.Project(s.Position)
		if !ok || !ctx.Projector.InBounds(pt) {
			continue
		}
		fg := render.FromColorful(s.Color)
		buf.Set(int(pt.X), int(pt.Y), starGlyph(s.Size), fg, render.RGB{}, render.BlendMax, 1, pt.Dist)
	}
}
