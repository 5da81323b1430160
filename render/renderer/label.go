package renderer

import (
	"unicode/utf8"

	"github.com/lixenwraith/orrery/render"
)

// LabelRenderer writes planet names centered above each planet
type LabelRenderer struct{}

// NewLabelRenderer creates the label renderer
func NewLabelRenderer() *LabelRenderer {
	return &LabelRenderer{}
}

// Render draws visible labels over everything except the HUD
func (r *LabelRenderer) Render(ctx render.Context, buf *render.Buffer) {
	for i := range ctx.Frame.Bodies {
		b := &ctx.Frame.Bodies[i]
		if b.Label == nil || !b.Label.Visible || !b.Visible {
			continue
		}
		pt, ok := ctx.Projector.Project(b.Label.Position.R3())
		if !ok || pt.Y < 0 || pt.Y >= float64(ctx.ViewHeight) {
			continue
		}
		x := int(pt.X) - utf8.RuneCountInString(b.Label.Text)/2
		buf.WriteString(x, int(pt.Y), b.Label.Text, lighten(hexRGB(b.Color), 0.5))
	}
}

