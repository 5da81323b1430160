package renderer

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orrery/render"
)

var fallbackColor = render.RGB{R: 170, G: 170, B: 170}

// hexRGB parses a snapshot color, falling back to grey
func hexRGB(s string) render.RGB {
	c, err := colorful.Hex(s)
	if err != nil {
		return fallbackColor
	}
	return render.FromColorful(c)
}

// lighten blends c toward white in Lab space so hue survives
func lighten(c render.RGB, t float64) render.RGB {
	return render.FromColorful(c.Colorful().BlendLab(colorful.Color{R: 1, G: 1, B: 1}, t))
}
