package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit color as sent to the terminal
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack     = RGB{0, 0, 0}
	RGBWhite     = RGB{255, 255, 255}
	RgbSpace     = RGB{2, 2, 8}
	RgbHUD       = RGB{180, 190, 210}
	RgbHUDDim    = RGB{100, 100, 110}
	RgbHUDAccent = RGB{255, 200, 50}
)

// FromColorful converts a colorful color, clamping out-of-gamut values
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Colorful converts back for perceptual blending
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Tcell returns the terminal color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

// Scale multiplies every channel by f
func Scale(c RGB, f float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * f),
		G: clamp(float64(c.G) * f),
		B: clamp(float64(c.B) * f),
	}
}

// Blend mixes src over dst with alpha in [0, 1]
func Blend(dst, src RGB, alpha float64) RGB {
	if alpha >= 1 {
		return src
	}
	if alpha <= 0 {
		return dst
	}
	inv := 1 - alpha
	return RGB{
		R: clamp(float64(dst.R)*inv + float64(src.R)*alpha),
		G: clamp(float64(dst.G)*inv + float64(src.G)*alpha),
		B: clamp(float64(dst.B)*inv + float64(src.B)*alpha),
	}
}

// Add sums channels, saturating at 255
func Add(a, b RGB) RGB {
	return RGB{
		R: clamp(float64(a.R) + float64(b.R)),
		G: clamp(float64(a.G) + float64(b.G)),
		B: clamp(float64(a.B) + float64(b.B)),
	}
}

// Max takes the per-channel maximum
func Max(a, b RGB) RGB {
	return RGB{R: max(a.R, b.R), G: max(a.G, b.G), B: max(a.B, b.B)}
}

// Screen is 1-(1-a)(1-b), brightening without overflow
func Screen(a, b RGB) RGB {
	ch := func(x, y uint8) uint8 {
		return 255 - uint8((uint16(255-x)*uint16(255-y))/255)
	}
	return RGB{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B)}
}
