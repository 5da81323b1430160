// Package starfield generates and animates the distant background stars
package starfield

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/vmath"
)

// Class is a star color category
type Class uint8

const (
	ClassWhite Class = iota
	ClassBlue
	ClassRed
	ClassYellow
)

// channelRange bounds each RGB channel of a class, in [0, 1]
type channelRange struct {
	r, g, b [2]float64
}

var classRanges = [...]channelRange{
	ClassWhite:  {r: [2]float64{0.9, 1}, g: [2]float64{0.9, 1}, b: [2]float64{0.9, 1}},
	ClassBlue:   {r: [2]float64{0.8, 1}, g: [2]float64{0.9, 1}, b: [2]float64{1, 1}},
	ClassRed:    {r: [2]float64{1, 1}, g: [2]float64{0.7, 1}, b: [2]float64{0.7, 1}},
	ClassYellow: {r: [2]float64{1, 1}, g: [2]float64{1, 1}, b: [2]float64{0.7, 1}},
}

// Star is one background point
type Star struct {
	Position  r3.Vec
	Class     Class
	BaseSize  float64
	BaseColor colorful.Color

	Flickers bool
	Phase    float64
	Speed    float64

	// Current values after flicker
	Size  float64
	Color colorful.Color
}

// Field is the full background sphere
type Field struct {
	stars      []Star
	radius     float64
	clock      float64
	flickerMin float64
	flickerMax float64
	flickering int
}

// Generate places cfg.Count stars uniformly on a sphere
func Generate(cfg config.StarfieldConfig, rng *rand.Rand) *Field {
	f := &Field{
		stars:      make([]Star, cfg.Count),
		radius:     cfg.Radius,
		flickerMin: cfg.FlickerMin,
		flickerMax: cfg.FlickerMax,
	}

	for i := range f.stars {
		x, y, z := vmath.UnitSphere(rng)
		s := Star{
			Position: r3.Vec{X: x * cfg.Radius, Y: y * cfg.Radius, Z: z * cfg.Radius},
			BaseSize: vmath.Uniform(rng, cfg.MinSize, cfg.MaxSize),
			Class:    pickClass(rng.Float64(), cfg),
		}

		cr := classRanges[s.Class]
		s.BaseColor = colorful.Color{
			R: vmath.Uniform(rng, cr.r[0], cr.r[1]),
			G: vmath.Uniform(rng, cr.g[0], cr.g[1]),
			B: vmath.Uniform(rng, cr.b[0], cr.b[1]),
		}
		s.Size = s.BaseSize
		s.Color = s.BaseColor

		if rng.Float64() < cfg.FlickerPercent {
			s.Flickers = true
			s.Phase = rng.Float64() * vmath.Tau
			s.Speed = cfg.FlickerSpeed * (0.5 + rng.Float64()*0.5)
			f.flickering++
		}
		f.stars[i] = s
	}
	return f
}

// pickClass maps u ∈ [0, 1) onto the cumulative class percentages
func pickClass(u float64, cfg config.StarfieldConfig) Class {
	switch {
	case u < cfg.WhitePercent:
		return ClassWhite
	case u < cfg.WhitePercent+cfg.BluePercent:
		return ClassBlue
	case u < cfg.WhitePercent+cfg.BluePercent+cfg.RedPercent:
		return ClassRed
	default:
		return ClassYellow
	}
}

// Update advances the flicker clock by elapsed seconds and refreshes flickering stars
func (f *Field) Update(elapsed float64) {
	f.clock += elapsed
	if f.flickering == 0 {
		return
	}

	for i := range f.stars {
		s := &f.stars[i]
		if !s.Flickers {
			continue
		}
		factor := f.Factor(s)
		s.Size = s.BaseSize * factor
		s.Color = colorful.Color{R: s.BaseColor.R * factor, G: s.BaseColor.G * factor, B: s.BaseColor.B * factor}
	}
}

// Factor returns the current flicker multiplier for s
// Two-level: max while sin(clock·speed + phase) > 0, min otherwise
func (f *Field) Factor(s *Star) float64 {
	if !s.Flickers {
		return 1
	}
	if math.Sin(f.clock*s.Speed+s.Phase) > 0 {
		return f.flickerMax
	}
	return f.flickerMin
}

// Clock returns accumulated flicker time in seconds
func (f *Field) Clock() float64 {
	return f.clock
}

// Radius returns the sphere radius
func (f *Field) Radius() float64 {
	return f.radius
}

// Len returns the star count
func (f *Field) Len() int {
	return len(f.stars)
}

// Flickering returns how many stars flicker
func (f *Field) Flickering() int {
	return f.flickering
}

// Stars returns a copy of the current star states
func (f *Field) Stars() []Star {
	out := make([]Star, len(f.stars))
	copy(out, f.stars)
	return out
}

// Each calls fn for every star without copying
func (f *Field) Each(fn func(s *Star)) {
	for i := range f.stars {
		fn(&f.stars[i])
	}
}
