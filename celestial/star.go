package celestial

import (
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/orrery/config"
)

// StarSpinRate is the star's self-rotation in radians per unit of simulation time
// Equals 0.001 per nominal 0.01 tick at speed 1
const StarSpinRate = 0.1

// Light is the point light a star emits
type Light struct {
	Intensity float64
	Distance  float64
	Decay     float64
	Color     colorful.Color
}

// Star is the central light-emitting body
// It holds position through zero velocity and is anchored in gravity mode
type Star struct {
	Object
	baseRadius float64
	light      Light
}

// NewStar builds an active star from its record
func NewStar(cfg config.StarConfig) *Star {
	mat := NewMaterial(cfg.Color.Color, cfg.Texture)
	return &Star{
		Object:     newObject(KindStar, config.StarName, cfg.Mass, cfg.Radius, cfg.Position.Vec(), cfg.Velocity.Vec(), mat),
		baseRadius: cfg.Radius,
		light: Light{
			Intensity: cfg.Intensity,
			Distance:  cfg.LightDistance,
			Decay:     cfg.LightDecay,
			Color:     cfg.Color.Color,
		},
	}
}

// Update runs base motion then spins the star about Y
func (s *Star) Update(dt float64, bodies []Body) {
	s.Object.Update(dt, bodies)
	s.rotate(r3.Vec{Y: StarSpinRate * dt})
}

// Integrate keeps the star anchored: forces are discarded
func (s *Star) Integrate(dt float64) {
	s.acceleration = r3.Vec{}
	s.Update(dt, nil)
}

// Resize rebuilds the star geometry at radius, preserving identity
func (s *Star) Resize(radius float64) {
	if radius <= 0 {
		return
	}
	s.setRadius(radius)
	s.setScale(radius / s.baseRadius)
}

// BaseRadius returns the configured radius
func (s *Star) BaseRadius() float64 {
	return s.baseRadius
}

// Light returns the star's light parameters
func (s *Star) Light() Light {
	return s.light
}

// Snapshot includes light parameters
func (s *Star) Snapshot() Snapshot {
	snap := s.baseSnapshot()
	snap.Light = &LightSnapshot{
		Intensity: s.light.Intensity,
		Distance:  s.light.Distance,
		Decay:     s.light.Decay,
		Color:     s.light.Color.Hex(),
	}
	return snap
}
