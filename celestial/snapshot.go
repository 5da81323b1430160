package celestial

import "gonum.org/v1/gonum/spatial/r3"

// Vec is the wire form of a vector
type Vec [3]float64

func vec(v r3.Vec) Vec {
	return Vec{v.X, v.Y, v.Z}
}

// R3 converts back to the simulation vector type
func (v Vec) R3() r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// Snapshot is a detached copy of one body
type Snapshot struct {
	Name     string  `json:"name"`
	Kind     Kind    `json:"kind"`
	Mass     float64 `json:"mass"`
	Radius   float64 `json:"radius"`
	Position Vec     `json:"position"`
	Velocity Vec     `json:"velocity"`
	Rotation Vec     `json:"rotation"`
	Scale    float64 `json:"scale"`
	Color    string  `json:"color"`
	Visible  bool    `json:"visible"`

	Label     *LabelSnapshot     `json:"label,omitempty"`
	Ring      *RingSnapshot      `json:"ring,omitempty"`
	Light     *LightSnapshot     `json:"light,omitempty"`
	Tail      []Vec              `json:"tail,omitempty"`
	TailColor string             `json:"tail_color,omitempty"`
	Particles []ParticleSnapshot `json:"particles,omitempty"`
	Orbits    int                `json:"orbits,omitempty"`
}

// LabelSnapshot is a planet's floating name tag
type LabelSnapshot struct {
	Text     string `json:"text"`
	Position Vec    `json:"position"`
	Visible  bool   `json:"visible"`
}

// RingSnapshot is a planet's orbit guide
type RingSnapshot struct {
	Radius    float64 `json:"radius"`
	HalfWidth float64 `json:"half_width"`
	Opacity   float64 `json:"opacity"`
	Visible   bool    `json:"visible"`
}

// LightSnapshot is the star's point light
type LightSnapshot struct {
	Intensity float64 `json:"intensity"`
	Distance  float64 `json:"distance"`
	Decay     float64 `json:"decay"`
	Color     string  `json:"color"`
}

// ParticleSnapshot is one asteroid
type ParticleSnapshot struct {
	Position Vec     `json:"position"`
	Rotation Vec     `json:"rotation"`
	Size     float64 `json:"size"`
}
