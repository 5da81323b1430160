package celestial

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/vmath"
)

const (
	// PlanetSpinPerTick is the self-rotation applied on every update, independent of dt
	PlanetSpinPerTick = 0.005

	// LabelHeight is the label's offset above the planet center
	LabelHeight = 4.0

	// RingHalfWidth is half the orbit ring's radial thickness
	RingHalfWidth = 0.1

	// RingOpacity is the orbit ring's alpha
	RingOpacity = 0.2
)

// OrbitRing is the circular guide drawn along a planet's orbit
type OrbitRing struct {
	Radius    float64
	HalfWidth float64
	Opacity   float64
	Visible   bool
}

// Label is the planet name tag floating above it
type Label struct {
	Text    string
	Offset  r3.Vec
	Visible bool
}

// Planet orbits the origin on a circle in the horizontal plane
// velocity.Z is interpreted as angular rate about Y
type Planet struct {
	Object
	ring  OrbitRing
	label Label

	swept  float64 // radians since last completed orbit
	orbits int
}

// NewPlanet builds a planet at its placed position
func NewPlanet(p config.PlacedPlanet) *Planet {
	mat := NewMaterial(p.Color.Color, p.Texture)
	pos := p.InitialPosition
	return &Planet{
		Object: newObject(KindPlanet, p.Name, p.Mass, p.Radius, pos, p.InitialVelocity, mat),
		ring: OrbitRing{
			Radius:    r3.Norm(pos),
			HalfWidth: RingHalfWidth,
			Opacity:   RingOpacity,
			Visible:   true,
		},
		label: Label{
			Text:    p.Name,
			Offset:  r3.Vec{Y: LabelHeight},
			Visible: true,
		},
	}
}

// Update rotates the position about Y by velocity.Z·dt and spins the planet
// Zero velocity.Z leaves the planet in place
func (p *Planet) Update(dt float64, _ []Body) {
	dTheta := p.velocity.Z * dt
	p.position = vmath.RotateY(p.position, dTheta)
	p.sync()
	p.rotate(r3.Vec{Y: PlanetSpinPerTick})
	p.sweep(dTheta)
}

// Integrate steps under accumulated force, tracking swept angle from position
func (p *Planet) Integrate(dt float64) {
	before := math.Atan2(p.position.Z, p.position.X)
	p.Object.Integrate(dt)
	after := math.Atan2(p.position.Z, p.position.X)

	// shortest signed step, in [-π, π)
	d := vmath.NormalizeAngle(after-before+math.Pi) - math.Pi
	p.rotate(r3.Vec{Y: PlanetSpinPerTick})
	p.sweep(d)
}

func (p *Planet) sweep(dTheta float64) {
	p.swept += math.Abs(dTheta)
	for p.swept >= vmath.Tau {
		p.swept -= vmath.Tau
		p.orbits++
	}
}

// Orbits returns the number of completed revolutions
func (p *Planet) Orbits() int {
	return p.orbits
}

// OrbitRadius returns the radius of the orbit ring
func (p *Planet) OrbitRadius() float64 {
	return p.ring.Radius
}

// SetOrbitVisible toggles the orbit ring; idempotent
func (p *Planet) SetOrbitVisible(visible bool) {
	p.ring.Visible = visible
}

// SetLabelVisible toggles the name label; idempotent
func (p *Planet) SetLabelVisible(visible bool) {
	p.label.Visible = visible
}

// OrbitVisible reports the ring state
func (p *Planet) OrbitVisible() bool {
	return p.ring.Visible
}

// LabelVisible reports the label state
func (p *Planet) LabelVisible() bool {
	return p.label.Visible
}

// Dispose also hides the ring and label
func (p *Planet) Dispose() {
	p.Object.Dispose()
	p.ring.Visible = false
	p.label.Visible = false
}

// Snapshot includes ring, label and orbit count
func (p *Planet) Snapshot() Snapshot {
	snap := p.baseSnapshot()
	snap.Ring = &RingSnapshot{
		Radius:    p.ring.Radius,
		HalfWidth: p.ring.HalfWidth,
		Opacity:   p.ring.Opacity,
		Visible:   p.ring.Visible,
	}
	snap.Label = &LabelSnapshot{
		Text:     p.label.Text,
		Position: vec(r3.Add(p.position, p.label.Offset)),
		Visible:  p.label.Visible,
	}
	snap.Orbits = p.orbits
	return snap
}
