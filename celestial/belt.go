package celestial

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/vmath"
)

const (
	beltHalfHeight       = 1.0
	beltRotationSpread   = 0.01
	beltMinOrbitSpeed    = 0.05
	beltOrbitSpeedSpread = 0.05
)

// Particle is one asteroid; parameters are fixed at construction except angle and rotation
type Particle struct {
	Angle         float64
	Radius        float64
	Height        float64
	Size          float64
	OrbitSpeed    float64
	Rotation      r3.Vec
	RotationSpeed r3.Vec
}

// Position places the particle on its circle
func (p Particle) Position() r3.Vec {
	sin, cos := math.Sincos(p.Angle)
	return r3.Vec{X: p.Radius * cos, Y: p.Height, Z: p.Radius * sin}
}

// AsteroidBelt is a fixed population of particles in an annulus around the origin
// The belt has no mass and exerts no force
type AsteroidBelt struct {
	Object
	inner     float64
	outer     float64
	particles []Particle
}

// NewAsteroidBelt populates the belt using rng
func NewAsteroidBelt(cfg config.BeltConfig, rng *rand.Rand) *AsteroidBelt {
	mat := NewMaterial(cfg.Color.Color, "")
	b := &AsteroidBelt{
		Object:    newObject(KindBelt, config.BeltName, 0, (cfg.InnerRadius+cfg.OuterRadius)/2, r3.Vec{}, r3.Vec{}, mat),
		inner:     cfg.InnerRadius,
		outer:     cfg.OuterRadius,
		particles: make([]Particle, cfg.Count),
	}

	for i := range b.particles {
		b.particles[i] = Particle{
			Radius:     vmath.Uniform(rng, cfg.InnerRadius, cfg.OuterRadius),
			Angle:      vmath.Uniform(rng, 0, vmath.Tau),
			Height:     vmath.Uniform(rng, -beltHalfHeight, beltHalfHeight),
			Size:       vmath.Uniform(rng, cfg.MinSize, cfg.MaxSize),
			OrbitSpeed: beltMinOrbitSpeed + rng.Float64()*beltOrbitSpeedSpread,
			Rotation: r3.Vec{
				X: vmath.Uniform(rng, 0, vmath.Tau),
				Y: vmath.Uniform(rng, 0, vmath.Tau),
				Z: vmath.Uniform(rng, 0, vmath.Tau),
			},
			RotationSpeed: r3.Vec{
				X: vmath.Uniform(rng, -beltRotationSpread, beltRotationSpread),
				Y: vmath.Uniform(rng, -beltRotationSpread, beltRotationSpread),
				Z: vmath.Uniform(rng, -beltRotationSpread, beltRotationSpread),
			},
		}
	}
	return b
}

// Update advances each particle along its circle and tumbles it
// Tumble is per update, orbital motion scales with dt
func (b *AsteroidBelt) Update(dt float64, bodies []Body) {
	b.Object.Update(dt, bodies)
	for i := range b.particles {
		p := &b.particles[i]
		p.Angle += p.OrbitSpeed * dt
		p.Rotation = r3.Add(p.Rotation, p.RotationSpeed)
	}
}

// Integrate is plain Update; the belt ignores force
func (b *AsteroidBelt) Integrate(dt float64) {
	b.Update(dt, nil)
}

// Bounds returns the annulus radii
func (b *AsteroidBelt) Bounds() (inner, outer float64) {
	return b.inner, b.outer
}

// Len returns the particle count
func (b *AsteroidBelt) Len() int {
	return len(b.particles)
}

// Particles returns a copy of the particle set
func (b *AsteroidBelt) Particles() []Particle {
	out := make([]Particle, len(b.particles))
	copy(out, b.particles)
	return out
}

// Snapshot includes every particle
func (b *AsteroidBelt) Snapshot() Snapshot {
	snap := b.baseSnapshot()
	snap.Particles = make([]ParticleSnapshot, len(b.particles))
	for i, p := range b.particles {
		snap.Particles[i] = ParticleSnapshot{
			Position: vec(p.Position()),
			Rotation: vec(p.Rotation),
			Size:     p.Size,
		}
	}
	return snap
}
