package physics

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/barneshut"
	"gonum.org/v1/gonum/spatial/r3"
)

// BarnesHutThreshold is the massive-body count above which the octree is used
const BarnesHutThreshold = 64

// DefaultTheta is the Barnes-Hut opening angle
const DefaultTheta = 0.5

// Actor is a body that can receive force
type Actor interface {
	Body
	ApplyForce(f r3.Vec)
}

// Field accumulates mutual gravitational forces across a set of bodies
type Field struct {
	calc      Calculator
	theta     float64
	threshold int

	// reused between calls
	particles []barneshut.Particle3
}

// NewField creates a field for calc with default Barnes-Hut settings
func NewField(calc Calculator) *Field {
	return &Field{
		calc:      calc,
		theta:     DefaultTheta,
		threshold: BarnesHutThreshold,
	}
}

// SetApproximation overrides opening angle and octree threshold
// threshold <= 0 forces the octree for any body count
func (f *Field) SetApproximation(theta float64, threshold int) {
	f.theta = theta
	f.threshold = threshold
}

// Accumulate applies the net force from every other massive body to each massive body
// Bodies with mass <= 0 neither attract nor receive force
// When the octree cannot be built the exact sum is applied and the build error returned
func (f *Field) Accumulate(bodies []Actor) error {
	massive := bodies[:0:0]
	for _, b := range bodies {
		if b.Mass() > 0 {
			massive = append(massive, b)
		}
	}
	if len(massive) < 2 {
		return nil
	}

	if len(massive) <= f.threshold {
		f.pairwise(massive)
		return nil
	}
	return f.octree(massive)
}

// pairwise sums exact forces; each pair is evaluated once
func (f *Field) pairwise(bodies []Actor) {
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			force := f.calc.GravitationalForce(bodies[i], bodies[j])
			bodies[i].ApplyForce(force)
			bodies[j].ApplyForce(r3.Scale(-1, force))
		}
	}
}

func (f *Field) octree(bodies []Actor) error {
	f.particles = f.particles[:0]
	for _, b := range bodies {
		f.particles = append(f.particles, particle{b})
	}

	vol, err := barneshut.NewVolume(f.particles)
	if err != nil {
		f.pairwise(bodies)
		return fmt.Errorf("build octree, used exact sum: %w", err)
	}

	forces := make([]r3.Vec, len(bodies))
	for i, p := range f.particles {
		forces[i] = vol.ForceOn(p, f.theta, f.force)
	}
	for i, b := range bodies {
		b.ApplyForce(forces[i])
	}
	return nil
}

// force adapts the calculator to barneshut.Force3, v points from p1 to p2
func (f *Field) force(_, _ barneshut.Particle3, m1, m2 float64, v r3.Vec) r3.Vec {
	return f.calc.forceBetween(r3.Vec{}, v, m1, m2)
}

// particle exposes an Actor to the octree
type particle struct {
	Actor
}

func (p particle) Coord3() r3.Vec { return p.Position() }
