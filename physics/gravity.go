package physics

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/orrery/vmath"
)

const (
	// G is the scaled gravitational constant used for visual orbits
	G = 6.67430e-11 * 1000

	// MinForceDistance is the separation below which force is suppressed
	MinForceDistance = 0.1
)

// Body is the minimal view of a celestial body the calculator works on
type Body interface {
	Mass() float64
	Radius() float64
	Position() r3.Vec
}

// Calculator evaluates forces and orbital velocities for a given G
// The zero value is unusable; use NewCalculator or Default
type Calculator struct {
	G float64
}

// Default uses the package constant G
var Default = Calculator{G: G}

// NewCalculator returns a calculator for g, falling back to G when g is not positive
func NewCalculator(g float64) Calculator {
	if g <= 0 {
		g = G
	}
	return Calculator{G: g}
}

// GravitationalForce returns the force exerted on a by b
// Zero when the bodies are closer than MinForceDistance
func (c Calculator) GravitationalForce(a, b Body) r3.Vec {
	return c.forceBetween(a.Position(), b.Position(), a.Mass(), b.Mass())
}

func (c Calculator) forceBetween(pa, pb r3.Vec, ma, mb float64) r3.Vec {
	d := r3.Sub(pb, pa)
	r := r3.Norm(d)
	if r < MinForceDistance {
		return r3.Vec{}
	}
	mag := c.G * ma * mb / (r * r)
	return r3.Scale(mag, vmath.Normalize(d))
}

// GravitationalForce evaluates the force on a by b with the default G
func GravitationalForce(a, b Body) r3.Vec {
	return Default.GravitationalForce(a, b)
}
