package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/orrery/vmath"
)

// OrbitalSpeed returns the circular-orbit speed sqrt(G·M/r)
func (c Calculator) OrbitalSpeed(centralMass, r float64) float64 {
	if r <= 0 || centralMass <= 0 {
		return 0
	}
	return math.Sqrt(c.G * centralMass / r)
}

// CircularOrbitVelocity returns the velocity that keeps orbiting on a circle of radius r around central
// Direction is the horizontal tangent of the unit vector toward central
// Non-positive r yields the zero vector
func (c Calculator) CircularOrbitVelocity(orbiting, central Body, r float64) r3.Vec {
	speed := c.OrbitalSpeed(central.Mass(), r)
	if speed == 0 {
		return r3.Vec{}
	}

	toCentral := vmath.Normalize(r3.Sub(central.Position(), orbiting.Position()))
	dir := vmath.Normalize(vmath.HorizontalTangent(toCentral))
	return r3.Scale(speed, dir)
}

// CircularOrbitVelocity uses the default G
func CircularOrbitVelocity(orbiting, central Body, r float64) r3.Vec {
	return Default.CircularOrbitVelocity(orbiting, central, r)
}
