package config

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r3"
)

// planetVelocityScale converts configured orbital speed into angular rate about Y
const planetVelocityScale = 0.1

// PlacedPlanet is a planet record with its initial state resolved
type PlacedPlanet struct {
	PlanetConfig
	InitialPosition r3.Vec
	InitialVelocity r3.Vec
}

// GeneratePlanets places each planet at a random angle on its orbit
// Position (d·cosθ, 0, d·sinθ), velocity (0, 0, v/10)
func GeneratePlanets(planets []PlanetConfig, rng *rand.Rand) []PlacedPlanet {
	out := make([]PlacedPlanet, 0, len(planets))
	for _, p := range planets {
		angle := rng.Float64() * 2 * math.Pi
		sin, cos := math.Sincos(angle)
		out = append(out, PlacedPlanet{
			PlanetConfig:    p,
			InitialPosition: r3.Vec{X: cos * p.Distance, Y: 0, Z: sin * p.Distance},
			InitialVelocity: r3.Vec{Z: p.Velocity * planetVelocityScale},
		})
	}
	return out
}
