// Package celestial models the bodies of a planetary system
// Bodies are not safe for concurrent use; the scene serializes access
package celestial

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Kind identifies a body variant
type Kind uint8

const (
	KindStar Kind = iota
	KindPlanet
	KindBelt
	KindComet
)

var kindNames = [...]string{
	KindStar:   "star",
	KindPlanet: "planet",
	KindBelt:   "belt",
	KindComet:  "comet",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown body kind %q", text)
}

// Body is the uniform capability every simulated object exposes
type Body interface {
	Name() string
	Kind() Kind
	Mass() float64
	Radius() float64
	Position() r3.Vec
	Velocity() r3.Vec
	Acceleration() r3.Vec

	// Update advances the body by dt; bodies is the full set, in scene order
	Update(dt float64, bodies []Body)
	// ApplyForce accumulates F/m into acceleration
	ApplyForce(f r3.Vec)

	Snapshot() Snapshot
	Dispose()
}

// Integrable bodies support force-driven stepping
type Integrable interface {
	Integrate(dt float64)
}

// Textured bodies own a material that may receive a texture
type Textured interface {
	Material() *Material
}
