package celestial

import (
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/orrery/config"
)

// TailLength is the number of past positions a comet keeps
const TailLength = 10

// Comet moves in a straight line under base motion and trails its recent positions
type Comet struct {
	Object
	tail      []r3.Vec // newest first
	tailColor colorful.Color
}

// NewComet builds a comet from its record
func NewComet(cfg config.CometConfig) *Comet {
	mat := NewMaterial(cfg.Color.Color, "")
	return &Comet{
		Object:    newObject(KindComet, cfg.Name, cfg.Mass, cfg.Radius, cfg.Position.Vec(), cfg.Velocity.Vec(), mat),
		tail:      make([]r3.Vec, 0, TailLength+1),
		tailColor: cfg.TailColor.Color,
	}
}

// Update records the current position into the tail, then moves
func (c *Comet) Update(dt float64, bodies []Body) {
	c.record()
	c.Object.Update(dt, bodies)
}

// Integrate records the tail, then steps under force
func (c *Comet) Integrate(dt float64) {
	c.record()
	c.Object.Integrate(dt)
}

func (c *Comet) record() {
	c.tail = append(c.tail, r3.Vec{})
	copy(c.tail[1:], c.tail)
	c.tail[0] = c.position
	if len(c.tail) > TailLength {
		c.tail = c.tail[:TailLength]
	}
}

// Tail returns a copy of the tail, newest first
func (c *Comet) Tail() []r3.Vec {
	out := make([]r3.Vec, len(c.tail))
	copy(out, c.tail)
	return out
}

// Snapshot includes the tail
func (c *Comet) Snapshot() Snapshot {
	snap := c.baseSnapshot()
	snap.Tail = make([]Vec, len(c.tail))
	for i, p := range c.tail {
		snap.Tail[i] = vec(p)
	}
	snap.TailColor = c.tailColor.Hex()
	return snap
}
