package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate checks every record and joins all failures
// Each failure wraps ErrInvalidConfig
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Star.Mass < 0 {
		fail("star mass %v is negative", c.Star.Mass)
	}
	if c.Star.Radius <= 0 {
		fail("star radius %v must be positive", c.Star.Radius)
	}

	// body names share one namespace
	seen := map[string]bool{StarName: true, BeltName: true}
	claim := func(kind, name string) {
		if seen[name] {
			fail("duplicate body name %q for %s", name, kind)
		}
		seen[name] = true
	}

	for i, p := range c.Planets {
		if p.Name == "" {
			fail("planet %d has no name", i)
		} else {
			claim("planet", p.Name)
		}
		if p.Mass < 0 {
			fail("planet %q mass %v is negative", p.Name, p.Mass)
		}
		if p.Radius <= 0 {
			fail("planet %q radius %v must be positive", p.Name, p.Radius)
		}
		if p.Distance <= 0 {
			fail("planet %q distance %v must be positive", p.Name, p.Distance)
		}
	}

	b := c.Belt
	if b.Count < 0 {
		fail("belt count %d is negative", b.Count)
	}
	if b.InnerRadius <= 0 || b.InnerRadius >= b.OuterRadius {
		fail("belt radii [%v, %v) must satisfy 0 < inner < outer", b.InnerRadius, b.OuterRadius)
	}
	if b.MinSize <= 0 || b.MinSize > b.MaxSize {
		fail("belt sizes [%v, %v] must satisfy 0 < min <= max", b.MinSize, b.MaxSize)
	}

	for _, cm := range c.Comets {
		if cm.Name == "" {
			fail("comet has no name")
		} else {
			claim("comet", cm.Name)
		}
		if cm.Mass < 0 || cm.Radius <= 0 {
			fail("comet %q needs mass >= 0 and radius > 0", cm.Name)
		}
	}

	sf := c.Starfield
	if sf.Count < 0 || sf.Radius <= 0 {
		fail("starfield count %d and radius %v invalid", sf.Count, sf.Radius)
	}
	if sf.MinSize > sf.MaxSize {
		fail("starfield min size %v exceeds max %v", sf.MinSize, sf.MaxSize)
	}
	if sum := sf.WhitePercent + sf.BluePercent + sf.RedPercent + sf.YellowPercent; math.Abs(sum-1) > 1e-6 {
		fail("starfield color percentages sum to %v, want 1", sum)
	}

	cam := c.Camera
	if cam.FOV <= 0 || cam.FOV >= 180 {
		fail("camera fov %v out of (0, 180)", cam.FOV)
	}
	if cam.Near <= 0 || cam.Near >= cam.Far {
		fail("camera clip planes near=%v far=%v invalid", cam.Near, cam.Far)
	}
	if cam.MinDistance <= 0 || cam.MinDistance > cam.MaxDistance {
		fail("camera distance limits [%v, %v] invalid", cam.MinDistance, cam.MaxDistance)
	}

	switch c.Physics.Mode {
	case ModePrescribed, ModeGravity:
	default:
		fail("unknown physics mode %q", c.Physics.Mode)
	}

	if c.Engine.TickInterval.Duration <= 0 {
		fail("tick interval %v must be positive", c.Engine.TickInterval)
	}
	if c.Engine.SimulationSpeed < 0 {
		fail("simulation speed %v is negative", c.Engine.SimulationSpeed)
	}
	if c.Engine.StarSize <= 0 {
		fail("star size %v must be positive", c.Engine.StarSize)
	}

	if c.Server.SnapshotRate <= 0 || c.Server.CommandRate <= 0 || c.Server.CommandBurst <= 0 {
		fail("server rates must be positive")
	}

	return errors.Join(errs...)
}
