// Package scene owns the simulated system and drives it one fixed step at a time
package scene

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/celestial"
	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/physics"
	"github.com/lixenwraith/orrery/starfield"
	"github.com/lixenwraith/orrery/status"
	"github.com/lixenwraith/orrery/vmath"
)

const (
	// NominalStep is the simulation time per tick at speed 1
	NominalStep = 0.01

	// MinStarSize is the smallest accepted star size multiplier
	MinStarSize = 0.1
)

// ErrUnknownBody is returned when a named body does not exist
var ErrUnknownBody = errors.New("unknown body")

// OrbitEvent reports a planet completing a revolution
type OrbitEvent struct {
	Planet string
	Orbits int
	Radius float64
	Tick   uint64
}

// TickObserver receives the wall-clock cost of each tick
type TickObserver interface {
	ObserveTick(d time.Duration)
}

// Options configures a scene
type Options struct {
	Config *config.Config

	// Rand seeds planet placement, the belt and the starfield; nil derives one from Config.Physics.Seed
	Rand *rand.Rand

	// Loader resolves textures in the background; nil keeps placeholder colors
	Loader celestial.TextureLoader

	Status   *status.Registry
	Observer TickObserver

	// FrameSeconds is the starfield clock advance per tick; 0 uses the engine tick interval
	FrameSeconds float64
}

// Scene is the simulation driver
// All methods are safe for concurrent use; a tick holds the write lock throughout
type Scene struct {
	mu sync.RWMutex

	bodies  []celestial.Body
	actors  []physics.Actor
	byName  map[string]celestial.Body
	star    *celestial.Star
	planets []*celestial.Planet
	belt    *celestial.AsteroidBelt
	comets  []*celestial.Comet

	prescribed []r3.Vec // planet velocities for prescribed mode

	stars  *starfield.Field
	camera *camera.Camera
	calc   physics.Calculator
	field  *physics.Field

	speed         float64
	starSize      float64
	orbitsVisible bool
	labelsVisible bool
	mode          Mode

	tick         uint64
	simTime      float64
	frameSeconds float64
	collisions   int
	orbitCounts  []int
	fieldErrLog  bool

	listeners []func(OrbitEvent)
	observer  TickObserver
	closed    bool

	statTicks      *atomic.Int64
	statBodies     *atomic.Int64
	statOrbits     *atomic.Int64
	statCollisions *atomic.Int64
	statTime       *status.Float
	statSpeed      *status.Float
	statStarSize   *status.Float
	statMode       *status.Text
	statTracking   *status.Text
}

// New builds the scene from opts.Config
func New(opts Options) (*Scene, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode, err := ParseMode(cfg.Physics.Mode)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	rng := opts.Rand
	if rng == nil {
		seed := cfg.Physics.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		rng = vmath.NewRand(seed)
	}

	reg := opts.Status
	if reg == nil {
		reg = status.NewRegistry()
	}

	frame := opts.FrameSeconds
	if frame <= 0 {
		frame = cfg.Engine.TickInterval.Seconds()
	}

	calc := physics.NewCalculator(cfg.Physics.GravitationalConstant)
	s := &Scene{
		byName:         make(map[string]celestial.Body),
		stars:          starfield.Generate(cfg.Starfield, rng),
		camera:         camera.New(cfg.Camera),
		calc:           calc,
		field:          physics.NewField(calc),
		speed:          math.Max(cfg.Engine.SimulationSpeed, 0),
		starSize:       1,
		orbitsVisible:  true,
		labelsVisible:  true,
		frameSeconds:   frame,
		observer:       opts.Observer,
		statTicks:      reg.Ints.Get("scene.ticks"),
		statBodies:     reg.Ints.Get("scene.bodies"),
		statOrbits:     reg.Ints.Get("scene.orbits"),
		statCollisions: reg.Ints.Get("scene.collisions"),
		statTime:       reg.Floats.Get("scene.time"),
		statSpeed:      reg.Floats.Get("scene.speed"),
		statStarSize:   reg.Floats.Get("scene.star_size"),
		statMode:       reg.Strings.Get("scene.mode"),
		statTracking:   reg.Strings.Get("scene.tracking"),
	}

	s.star = celestial.NewStar(cfg.Star)
	if err := s.add(s.star); err != nil {
		return nil, err
	}

	for _, placed := range config.GeneratePlanets(cfg.Planets, rng) {
		p := celestial.NewPlanet(placed)
		s.planets = append(s.planets, p)
		s.prescribed = append(s.prescribed, placed.InitialVelocity)
		if err := s.add(p); err != nil {
			return nil, err
		}
	}
	s.orbitCounts = make([]int, len(s.planets))

	if cfg.Belt.Count > 0 {
		s.belt = celestial.NewAsteroidBelt(cfg.Belt, rng)
		if err := s.add(s.belt); err != nil {
			return nil, err
		}
	}

	for _, cc := range cfg.Comets {
		c := celestial.NewComet(cc)
		s.comets = append(s.comets, c)
		if err := s.add(c); err != nil {
			return nil, err
		}
	}

	if opts.Loader != nil {
		for _, b := range s.bodies {
			if t, ok := b.(celestial.Textured); ok {
				t.Material().Bind(opts.Loader)
			}
		}
	}

	s.setStarSize(cfg.Engine.StarSize)
	s.setOrbitsVisible(cfg.Engine.OrbitsVisible)
	s.setLabelsVisible(cfg.Engine.LabelsVisible)
	s.setMode(mode)

	s.statBodies.Store(int64(len(s.bodies)))
	s.statSpeed.Store(s.speed)

	log.Printf("scene: %d bodies, %d planets, %d stars, mode %s", len(s.bodies), len(s.planets), s.stars.Len(), s.mode)
	return s, nil
}

func (s *Scene) add(b celestial.Body) error {
	if _, dup := s.byName[b.Name()]; dup {
		return fmt.Errorf("scene: duplicate body name %q", b.Name())
	}
	s.bodies = append(s.bodies, b)
	s.actors = append(s.actors, b)
	s.byName[b.Name()] = b
	return nil
}

// Tick advances one nominal step at the current simulation speed
func (s *Scene) Tick() {
	s.mu.Lock()
	events := s.step(NominalStep, s.speed)
	listeners := s.listeners
	s.mu.Unlock()

	dispatch(listeners, events)
}

// Step advances by baseDt scaled by speed; negative speed counts as zero
func (s *Scene) Step(baseDt, speed float64) {
	s.mu.Lock()
	events := s.step(baseDt, speed)
	listeners := s.listeners
	s.mu.Unlock()

	dispatch(listeners, events)
}

func dispatch(listeners []func(OrbitEvent), events []OrbitEvent) {
	for _, ev := range events {
		for _, fn := range listeners {
			fn(ev)
		}
	}
}

// step runs starfield, bodies, camera in that order; caller holds mu
func (s *Scene) step(baseDt, speed float64) []OrbitEvent {
	if s.closed {
		return nil
	}
	start := time.Now()

	if !(speed > 0) || math.IsInf(speed, 1) {
		speed = 0
	}
	dt := baseDt * speed

	s.stars.Update(s.frameSeconds)

	switch s.mode {
	case ModeGravity:
		if err := s.field.Accumulate(s.actors); err != nil && !s.fieldErrLog {
			log.Printf("scene: gravity field: %v", err)
			s.fieldErrLog = true
		}
		for _, b := range s.bodies {
			if ib, ok := b.(celestial.Integrable); ok && b.Mass() > 0 {
				ib.Integrate(dt)
			} else {
				b.Update(dt, s.bodies)
			}
		}
	default:
		for _, b := range s.bodies {
			b.Update(dt, s.bodies)
		}
	}

	s.camera.Update(s.locate)

	var events []OrbitEvent
	for i, p := range s.planets {
		if n := p.Orbits(); n != s.orbitCounts[i] {
			s.orbitCounts[i] = n
			s.statOrbits.Add(1)
			events = append(events, OrbitEvent{Planet: p.Name(), Orbits: n, Radius: p.OrbitRadius(), Tick: s.tick + 1})
		}
	}

	s.collisions = s.countCollisions()
	s.tick++
	s.simTime += dt

	s.statTicks.Store(int64(s.tick))
	s.statTime.Store(s.simTime)
	s.statCollisions.Store(int64(s.collisions))
	if s.observer != nil {
		s.observer.ObserveTick(time.Since(start))
	}
	return events
}

// countCollisions counts overlapping pairs among discrete bodies; the belt is excluded
func (s *Scene) countCollisions() int {
	discrete := make([]celestial.Body, 0, len(s.bodies))
	for _, b := range s.bodies {
		if b.Kind() != celestial.KindBelt {
			discrete = append(discrete, b)
		}
	}
	return len(physics.Collisions(discrete))
}

func (s *Scene) locate(name string) (r3.Vec, bool) {
	b, ok := s.byName[name]
	if !ok {
		return r3.Vec{}, false
	}
	return b.Position(), true
}

// OnOrbitComplete registers fn for orbit events; fn runs on the ticking goroutine outside the scene lock
func (s *Scene) OnOrbitComplete(fn func(OrbitEvent)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// copy-on-write so dispatch can iterate without the lock
	next := make([]func(OrbitEvent), len(s.listeners), len(s.listeners)+1)
	copy(next, s.listeners)
	s.listeners = append(next, fn)
}

// Close disposes every body; later ticks are no-ops
func (s *Scene) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for _, b := range s.bodies {
		b.Dispose()
	}
	log.Printf("scene: closed after %d ticks", s.tick)
}
