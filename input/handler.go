package input

import (
	"log"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/vmath"
)

// Control ranges reachable from the keyboard
const (
	SpeedStep = 0.1
	MinSpeed  = 0.1
	MaxSpeed  = 5.0

	StarSizeStep = 0.1
	MinStarSize  = 0.8
	MaxStarSize  = 1.5

	OrbitStep = 0.05 // radians per key press
	ZoomStep  = 0.9  // distance factor per zoom-in press
)

// Controls is the scene surface the keyboard drives
type Controls interface {
	SimulationSpeed() float64
	SetSimulationSpeed(v float64)
	StarSize() float64
	SetStarSize(scale float64)
	OrbitsVisible() bool
	SetOrbitsVisible(visible bool)
	LabelsVisible() bool
	SetLabelsVisible(visible bool)
	Mode() scene.Mode
	SetMode(m scene.Mode) error
	Tracking() string
	SetTrackingTarget(name string) error
	PlanetNames() []string
	OrbitCamera(dAzimuth, dElevation, zoom float64)
}

// Pauser toggles the scheduler
type Pauser interface {
	TogglePause() bool
}

// Toggler flips a boolean feature such as HUD visibility or audio mute
type Toggler interface {
	Toggle()
}

// Handler translates key events into control calls
type Handler struct {
	table    *KeyTable
	controls Controls
	pauser   Pauser
	hud      Toggler
	mute     Toggler
}

// NewHandler binds table to controls; nil table uses the defaults
func NewHandler(table *KeyTable, controls Controls) *Handler {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Handler{table: table, controls: controls}
}

// SetPauser wires the pause key
func (h *Handler) SetPauser(p Pauser) { h.pauser = p }

// SetHUD wires the HUD toggle key
func (h *Handler) SetHUD(t Toggler) { h.hud = t }

// SetMute wires the mute key
func (h *Handler) SetMute(t Toggler) { h.mute = t }

// step moves v by delta on a 0.1 grid and clamps it to [lo, hi]
func step(v, delta, lo, hi float64) float64 {
	return vmath.Clamp(math.Round((v+delta)*10)/10, lo, hi)
}

// HandleKey applies the bound action and returns its intent
func (h *Handler) HandleKey(ev *tcell.EventKey) Intent {
	intent := h.table.Lookup(ev)
	h.Apply(intent)
	return intent
}

// Apply executes intent against the wired controls
func (h *Handler) Apply(intent Intent) {
	c := h.controls
	switch intent {
	case IntentSpeedUp:
		c.SetSimulationSpeed(step(c.SimulationSpeed(), SpeedStep, MinSpeed, MaxSpeed))
	case IntentSpeedDown:
		c.SetSimulationSpeed(step(c.SimulationSpeed(), -SpeedStep, MinSpeed, MaxSpeed))
	case IntentStarGrow:
		c.SetStarSize(step(c.StarSize(), StarSizeStep, MinStarSize, MaxStarSize))
	case IntentStarShrink:
		c.SetStarSize(step(c.StarSize(), -StarSizeStep, MinStarSize, MaxStarSize))
	case IntentToggleOrbits:
		c.SetOrbitsVisible(!c.OrbitsVisible())
	case IntentToggleLabels:
		c.SetLabelsVisible(!c.LabelsVisible())
	case IntentToggleGravity:
		next := scene.ModeGravity
		if c.Mode() == scene.ModeGravity {
			next = scene.ModePrescribed
		}
		if err := c.SetMode(next); err != nil {
			log.Printf("input: %v", err)
		}
	case IntentCycleTracking:
		if err := c.SetTrackingTarget(nextTarget(c.PlanetNames(), c.Tracking())); err != nil {
			log.Printf("input: %v", err)
		}
	case IntentClearTracking:
		_ = c.SetTrackingTarget("")
	case IntentOrbitLeft:
		c.OrbitCamera(-OrbitStep, 0, 1)
	case IntentOrbitRight:
		c.OrbitCamera(OrbitStep, 0, 1)
	case IntentOrbitUp:
		c.OrbitCamera(0, OrbitStep, 1)
	case IntentOrbitDown:
		c.OrbitCamera(0, -OrbitStep, 1)
	case IntentZoomIn:
		c.OrbitCamera(0, 0, ZoomStep)
	case IntentZoomOut:
		c.OrbitCamera(0, 0, 1/ZoomStep)
	case IntentPause:
		if h.pauser != nil {
			h.pauser.TogglePause()
		}
	case IntentToggleHUD:
		if h.hud != nil {
			h.hud.Toggle()
		}
	case IntentToggleMute:
		if h.mute != nil {
			h.mute.Toggle()
		}
	}
}

// nextTarget cycles free camera → first planet → … → last planet → free camera
func nextTarget(names []string, current string) string {
	if current == "" {
		if len(names) == 0 {
			return ""
		}
		return names[0]
	}
	for i, n := range names {
		if n == current {
			if i+1 < len(names) {
				return names[i+1]
			}
			return ""
		}
	}
	return ""
}
