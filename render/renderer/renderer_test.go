package renderer

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/scene"
)

const (
	screenW = 120
	screenH = 40
)

func newPipeline(t *testing.T) (*render.Orchestrator, tcell.SimulationScreen, *HUDRenderer) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(screenW, screenH)
	t.Cleanup(screen.Fini)

	o := render.NewOrchestrator(screen, nil)
	hud := NewHUDRenderer()
	o.Register(NewStarfieldRenderer(), render.PriorityStarfield)
	o.Register(NewOrbitRenderer(), render.PriorityOrbits)
	o.Register(NewBeltRenderer(), render.PriorityBelt)
	o.Register(NewBodyRenderer(), render.PriorityBodies)
	o.Register(NewLabelRenderer(), render.PriorityLabels)
	o.Register(hud, render.PriorityHUD)
	return o, screen, hud
}

func newFrame(t *testing.T, mutate func(*config.Config)) (*scene.Scene, *scene.Frame) {
	t.Helper()
	cfg := config.Default()
	cfg.Starfield.Count = 200
	cfg.Physics.Seed = 7
	if mutate != nil {
		mutate(cfg)
	}
	s, err := scene.New(scene.Options{Config: cfg})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Close)
	s.Tick()

	var f scene.Frame
	s.FrameInto(&f)
	return s, &f
}

func screenRow(screen tcell.SimulationScreen, y int) string {
	var sb strings.Builder
	for x := 0; x < screenW; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func screenText(screen tcell.SimulationScreen) string {
	var sb strings.Builder
	for y := 0; y < screenH; y++ {
		sb.WriteString(screenRow(screen, y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestStarDrawnAtCenter(t *testing.T) {
	o, _, _ := newPipeline(t)
	_, f := newFrame(t, func(cfg *config.Config) {
		cfg.Engine.LabelsVisible = false
	})
	o.RenderFrame(f, false)

	// default camera looks at the origin; the view spans the rows above the HUD
	cx, cy := screenW/2, (screenH-render.HUDRows)/2
	c, _ := o.Buffer().Cell(cx, cy)
	if math.IsInf(c.Depth, 1) {
		t.Fatalf("no geometry at view center: %+v", c)
	}
	if c.Bg.R < 150 || c.Bg.G < 120 {
		t.Errorf("center cell not star colored: %+v", c.Bg)
	}
}

func TestHUDShowsState(t *testing.T) {
	o, screen, hud := newPipeline(t)
	s, f := newFrame(t, nil)
	s.SetSimulationSpeed(2.5)
	s.FrameInto(f)
	o.RenderFrame(f, true)

	status := screenRow(screen, screenH-2)
	for _, want := range []string{"tick 1", "speed 2.5x", "prescribed", "orbits on", "[PAUSED]"} {
		if !strings.Contains(status, want) {
			t.Errorf("status row %q missing %q", status, want)
		}
	}
	if help := screenRow(screen, screenH-1); !strings.Contains(help, "q:quit") {
		t.Errorf("help row %q", help)
	}

	hud.Toggle()
	o.RenderFrame(f, false)
	if strings.Contains(screenRow(screen, screenH-2), "tick") {
		t.Error("hidden HUD still drawn")
	}
}

func TestLabelsFollowToggle(t *testing.T) {
	o, screen, _ := newPipeline(t)
	s, f := newFrame(t, nil)
	o.RenderFrame(f, false)

	text := screenText(screen)
	found := 0
	for _, name := range s.PlanetNames() {
		if strings.Contains(text, name) {
			found++
		}
	}
	if found == 0 {
		t.Fatal("no planet labels on screen")
	}

	s.SetLabelsVisible(false)
	s.FrameInto(f)
	o.RenderFrame(f, false)
	text = screenText(screen)
	for _, name := range s.PlanetNames() {
		if strings.Contains(text, name) {
			t.Errorf("label %s drawn while hidden", name)
		}
	}
}

func TestOrbitsFollowToggle(t *testing.T) {
	count := func(o *render.Orchestrator) int {
		n := 0
		for y := 0; y < screenH-render.HUDRows; y++ {
			for x := 0; x < screenW; x++ {
				if c, _ := o.Buffer().Cell(x, y); c.Rune == '·' {
					n++
				}
			}
		}
		return n
	}

	noStars := func(cfg *config.Config) {
		cfg.Starfield.Count = 0
		cfg.Belt.Count = 0
	}
	o, _, _ := newPipeline(t)
	s, f := newFrame(t, noStars)
	o.RenderFrame(f, false)
	shown := count(o)
	if shown == 0 {
		t.Fatal("no orbit ring cells drawn")
	}

	s.SetOrbitsVisible(false)
	s.FrameInto(f)
	o.RenderFrame(f, false)
	if hidden := count(o); hidden != 0 {
		t.Errorf("%d ring cells drawn while hidden", hidden)
	}
}

func TestBeltAndStarfieldDraw(t *testing.T) {
	o, _, _ := newPipeline(t)
	_, f := newFrame(t, func(cfg *config.Config) {
		cfg.Starfield.Count = 0
	})
	o.RenderFrame(f, false)

	belt := 0
	for y := 0; y < screenH-render.HUDRows; y++ {
		for x := 0; x < screenW; x++ {
			if c, _ := o.Buffer().Cell(x, y); c.Rune == '.' || c.Rune == ':' {
				belt++
			}
		}
	}
	if belt == 0 {
		t.Error("no belt particles drawn")
	}
}

func TestStarGlyph(t *testing.T) {
	tests := []struct {
		size float64
		want rune
	}{
		{0.2, '.'},
		{1, '·'},
		{4, '+'},
		{9.5, '*'},
	}
	for _, tt := range tests {
		if got := starGlyph(tt.size); got != tt.want {
			t.Errorf("starGlyph(%v) = %q, want %q", tt.size, got, tt.want)
		}
	}
}
