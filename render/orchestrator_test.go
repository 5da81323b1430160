package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/status"
)

type recordingRenderer struct {
	name    string
	log     *[]string
	visible bool
}

func (r *recordingRenderer) Render(ctx Context, buf *Buffer) {
	*r.log = append(*r.log, r.name)
}

type toggledRenderer struct {
	recordingRenderer
}

func (r *toggledRenderer) IsVisible() bool { return r.visible }

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func testFrame() *scene.Frame {
	return &scene.Frame{Camera: *camera.New(config.Default().Camera)}
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	var calls []string
	o := NewOrchestrator(newTestScreen(t, 20, 10), nil)

	o.Register(&recordingRenderer{name: "hud", log: &calls}, PriorityHUD)
	o.Register(&recordingRenderer{name: "stars", log: &calls}, PriorityStarfield)
	o.Register(&recordingRenderer{name: "bodies", log: &calls}, PriorityBodies)
	o.Register(&recordingRenderer{name: "bodies2", log: &calls}, PriorityBodies)

	o.RenderFrame(testFrame(), false)

	want := []string{"stars", "bodies", "bodies2", "hud"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls = %v, want %v", calls, want)
			break
		}
	}
}

func TestOrchestratorSkipsHidden(t *testing.T) {
	var calls []string
	o := NewOrchestrator(newTestScreen(t, 20, 10), nil)

	hidden := &toggledRenderer{recordingRenderer{name: "hidden", log: &calls}}
	o.Register(hidden, PriorityHUD)
	o.Register(&recordingRenderer{name: "shown", log: &calls}, PriorityOrbits)

	o.RenderFrame(testFrame(), false)
	if len(calls) != 1 || calls[0] != "shown" {
		t.Errorf("calls = %v", calls)
	}

	hidden.visible = true
	calls = nil
	o.RenderFrame(testFrame(), false)
	if len(calls) != 2 {
		t.Errorf("calls after show = %v", calls)
	}
}

func TestOrchestratorResizeAndFrameCount(t *testing.T) {
	screen := newTestScreen(t, 20, 10)
	reg := status.NewRegistry()
	o := NewOrchestrator(screen, reg)

	screen.SetSize(40, 12)
	o.Resize()
	if w, h := o.Buffer().Size(); w != 40 || h != 12 {
		t.Errorf("buffer = %dx%d after resize", w, h)
	}

	o.RenderFrame(testFrame(), false)
	o.RenderFrame(testFrame(), true)
	if got := reg.Ints.Get("render.frames").Load(); got != 2 {
		t.Errorf("render.frames = %d", got)
	}
}
