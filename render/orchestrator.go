package render

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/status"
)

// DefaultCellAspect is the height/width ratio of a terminal cell
const DefaultCellAspect = 2.0

// HUDRows is the number of rows reserved below the 3D view
const HUDRows = 2

type rendererEntry struct {
	renderer Renderer
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen     tcell.Screen
	buffer     *Buffer
	renderers  []rendererEntry
	regCount   int
	cellAspect float64
	background RGB
	frames     uint64

	status     *status.Registry
	statFrames *atomic.Int64
}

// NewOrchestrator creates an orchestrator drawing to screen
func NewOrchestrator(screen tcell.Screen, reg *status.Registry) *Orchestrator {
	if reg == nil {
		reg = status.NewRegistry()
	}
	w, h := screen.Size()
	return &Orchestrator{
		screen:     screen,
		buffer:     NewBuffer(w, h),
		renderers:  make([]rendererEntry, 0, 8),
		cellAspect: DefaultCellAspect,
		background: RgbSpace,
		status:     reg,
		statFrames: reg.Ints.Get("render.frames"),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r Renderer, priority Priority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions from the screen and syncs it
func (o *Orchestrator) Resize() {
	w, h := o.screen.Size()
	o.buffer.Resize(w, h)
	o.screen.Sync()
}

// Buffer exposes the compositor, mainly for tests
func (o *Orchestrator) Buffer() *Buffer {
	return o.buffer
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *Orchestrator) RenderFrame(frame *scene.Frame, paused bool) {
	w, h := o.buffer.Size()
	viewH := max(h-HUDRows, 1)

	o.frames++
	ctx := Context{
		Frame:       frame,
		Projector:   camera.NewProjector(&frame.Camera, w, viewH, o.cellAspect),
		Width:       w,
		Height:      h,
		ViewHeight:  viewH,
		Paused:      paused,
		FrameNumber: o.frames,
		Status:      o.status,
	}

	o.buffer.Clear()
	for _, entry := range o.renderers {
		// Skip if renderer implements VisibilityToggle and is not visible
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}

	o.buffer.Flush(o.screen, o.background)
	o.screen.Show()
	o.statFrames.Store(int64(o.frames))
}
