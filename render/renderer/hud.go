package renderer

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/orrery/render"
)

const hudHelp = "+/-:speed  [/]:star  o:orbits  l:labels  g:gravity  t:track  arrows/z/x:camera  h:hud  space:pause  q:quit"

// HUDRenderer draws the status line and key help on the bottom rows
type HUDRenderer struct {
	visible atomic.Bool
}

// NewHUDRenderer creates a visible HUD
func NewHUDRenderer() *HUDRenderer {
	r := &HUDRenderer{}
	r.visible.Store(true)
	return r
}

// IsVisible implements render.VisibilityToggle
func (r *HUDRenderer) IsVisible() bool {
	return r.visible.Load()
}

// Toggle flips HUD visibility
func (r *HUDRenderer) Toggle() {
	for {
		v := r.visible.Load()
		if r.visible.CompareAndSwap(v, !v) {
			return
		}
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Render writes both HUD rows
func (r *HUDRenderer) Render(ctx render.Context, buf *render.Buffer) {
	if ctx.Height < render.HUDRows {
		return
	}
	statusY := ctx.Height - 2
	helpY := ctx.Height - 1
	snap := &ctx.Frame.Snapshot

	for x := 0; x < ctx.Width; x++ {
		buf.SetBgOnly(x, statusY, render.RGBBlack)
		buf.SetBgOnly(x, helpY, render.RGBBlack)
	}

	status := fmt.Sprintf(" tick %d  t=%.2f  speed %.1fx  star %.1fx  %s  orbits %s  labels %s",
		snap.Tick, snap.Time, snap.Speed, snap.StarSize, snap.Mode,
		onOff(snap.OrbitsVisible), onOff(snap.LabelsVisible))
	x := buf.WriteString(0, statusY, status, render.RgbHUD)

	if snap.Camera.Tracking != "" {
		x = buf.WriteString(x, statusY, "  tracking "+snap.Camera.Tracking, render.RgbHUDAccent)
	}
	if snap.Collisions > 0 {
		x = buf.WriteString(x, statusY, fmt.Sprintf("  overlaps %d", snap.Collisions), render.RgbHUDAccent)
	}
	if ctx.Paused {
		buf.WriteString(max(ctx.Width-9, x+2), statusY, "[PAUSED]", render.RgbHUDAccent)
	}

	buf.WriteString(1, helpY, hudHelp, render.RgbHUDDim)
}
