package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/orrery/celestial"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	headStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
)

// report summarizes a headless run
type report struct {
	Ticks      uint64
	SimTime    float64
	Elapsed    time.Duration
	Mode       string
	Speed      float64
	Collisions int
	Bodies     []celestial.Snapshot
}

// Render lays the report out for a terminal
func (r report) Render() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("orrery"))
	sb.WriteString(dimStyle.Render(fmt.Sprintf("  %d ticks in %s", r.Ticks, r.Elapsed.Round(time.Millisecond))))
	sb.WriteByte('\n')

	summary := []struct{ k, v string }{
		{"sim time", fmt.Sprintf("%.2f", r.SimTime)},
		{"mode", r.Mode},
		{"speed", fmt.Sprintf("%.1f×", r.Speed)},
		{"overlaps", fmt.Sprintf("%d", r.Collisions)},
	}
	for _, kv := range summary {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("%-9s", kv.k)))
		sb.WriteString(valueStyle.Render(kv.v))
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	sb.WriteString(headStyle.Render(fmt.Sprintf("  %-12s %-7s %9s %8s %7s", "body", "kind", "radius", "height", "orbits")))
	sb.WriteByte('\n')
	for _, b := range r.Bodies {
		swatch := "●"
		if b.Color != "" {
			swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color)).Render(swatch)
		}
		radius := math.Hypot(b.Position[0], b.Position[2])
		orbits := "-"
		if b.Kind == celestial.KindPlanet {
			orbits = fmt.Sprintf("%d", b.Orbits)
		}
		row := fmt.Sprintf(" %-12s %-7s %9.2f %8.2f %7s", b.Name, b.Kind, radius, b.Position[1], orbits)
		sb.WriteString(swatch)
		sb.WriteString(valueStyle.Render(row))
		sb.WriteByte('\n')
	}

	return boxStyle.Render(strings.TrimRight(sb.String(), "\n"))
}
