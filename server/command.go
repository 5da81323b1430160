package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/starfield"
)

// ErrUnknownCommand is returned for a command type the server does not handle
var ErrUnknownCommand = errors.New("unknown command")

// ErrBadValue is returned when a command value has the wrong shape
var ErrBadValue = errors.New("bad command value")

// Command types accepted over the socket
const (
	CmdSetSpeed    = "set_speed"
	CmdSetStarSize = "set_star_size"
	CmdSetOrbits   = "set_orbits"
	CmdSetLabels   = "set_labels"
	CmdTrack       = "track"
	CmdSetMode     = "set_mode"
)

// metricLabel bounds label cardinality to the known command set
func metricLabel(cmdType string) string {
	switch cmdType {
	case CmdSetSpeed, CmdSetStarSize, CmdSetOrbits, CmdSetLabels, CmdTrack, CmdSetMode:
		return cmdType
	default:
		return "unknown"
	}
}

// Message types sent to clients
const (
	MsgHello    = "hello"
	MsgSnapshot = "snapshot"
	MsgAck      = "ack"
	MsgError    = "error"
)

// Command is a client request, e.g. {"type":"set_speed","value":2}
type Command struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

// Message is anything the server pushes
type Message struct {
	Type      string              `json:"type"`
	Command   string              `json:"command,omitempty"`
	Error     string              `json:"error,omitempty"`
	Snapshot  *scene.Snapshot     `json:"snapshot,omitempty"`
	Starfield *starfield.Snapshot `json:"starfield,omitempty"`
}

// Controller is the scene surface exposed to remote clients
type Controller interface {
	Snapshot() scene.Snapshot
	Starfield() starfield.Snapshot
	SetSimulationSpeed(v float64)
	SetStarSize(scale float64)
	SetOrbitsVisible(visible bool)
	SetLabelsVisible(visible bool)
	SetTrackingTarget(name string) error
	SetMode(m scene.Mode) error
}

// Apply executes cmd against c
func Apply(c Controller, cmd Command) error {
	switch cmd.Type {
	case CmdSetSpeed:
		var v float64
		if err := decodeValue(cmd, &v); err != nil {
			return err
		}
		c.SetSimulationSpeed(v)
	case CmdSetStarSize:
		var v float64
		if err := decodeValue(cmd, &v); err != nil {
			return err
		}
		if !(v > 0) {
			return fmt.Errorf("%s %v: %w", cmd.Type, v, ErrBadValue)
		}
		c.SetStarSize(v)
	case CmdSetOrbits:
		var v bool
		if err := decodeValue(cmd, &v); err != nil {
			return err
		}
		c.SetOrbitsVisible(v)
	case CmdSetLabels:
		var v bool
		if err := decodeValue(cmd, &v); err != nil {
			return err
		}
		c.SetLabelsVisible(v)
	case CmdTrack:
		var name string
		if err := decodeValue(cmd, &name); err != nil {
			return err
		}
		return c.SetTrackingTarget(name)
	case CmdSetMode:
		var name string
		if err := decodeValue(cmd, &name); err != nil {
			return err
		}
		m, err := scene.ParseMode(name)
		if err != nil {
			return fmt.Errorf("%s: %w", cmd.Type, ErrBadValue)
		}
		return c.SetMode(m)
	default:
		return fmt.Errorf("%q: %w", cmd.Type, ErrUnknownCommand)
	}
	return nil
}

func decodeValue(cmd Command, v any) error {
	if len(cmd.Value) == 0 {
		return fmt.Errorf("%s: missing value: %w", cmd.Type, ErrBadValue)
	}
	if err := json.Unmarshal(cmd.Value, v); err != nil {
		return fmt.Errorf("%s: %w", cmd.Type, ErrBadValue)
	}
	return nil
}
