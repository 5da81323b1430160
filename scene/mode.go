package scene

import (
	"fmt"

	"github.com/lixenwraith/orrery/config"
)

// Mode selects how bodies advance each tick
type Mode uint8

const (
	// ModePrescribed moves each body by its own kinematics; forces are never applied
	ModePrescribed Mode = iota
	// ModeGravity accumulates mutual gravity and integrates massive bodies
	ModeGravity
)

func (m Mode) String() string {
	switch m {
	case ModePrescribed:
		return config.ModePrescribed
	case ModeGravity:
		return config.ModeGravity
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode converts a config mode name
func ParseMode(s string) (Mode, error) {
	switch s {
	case config.ModePrescribed, "":
		return ModePrescribed, nil
	case config.ModeGravity:
		return ModeGravity, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}
