package input

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve TOML action strings
var actionRegistry = map[string]Intent{
	"none": IntentNone,

	"quit":        IntentQuit,
	"pause":       IntentPause,
	"toggle_hud":  IntentToggleHUD,
	"toggle_mute": IntentToggleMute,

	"speed_up":       IntentSpeedUp,
	"speed_down":     IntentSpeedDown,
	"star_grow":      IntentStarGrow,
	"star_shrink":    IntentStarShrink,
	"toggle_orbits":  IntentToggleOrbits,
	"toggle_labels":  IntentToggleLabels,
	"toggle_gravity": IntentToggleGravity,
	"cycle_tracking": IntentCycleTracking,
	"clear_tracking": IntentClearTracking,

	"orbit_left":  IntentOrbitLeft,
	"orbit_right": IntentOrbitRight,
	"orbit_up":    IntentOrbitUp,
	"orbit_down":  IntentOrbitDown,
	"zoom_in":     IntentZoomIn,
	"zoom_out":    IntentZoomOut,
}

// ActionNames returns the name of every bindable action
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	return names
}
