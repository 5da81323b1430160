package input

// Intent is the semantic action a key maps to
type Intent uint8

const (
	IntentNone Intent = iota

	// System
	IntentQuit       // q, Esc, Ctrl+C
	IntentPause      // space
	IntentToggleHUD  // h
	IntentToggleMute // Ctrl+S

	// Simulation controls
	IntentSpeedUp       // +
	IntentSpeedDown     // -
	IntentStarGrow      // ]
	IntentStarShrink    // [
	IntentToggleOrbits  // o
	IntentToggleLabels  // l
	IntentToggleGravity // g
	IntentCycleTracking // t
	IntentClearTracking // T

	// Camera
	IntentOrbitLeft  // Left arrow
	IntentOrbitRight // Right arrow
	IntentOrbitUp    // Up arrow
	IntentOrbitDown  // Down arrow
	IntentZoomIn     // z
	IntentZoomOut    // x
)
