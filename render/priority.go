package render

// Priority determines render order. Lower values render first
type Priority int

const (
	PriorityStarfield Priority = 100
	PriorityOrbits    Priority = 200
	PriorityBelt      Priority = 300
	PriorityBodies    Priority = 400
	PriorityLabels    Priority = 500
	PriorityHUD       Priority = 600
)
