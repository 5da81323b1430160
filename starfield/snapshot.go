package starfield

// StarSnapshot is the wire form of a background star
// Clients recompute flicker from Phase, Speed and the field clock
type StarSnapshot struct {
	Position [3]float64 `json:"position"`
	Size     float64    `json:"size"`
	Color    string     `json:"color"`
	Flickers bool       `json:"flickers,omitempty"`
	Phase    float64    `json:"phase,omitempty"`
	Speed    float64    `json:"speed,omitempty"`
}

// Snapshot is the static description of the field
type Snapshot struct {
	Radius     float64        `json:"radius"`
	FlickerMin float64        `json:"flicker_min"`
	FlickerMax float64        `json:"flicker_max"`
	Stars      []StarSnapshot `json:"stars"`
}

// Snapshot describes the field in its unflickered state
func (f *Field) Snapshot() Snapshot {
	snap := Snapshot{
		Radius:     f.radius,
		FlickerMin: f.flickerMin,
		FlickerMax: f.flickerMax,
		Stars:      make([]StarSnapshot, len(f.stars)),
	}
	for i, s := range f.stars {
		snap.Stars[i] = StarSnapshot{
			Position: [3]float64{s.Position.X, s.Position.Y, s.Position.Z},
			Size:     s.BaseSize,
			Color:    s.BaseColor.Hex(),
			Flickers: s.Flickers,
			Phase:    s.Phase,
			Speed:    s.Speed,
		}
	}
	return snap
}
