package status

import "sync/atomic"

// Registry is the live state shared by the scene, engine, server, HUD and exporters
// The scene writes on every tick; readers never block it
type Registry struct {
	Bools   *Table[atomic.Bool]
	Ints    *Table[atomic.Int64]
	Floats  *Table[Float]
	Strings *Table[Text]
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewTable[atomic.Bool](),
		Ints:    NewTable[atomic.Int64](),
		Floats:  NewTable[Float](),
		Strings: NewTable[Text](),
	}
}

// Len returns the number of cells across all tables
func (r *Registry) Len() int {
	return r.Bools.Len() + r.Ints.Len() + r.Floats.Len() + r.Strings.Len()
}

// Values flattens cells under prefix into a key→value map, "" for all
func (r *Registry) Values(prefix string) map[string]any {
	out := make(map[string]any)
	r.Bools.Each(prefix, func(k string, c *atomic.Bool) { out[k] = c.Load() })
	r.Ints.Each(prefix, func(k string, c *atomic.Int64) { out[k] = c.Load() })
	r.Floats.Each(prefix, func(k string, c *Float) { out[k] = c.Load() })
	r.Strings.Each(prefix, func(k string, c *Text) { out[k] = c.Load() })
	return out
}
