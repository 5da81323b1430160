package status

import (
	"math"
	"sync/atomic"
	"unicode/utf8"
)

// Float is a float64 cell stored as raw bits
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Store(v float64) { f.bits.Store(math.Float64bits(v)) }
func (f *Float) Load() float64   { return math.Float64frombits(f.bits.Load()) }

// Add applies delta and returns the new value
func (f *Float) Add(delta float64) float64 {
	for {
		cur := f.bits.Load()
		sum := math.Float64frombits(cur) + delta
		if f.bits.CompareAndSwap(cur, math.Float64bits(sum)) {
			return sum
		}
	}
}

// MaxTextLen bounds Text cells in bytes; body names and modes fit
const MaxTextLen = 32

// Text is a short string cell, cut on a rune boundary at MaxTextLen
type Text struct {
	v atomic.Pointer[string]
}

func (t *Text) Store(s string) {
	if len(s) > MaxTextLen {
		n := MaxTextLen
		for n > 0 && !utf8.RuneStart(s[n]) {
			n--
		}
		s = s[:n]
	}
	t.v.Store(&s)
}

func (t *Text) Load() string {
	if p := t.v.Load(); p != nil {
		return *p
	}
	return ""
}
