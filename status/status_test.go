package status

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"
)

func TestTableGetReturnsSameCell(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("scene.ticks")
	b := r.Ints.Get("scene.ticks")
	if a != b {
		t.Fatal("Get returned different cells for the same key")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("value = %d, want 3", b.Load())
	}
	if _, ok := r.Ints.Lookup("scene.ticks"); !ok {
		t.Error("Lookup missed a registered key")
	}
	if _, ok := r.Ints.Lookup("missing"); ok {
		t.Error("Lookup found an unregistered key")
	}
	if r.Ints.Len() != 1 {
		t.Errorf("Len = %d, want 1 (Lookup must not create)", r.Ints.Len())
	}
}

func TestFloatConcurrentAdd(t *testing.T) {
	var f Float
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()
	if f.Load() != 4000 {
		t.Errorf("sum = %v, want 4000", f.Load())
	}
}

func TestTextTruncation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"short", "Kamino", 6},
		{"ascii overflow", strings.Repeat("x", MaxTextLen+10), MaxTextLen},
		// 31 ASCII bytes then a 3-byte rune straddling the limit
		{"rune boundary", strings.Repeat("x", MaxTextLen-1) + "☉", MaxTextLen - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Text
			s.Store(tt.in)
			got := s.Load()
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncated to invalid UTF-8: %q", got)
			}
		})
	}

	var zero Text
	if zero.Load() != "" {
		t.Error("zero value should be empty")
	}
}

func TestRegistryValues(t *testing.T) {
	r := NewRegistry()
	r.Bools.Get("engine.paused").Store(true)
	r.Ints.Get("scene.ticks").Store(42)
	r.Floats.Get("scene.speed").Store(2.5)
	r.Strings.Get("scene.mode").Store("gravity")

	all := r.Values("")
	if len(all) != 4 || r.Len() != 4 {
		t.Fatalf("values = %v", all)
	}
	if all["engine.paused"] != true || all["scene.ticks"] != int64(42) || all["scene.speed"] != 2.5 || all["scene.mode"] != "gravity" {
		t.Errorf("unexpected values: %v", all)
	}

	sc := r.Values("scene.")
	if len(sc) != 3 {
		t.Errorf("scene values = %v, want 3 entries", sc)
	}
	if _, ok := sc["engine.paused"]; ok {
		t.Error("prefix filter leaked engine.paused")
	}
}

func TestEachSortedByKey(t *testing.T) {
	tbl := NewTable[Float]()
	for _, k := range []string{"c", "a", "b"} {
		tbl.Get(k)
	}
	var keys []string
	tbl.Each("", func(k string, _ *Float) { keys = append(keys, k) })
	if strings.Join(keys, "") != "abc" {
		t.Errorf("keys = %v, want sorted", keys)
	}
}
