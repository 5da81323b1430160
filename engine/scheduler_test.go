package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/orrery/status"
)

type countingTicker struct {
	n atomic.Int64
}

func (c *countingTicker) Tick() { c.n.Add(1) }

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestSchedulerTicks(t *testing.T) {
	ticker := &countingTicker{}
	reg := status.NewRegistry()
	s, updateDone := NewScheduler(ticker, nil, 2*time.Millisecond, nil, reg)

	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	defer s.Stop()

	select {
	case <-updateDone:
	case <-time.After(time.Second):
		t.Fatal("no updateDone signal")
	}
	waitFor(t, time.Second, func() bool { return ticker.n.Load() >= 5 })

	if got := reg.Ints.Get("engine.ticks").Load(); got < 1 {
		t.Errorf("engine.ticks = %d", got)
	}
}

func TestSchedulerWaitsForFrame(t *testing.T) {
	ticker := &countingTicker{}
	frameReady := make(chan struct{}, 1)
	s, updateDone := NewScheduler(ticker, nil, time.Millisecond, frameReady, nil)

	s.Start()
	defer s.Stop()

	for i := 0; i < 3; i++ {
		frameReady <- struct{}{}
		select {
		case <-updateDone:
		case <-time.After(time.Second):
			t.Fatalf("tick %d: no updateDone", i)
		}
	}
	if ticker.n.Load() < 3 {
		t.Errorf("ticks = %d, want >= 3", ticker.n.Load())
	}
}

func TestSchedulerPauseStopsTicks(t *testing.T) {
	ticker := &countingTicker{}
	s, _ := NewScheduler(ticker, nil, time.Millisecond, nil, nil)
	s.Start()
	defer s.Stop()

	waitFor(t, time.Second, func() bool { return ticker.n.Load() > 0 })

	if !s.TogglePause() {
		t.Fatal("TogglePause did not pause")
	}
	// allow an in-flight tick to land
	time.Sleep(10 * time.Millisecond)
	frozen := ticker.n.Load()
	time.Sleep(20 * time.Millisecond)
	if got := ticker.n.Load(); got != frozen {
		t.Errorf("ticked while paused: %d -> %d", frozen, got)
	}

	if s.TogglePause() {
		t.Fatal("TogglePause did not resume")
	}
	waitFor(t, time.Second, func() bool { return ticker.n.Load() > frozen })
}

func TestSchedulerStopIdempotent(t *testing.T) {
	ticker := &countingTicker{}
	s, _ := NewScheduler(ticker, nil, time.Millisecond, nil, nil)
	s.Start()
	waitFor(t, time.Second, func() bool { return ticker.n.Load() > 0 })

	s.Stop()
	s.Stop()
	after := ticker.n.Load()
	time.Sleep(10 * time.Millisecond)
	if ticker.n.Load() != after {
		t.Error("ticked after Stop")
	}
	if s.TickCount() != uint64(after) {
		t.Errorf("TickCount = %d, ticker saw %d", s.TickCount(), after)
	}
}

func TestSchedulerStopWithoutStart(t *testing.T) {
	s, _ := NewScheduler(&countingTicker{}, nil, time.Millisecond, nil, nil)
	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
}
