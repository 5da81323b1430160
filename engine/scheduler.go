package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/status"
)

// Ticker advances the simulation by one step
type Ticker interface {
	Tick()
}

// Scheduler runs a Ticker on a fixed interval
// Handles pause-aware scheduling without busy-wait
type Scheduler struct {
	ticker Ticker
	clock  *PausableClock

	tickInterval     time.Duration
	nextTickDeadline time.Time // next tick deadline for drift correction

	tickCount atomic.Uint64
	mu        sync.RWMutex

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Frame synchronization; nil frameReady ticks without waiting for the renderer
	frameReady <-chan struct{}
	updateDone chan struct{}

	statTicks  *atomic.Int64
	statPaused *atomic.Bool
}

// NewScheduler creates a scheduler ticking t every tickInterval
// Receives the renderer's frameReady channel and returns the updateDone channel it signals after each tick
func NewScheduler(
	t Ticker,
	clock *PausableClock,
	tickInterval time.Duration,
	frameReady <-chan struct{},
	reg *status.Registry,
) (*Scheduler, <-chan struct{}) {
	if clock == nil {
		clock = NewPausableClock(nil)
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	updateDone := make(chan struct{}, 1)

	s := &Scheduler{
		ticker:       t,
		clock:        clock,
		tickInterval: tickInterval,
		frameReady:   frameReady,
		updateDone:   updateDone,
		stopChan:     make(chan struct{}),
		statTicks:    reg.Ints.Get("engine.ticks"),
		statPaused:   reg.Bools.Get("engine.paused"),
	}
	return s, updateDone
}

// Name implements service.Service
func (s *Scheduler) Name() string { return "scheduler" }

// Dependencies implements service.Service
func (s *Scheduler) Dependencies() []string { return nil }

// Init implements service.Service
func (s *Scheduler) Init(...any) error { return nil }

// Start begins the scheduler loop
func (s *Scheduler) Start() error {
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		core.Go(s.loop)
		log.Printf("scheduler: started at %v", s.tickInterval)
	}
	return nil
}

// Stop halts the scheduler loop and waits for the current tick to finish
func (s *Scheduler) Stop() error {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		if s.running.CompareAndSwap(true, false) {
			s.wg.Wait()
			log.Printf("scheduler: stopped after %d ticks", s.tickCount.Load())
		}
	})
	return nil
}

// Pause freezes ticking; the clock stops with it
func (s *Scheduler) Pause() {
	s.clock.Pause()
	s.statPaused.Store(true)
}

// Resume restarts ticking from the current clock time
func (s *Scheduler) Resume() {
	s.clock.Resume()
	s.statPaused.Store(false)
}

// TogglePause flips the pause state and returns the new one
func (s *Scheduler) TogglePause() bool {
	if s.clock.IsPaused() {
		s.Resume()
		return false
	}
	s.Pause()
	return true
}

// IsPaused reports the pause state
func (s *Scheduler) IsPaused() bool {
	return s.clock.IsPaused()
}

// TickCount returns ticks executed by this scheduler
func (s *Scheduler) TickCount() uint64 {
	return s.tickCount.Load()
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	s.mu.Lock()
	s.nextTickDeadline = s.clock.Now().Add(s.tickInterval)
	s.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		default:
		}

		var sleepDuration time.Duration

		if s.clock.IsPaused() {
			// Longer sleep while paused to save CPU
			sleepDuration = s.tickInterval * 2
		} else {
			now := s.clock.Now()

			s.mu.RLock()
			deadline := s.nextTickDeadline
			s.mu.RUnlock()

			if !now.Before(deadline) {
				if s.frameReady != nil {
					select {
					case <-s.frameReady:
					case <-time.After(s.tickInterval * 2):
					case <-s.stopChan:
						return
					}
				}

				s.ticker.Tick()
				ticks := s.tickCount.Add(1)
				s.statTicks.Store(int64(ticks))

				s.mu.Lock()
				s.nextTickDeadline = s.nextTickDeadline.Add(s.tickInterval)
				// Drop missed ticks rather than bursting to catch up
				if now.Sub(s.nextTickDeadline) > s.tickInterval*2 {
					s.nextTickDeadline = now.Add(s.tickInterval)
				}
				deadline = s.nextTickDeadline
				s.mu.Unlock()

				select {
				case s.updateDone <- struct{}{}:
				default:
				}

				sleepDuration = deadline.Sub(s.clock.Now())
			} else {
				sleepDuration = deadline.Sub(now)
			}
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-s.stopChan:
				return
			}
		}
	}
}
