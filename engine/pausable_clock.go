package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides simulation wall time that stands still while paused
type PausableClock struct {
	mu sync.RWMutex

	provider  TimeProvider
	startTime time.Time

	isPaused        atomic.Bool
	pauseStartTime  time.Time     // real time the current pause began
	totalPausedTime time.Duration // cumulative pause duration
}

// NewPausableClock creates a running clock; nil provider uses the monotonic clock
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		provider:  provider,
		startTime: provider.Now(),
	}
}

// Now returns clock time: real elapsed minus paused time, frozen during a pause
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		return pc.startTime.Add(pc.pauseStartTime.Sub(pc.startTime) - pc.totalPausedTime)
	}
	return pc.startTime.Add(pc.provider.Now().Sub(pc.startTime) - pc.totalPausedTime)
}

// RealTime returns provider time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.provider.Now()
}

// Elapsed returns running time since creation
func (pc *PausableClock) Elapsed() time.Duration {
	return pc.Now().Sub(pc.startTime)
}

// Pause stops clock advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		pc.pauseStartTime = pc.provider.Now()
		pc.mu.Unlock()
	}
}

// Resume continues clock advancement
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		if !pc.pauseStartTime.IsZero() {
			pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStartTime)
			pc.pauseStartTime = time.Time{}
		}
	}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}
