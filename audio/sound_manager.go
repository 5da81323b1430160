// Package audio plays a short chime whenever a planet completes an orbit
package audio

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/scene"
)

const (
	sampleRate = beep.SampleRate(44100)

	chimeDuration = 450 * time.Millisecond
	chimeAttack   = 8 * time.Millisecond
	chimeRelease  = 350 * time.Millisecond

	// refRadius rings at refFreq; the innermost default orbit
	refRadius = 12.0
	refFreq   = 880.0
	minFreq   = 110.0
	maxFreq   = 1760.0

	// maxVoices caps overlapping chimes
	maxVoices = 8
)

// output is the playback device
type output interface {
	Init() error
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Close()
}

var (
	speakerOnce sync.Once
	speakerErr  error
)

// speakerOutput drives the process-wide beep speaker, which may only be initialized once
type speakerOutput struct{}

func (speakerOutput) Init() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond))
	})
	return speakerErr
}

func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock()                { speaker.Lock() }
func (speakerOutput) Unlock()              { speaker.Unlock() }
func (speakerOutput) Close()               { speaker.Clear() }

// SoundManager owns the chime mixer
// Every method is safe without a working device; playback silently degrades
type SoundManager struct {
	mu          sync.Mutex
	out         output
	mixer       *beep.Mixer
	volume      float64
	enabled     bool
	initialized bool
	started     bool

	muted  atomic.Bool
	played atomic.Uint64
}

// NewSoundManager creates a manager for the system speaker
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	return newSoundManager(cfg, speakerOutput{})
}

func newSoundManager(cfg config.AudioConfig, out output) *SoundManager {
	return &SoundManager{
		out:     out,
		mixer:   &beep.Mixer{},
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
	}
}

// Name implements service.Service
func (sm *SoundManager) Name() string { return "audio" }

// Dependencies implements service.Service
func (sm *SoundManager) Dependencies() []string { return nil }

// Init opens the device; failure leaves the manager silent rather than returning an error
func (sm *SoundManager) Init(...any) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}
	if err := sm.out.Init(); err != nil {
		log.Printf("audio: unavailable, continuing silent: %v", err)
		return nil
	}
	sm.initialized = true
	return nil
}

// Start attaches the mixer to the device
func (sm *SoundManager) Start() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.started {
		return nil
	}
	sm.out.Play(sm.mixer)
	sm.started = true
	log.Printf("audio: chimes enabled, volume %.2f", sm.volume)
	return nil
}

// Stop drops every playing chime
func (sm *SoundManager) Stop() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.started {
		return nil
	}
	sm.out.Lock()
	sm.mixer.Clear()
	sm.out.Unlock()
	sm.out.Close()
	sm.started = false
	return nil
}

// PlayChime queues a chime pitched for radius, reporting whether it will sound
func (sm *SoundManager) PlayChime(radius float64) bool {
	if sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.started {
		return false
	}

	chime := newChime(ChimeFrequency(radius), sm.volume, sampleRate)
	sm.out.Lock()
	if sm.mixer.Len() >= maxVoices {
		sm.out.Unlock()
		return false
	}
	sm.mixer.Add(chime)
	sm.out.Unlock()

	sm.played.Add(1)
	return true
}

// OnOrbit adapts PlayChime to scene orbit events
func (sm *SoundManager) OnOrbit(ev scene.OrbitEvent) {
	sm.PlayChime(ev.Radius)
}

// Toggle flips mute
func (sm *SoundManager) Toggle() {
	muted := !sm.muted.Load()
	sm.muted.Store(muted)
	log.Printf("audio: muted=%v", muted)
}

// IsMuted reports the mute flag
func (sm *SoundManager) IsMuted() bool { return sm.muted.Load() }

// IsAvailable reports whether chimes reach a device
func (sm *SoundManager) IsAvailable() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.started
}

// Played returns the number of chimes queued so far
func (sm *SoundManager) Played() uint64 { return sm.played.Load() }
