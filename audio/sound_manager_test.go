package audio

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/scene"
)

// fakeOutput records playback instead of touching a device
type fakeOutput struct {
	sync.Mutex
	initErr error
	played  []beep.Streamer
	closed  bool
}

func (f *fakeOutput) Init() error          { return f.initErr }
func (f *fakeOutput) Play(s beep.Streamer) { f.played = append(f.played, s) }
func (f *fakeOutput) Close()               { f.closed = true }

func startedManager(t *testing.T) (*SoundManager, *fakeOutput) {
	t.Helper()
	out := &fakeOutput{}
	sm := newSoundManager(config.AudioConfig{Enabled: true, Volume: 0.5}, out)
	if err := sm.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := sm.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return sm, out
}

func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := newSoundManager(config.AudioConfig{Enabled: true, Volume: 1}, &fakeOutput{initErr: errors.New("no device")})

	if err := sm.Init(); err != nil {
		t.Fatalf("Init should swallow device errors, got %v", err)
	}
	if err := sm.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if sm.PlayChime(12) {
		t.Error("PlayChime reported sound without a device")
	}
	sm.OnOrbit(scene.OrbitEvent{Planet: "Naboo", Radius: 24})
	sm.Toggle()
	if err := sm.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
	if sm.IsAvailable() {
		t.Error("manager claims availability after failed init")
	}
}

func TestSoundManagerDisabledNeverOpensDevice(t *testing.T) {
	out := &fakeOutput{}
	sm := newSoundManager(config.AudioConfig{Enabled: false}, out)
	_ = sm.Init()
	_ = sm.Start()
	if len(out.played) != 0 {
		t.Error("disabled manager attached to the device")
	}
	if sm.PlayChime(12) {
		t.Error("disabled manager played a chime")
	}
}

func TestSoundManagerStartIdempotent(t *testing.T) {
	sm, out := startedManager(t)
	_ = sm.Init()
	_ = sm.Start()
	if len(out.played) != 1 {
		t.Errorf("mixer attached %d times, want 1", len(out.played))
	}
	_ = sm.Stop()
	if !out.closed {
		t.Error("Stop did not release the device")
	}
}

func TestPlayChimeMixesAudio(t *testing.T) {
	sm, _ := startedManager(t)

	if !sm.PlayChime(18) {
		t.Fatal("PlayChime returned false on a started manager")
	}
	if sm.mixer.Len() != 1 || sm.Played() != 1 {
		t.Fatalf("mixer len %d, played %d", sm.mixer.Len(), sm.Played())
	}

	buf := make([][2]float64, sampleRate.N(chimeDuration)/2)
	n, ok := sm.mixer.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	peak := 0.0
	for _, s := range buf {
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak == 0 || peak > 1 {
		t.Errorf("peak amplitude %v outside (0, 1]", peak)
	}
}

func TestPlayChimeMuted(t *testing.T) {
	sm, _ := startedManager(t)
	sm.Toggle()
	if !sm.IsMuted() {
		t.Fatal("Toggle did not mute")
	}
	if sm.PlayChime(12) {
		t.Error("muted manager played a chime")
	}
	sm.Toggle()
	if !sm.PlayChime(12) {
		t.Error("unmuted manager refused a chime")
	}
}

func TestPlayChimeVoiceLimit(t *testing.T) {
	sm, _ := startedManager(t)
	for i := 0; i < maxVoices; i++ {
		if !sm.PlayChime(12) {
			t.Fatalf("chime %d refused below the voice limit", i)
		}
	}
	if sm.PlayChime(12) {
		t.Error("chime accepted beyond the voice limit")
	}
}

func TestChimeFrequency(t *testing.T) {
	if got := ChimeFrequency(refRadius); got != refFreq {
		t.Errorf("reference radius = %v Hz, want %v", got, refFreq)
	}
	prev := math.Inf(1)
	for _, r := range []float64{6, 12, 18, 24, 36, 48, 60} {
		f := ChimeFrequency(r)
		if f > prev {
			t.Errorf("radius %v rings higher (%v) than a smaller orbit (%v)", r, f, prev)
		}
		if f < minFreq || f > maxFreq {
			t.Errorf("radius %v: %v Hz out of range", r, f)
		}
		prev = f
	}
	for _, r := range []float64{0, -3, math.NaN()} {
		if got := ChimeFrequency(r); got != maxFreq {
			t.Errorf("ChimeFrequency(%v) = %v, want %v", r, got, maxFreq)
		}
	}
}

func TestChimeDrains(t *testing.T) {
	chime := newChime(440, 1, sampleRate)
	want := sampleRate.N(chimeDuration)
	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := chime.Stream(buf)
		total += n
		if !ok {
			break
		}
		if total > want*2 {
			t.Fatal("chime never drained")
		}
	}
	if total != want {
		t.Errorf("chime length %d samples, want %d", total, want)
	}
}

func TestEnvelopeShape(t *testing.T) {
	const rate = beep.SampleRate(1000)
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
	env := newEnvelope(src, chimeDuration, chimeAttack, chimeRelease, rate)
	buf := make([][2]float64, rate.N(chimeDuration))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("envelope streamed %d of %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("attack starts at %v, want 0", buf[0][0])
	}
	mid := rate.N(chimeAttack) + 1
	if buf[mid][0] != 1 {
		t.Errorf("sustain level %v, want 1", buf[mid][0])
	}
	if last := buf[n-1][0]; last > 0.01 {
		t.Errorf("release ends at %v, want near 0", last)
	}
}
