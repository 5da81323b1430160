package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// oscillator is a finite sine source
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and an exponential release
type envelope struct {
	streamer      beep.Streamer
	position      int
	attackSamples int
	releaseStart  int
	totalSamples  int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	start := total - rate.N(release)
	if start < att {
		start = att
	}
	return &envelope{
		streamer:      s,
		attackSamples: att,
		releaseStart:  start,
		totalSamples:  total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		switch {
		case e.position < e.attackSamples:
			vol = float64(e.position) / float64(e.attackSamples)
		case e.position >= e.releaseStart:
			span := float64(e.totalSamples - e.releaseStart)
			vol = math.Exp(-5 * float64(e.position-e.releaseStart) / span)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; Log2(0) is -Inf so zero volume is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// ChimeFrequency maps an orbital radius to a pitch; wider orbits ring lower
// Non-positive radii return the highest pitch
func ChimeFrequency(radius float64) float64 {
	if !(radius > 0) {
		return maxFreq
	}
	f := refFreq * math.Sqrt(refRadius/radius)
	return math.Max(minFreq, math.Min(maxFreq, f))
}

// newChime builds a bell-like tone: fundamental plus a quieter octave that decays faster
func newChime(freq, volume float64, rate beep.SampleRate) beep.Streamer {
	fund := newEnvelope(newOscillator(freq, chimeDuration, rate), chimeDuration, chimeAttack, chimeRelease, rate)
	over := newEnvelope(newOscillator(freq*2, chimeDuration, rate), chimeDuration, chimeAttack, chimeRelease/2, rate)
	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	return newVolume(mixed, volume)
}
