// Package audio synthesizes short impact cues and plays them through the system speaker
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/space-tanks/event"
	"github.com/lixenwraith/space-tanks/parameter"
)

// WaveType selects the oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator emits a fixed-length mono wave on both channels
// Noise comes from a private LCG so cues are reproducible
type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     WaveType
	rate     beep.SampleRate
	seed     uint32
}

func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: rate.N(duration),
		wave:   wave,
		rate:   rate,
		seed:   0x2545f491,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			o.seed = o.seed*1664525 + 1013904223
			val = float64(o.seed)/float64(math.MaxUint32)*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps the wrapped stream up over attack and down over release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		gain := 1.0
		if e.attack > 0 && e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			gain = math.Max(float64(e.total-e.position)/float64(e.release), 0)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; zero or less is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// ImpactCue returns the cue for an impact event kind, nil for events without one
func ImpactCue(kind event.EventType, rate beep.SampleRate, volume float64) beep.Streamer {
	switch kind {
	case event.EventImpactObstacle:
		body := NewOscillator(parameter.ObstacleCueFreq, parameter.ObstacleCueDuration, WaveSine, rate)
		grit := NewOscillator(0, parameter.ObstacleCueDuration, WaveNoise, rate)
		mixed := beep.Mix(newVolume(body, 0.8), newVolume(grit, 0.2))
		shaped := NewEnvelope(mixed, parameter.ObstacleCueDuration, parameter.ObstacleCueAttack, parameter.ObstacleCueRelease, rate)
		return newVolume(shaped, volume)

	case event.EventTankDestroyed:
		rumble := NewOscillator(parameter.KillCueFreq, parameter.KillCueDuration, WaveSine, rate)
		crack := NewOscillator(0, parameter.KillCueDuration, WaveNoise, rate)
		mixed := beep.Mix(newVolume(rumble, 0.5), newVolume(crack, 0.5))
		shaped := NewEnvelope(mixed, parameter.KillCueDuration, parameter.KillCueAttack, parameter.KillCueRelease, rate)
		return newVolume(shaped, volume)

	case event.EventPlayerHit:
		buzz := NewOscillator(parameter.PlayerHitCueFreq, parameter.PlayerHitCueDuration, WaveSaw, rate)
		shaped := NewEnvelope(buzz, parameter.PlayerHitCueDuration, parameter.PlayerHitCueAttack, parameter.PlayerHitCueRelease, rate)
		return newVolume(shaped, volume)
	}
	return nil
}
