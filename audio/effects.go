package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/dodge3d/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping frequency
type oscillator struct {
	freq     float64
	sweep    float64 // Frequency change per sample
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.Rand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	var sweep float64
	if samples > 0 {
		sweep = (to - from) / float64(samples)
	}
	return &oscillator{
		freq:     from,
		sweep:    sweep,
		duration: samples,
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewRand(uint64(samples)*2654435761 + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = float64(o.noise.Float32())*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.freq += o.sweep
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume becomes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func shaped(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(s, d, attack, release, rate)
}

// Synthesize builds the streamer for a cue, nil for unknown cues
func Synthesize(cue Cue, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	ms := time.Millisecond

	var s beep.Streamer
	switch cue {
	case CueShot:
		// Descending zap
		s = shaped(NewSweep(1400, 300, 90*ms, WaveSquare, rate), 90*ms, 2*ms, 60*ms, rate)
	case CueHostileShot:
		s = shaped(NewSweep(500, 150, 120*ms, WaveSaw, rate), 120*ms, 5*ms, 80*ms, rate)
	case CueReload:
		s = beep.Seq(
			shaped(NewOscillator(300, 40*ms, WaveSquare, rate), 40*ms, 2*ms, 20*ms, rate),
			shaped(NewOscillator(0, 60*ms, WaveNoise, rate), 60*ms, 2*ms, 40*ms, rate),
		)
	case CueReloadDone:
		s = beep.Seq(
			shaped(NewOscillator(660, 50*ms, WaveSine, rate), 50*ms, 3*ms, 30*ms, rate),
			shaped(NewOscillator(990, 70*ms, WaveSine, rate), 70*ms, 3*ms, 50*ms, rate),
		)
	case CuePlayerHit:
		s = beep.Mix(
			newVolume(shaped(NewOscillator(90, 220*ms, WaveSaw, rate), 220*ms, 2*ms, 150*ms, rate), 0.7),
			newVolume(shaped(NewOscillator(0, 120*ms, WaveNoise, rate), 120*ms, 1*ms, 100*ms, rate), 0.5),
		)
	case CuePlayerHeal:
		s = shaped(NewSweep(440, 880, 200*ms, WaveSine, rate), 200*ms, 20*ms, 80*ms, rate)
	case CueTurretHit:
		s = beep.Mix(
			newVolume(shaped(NewOscillator(880, 150*ms, WaveSine, rate), 150*ms, 2*ms, 120*ms, rate), 0.7),
			newVolume(shaped(NewOscillator(1760, 150*ms, WaveSine, rate), 150*ms, 2*ms, 60*ms, rate), 0.3),
		)
	case CueTurretDestroyed:
		s = beep.Mix(
			newVolume(shaped(NewSweep(220, 40, 600*ms, WaveSaw, rate), 600*ms, 5*ms, 400*ms, rate), 0.6),
			newVolume(shaped(NewOscillator(0, 500*ms, WaveNoise, rate), 500*ms, 5*ms, 450*ms, rate), 0.6),
		)
	default:
		return nil
	}
	return newVolume(s, cfg.Volume(cue))
}
