package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = max(peak, buf[i][0], -buf[i][0])
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
}

func TestOscillatorWavesStayInRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		total, peak := drain(osc)
		assert.Equal(t, rate.N(100*time.Millisecond), total, "wave %d", wave)
		assert.LessOrEqual(t, peak, 1.0, "wave %d", wave)
		assert.Greater(t, peak, 0.0, "wave %d", wave)
		assert.NoError(t, osc.Err())
	}
}

func TestOscillatorExhausted(t *testing.T) {
	osc := NewOscillator(440, 0, WaveSine, beep.SampleRate(44100))
	n, ok := osc.Stream(make([][2]float64, 10))
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestEnvelopeShapes(t *testing.T) {
	rate := beep.SampleRate(1000)
	// Constant +1 square at a frequency low enough to never flip
	src := NewOscillator(0.001, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(src, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	require.Equal(t, 100, n)

	assert.InDelta(t, 0, buf[0][0], 1e-9, "attack starts silent")
	assert.InDelta(t, 0.5, buf[5][0], 1e-9)
	assert.InDelta(t, 1, buf[50][0], 1e-9, "sustain at full level")
	assert.Less(t, buf[99][0], buf[90][0], "release falls off")
}

func TestSynthesizeEveryCue(t *testing.T) {
	cfg := DefaultConfig()
	for c := Cue(0); c < cueCount; c++ {
		s := Synthesize(c, cfg)
		require.NotNil(t, s, c.String())
		total, peak := drain(s)
		assert.Positive(t, total, c.String())
		assert.Positive(t, peak, c.String())
	}
	assert.Nil(t, Synthesize(cueCount, cfg))
}

func TestSynthesizeMuted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0
	_, peak := drain(Synthesize(CueShot, cfg))
	assert.Zero(t, peak)
}
