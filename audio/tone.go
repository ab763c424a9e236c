package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Hover tone shaping. While sound is enabled a tone always exists; hovering
// lifts it from an inaudible rumble to a quiet hum.
const (
	// HoverFreq is the tone frequency while the structure is hovered (Hz)
	HoverFreq = 40.0

	// HoverGain is the tone gain while hovered
	HoverGain = 0.2

	// IdleFreq is the tone frequency at rest (Hz)
	IdleFreq = 10.0

	// IdleGain is the tone gain at rest (fully silent)
	IdleGain = 0.0
)

// ToneSpec is the target shape of the hover tone.
type ToneSpec struct {
	Freq float64
	Gain float64
}

// ToneFor derives the tone shape from the hover flag.
func ToneFor(hovered bool) ToneSpec {
	if hovered {
		return ToneSpec{Freq: HoverFreq, Gain: HoverGain}
	}
	return ToneSpec{Freq: IdleFreq, Gain: IdleGain}
}

// oscillator generates an endless sine wave
type oscillator struct {
	freq  float64
	phase float64
	rate  beep.SampleRate
}

// NewOscillator creates an infinite sine streamer at the given frequency
func NewOscillator(freq float64, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// newVolume wraps a streamer with logarithmic volume shaping; a non-positive
// gain is fully silent rather than a large negative exponent.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain), Silent: false}
}
