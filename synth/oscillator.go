// oscillator.go - Square wave oscillator driven by the audio thread

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortSonic
License: GPLv3 or later
*/

package synth

import "math"

const (
	SAMPLE_RATE      = 44100
	CHANNEL_COUNT    = 2
	DEFAULT_VOLUME   = 0.5
	DEFAULT_CAPACITY = 256 // Command ring slots, power of two
)

// Oscillator holds the only state shared across the thread boundary.
// Frequency is written by Commands applied on the audio thread; Phase is
// advanced by Sample and never touched by the control thread.
type Oscillator struct {
	Frequency float64 // Hz
	Phase     float64 // Cycles, wrapped modulo the sample rate
	Amplitude float64
}

// NewOscillator returns a silent-frequency oscillator at the given amplitude.
func NewOscillator(amplitude float64) *Oscillator {
	return &Oscillator{Amplitude: amplitude}
}

// Sample returns +Amplitude in the first half of the current cycle and
// -Amplitude in the second half, then advances the phase by one sample.
func (o *Oscillator) Sample(sampleRate float64) float64 {
	out := -o.Amplitude
	if _, frac := math.Modf(o.Phase); frac < 0.5 {
		out = o.Amplitude
	}

	o.Phase += o.Frequency / sampleRate
	o.Phase = math.Mod(o.Phase, sampleRate)
	return out
}
