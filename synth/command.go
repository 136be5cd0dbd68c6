package synth

// Command is a one-shot mutation of the oscillator, built on the control
// thread and applied on the audio thread.
type Command func(o *Oscillator)

// SetFrequency returns a Command that sets the oscillator frequency to hz.
func SetFrequency(hz float64) Command {
	return func(o *Oscillator) {
		o.Frequency = hz
	}
}
