// engine.go - Pancake sort advanced one step per frame

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortSonic
License: GPLv3 or later
*/

package sorter

import (
	"github.com/intuitionamiga/SortSonic/synth"
)

const (
	MAX_SIZE           = 1000  // Compile-time bound on the array length
	MAX_FREQUENCY      = 440.0 // Hz, top of both the flip and sweep ranges
	DEFAULT_SWEEP_STEP = 20
)

// Phase is the engine state.
type Phase int

const (
	PhaseSorting Phase = iota
	PhaseVerifying
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseSorting:
		return "sorting"
	case PhaseVerifying:
		return "verifying"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

// Stream is the audio handle the engine drives. *synth.Stream implements it.
type Stream interface {
	Send(cmd synth.Command) error
	Pause() error
}

// Options tune the tone mapping and the completion sweep.
type Options struct {
	MaxFrequency float64
	SweepStep    int
}

// DefaultOptions returns the 440Hz range and a sweep step of 20.
func DefaultOptions() Options {
	return Options{
		MaxFrequency: MAX_FREQUENCY,
		SweepStep:    DEFAULT_SWEEP_STEP,
	}
}

// Engine owns the array and advances it one pancake step per Step call.
type Engine struct {
	values   []int
	boundary int // Indices [0, boundary) are not yet in final position
	progress int // Completion sweep counter
	phase    Phase

	ticks int
	flips int

	stream Stream
	opts   Options
}

// NewEngine takes ownership of values, which must be a permutation of
// 1..len(values).
func NewEngine(values []int, stream Stream, opts Options) *Engine {
	if opts.MaxFrequency <= 0 {
		opts.MaxFrequency = MAX_FREQUENCY
	}
	if opts.SweepStep <= 0 {
		opts.SweepStep = DEFAULT_SWEEP_STEP
	}
	e := &Engine{
		values:   values,
		boundary: len(values),
		stream:   stream,
		opts:     opts,
	}
	if e.boundary == 0 {
		e.phase = PhaseVerifying
	}
	return e
}

// Step performs one unit of work for the current phase. Errors come from
// the stream only.
func (e *Engine) Step() error {
	switch e.phase {
	case PhaseSorting:
		e.ticks++
		return e.sortStep()
	case PhaseVerifying:
		e.ticks++
		return e.sweepStep()
	}
	return nil
}

func (e *Engine) sortStep() error {
	n := e.boundary
	maxIdx := maxIndex(e.values[:n])
	var err error
	if maxIdx != n-1 {
		if maxIdx != 0 {
			flip(e.values, maxIdx)
			e.flips++
		}
		flip(e.values, n-1)
		e.flips++
		err = e.stream.Send(synth.SetFrequency(e.toneFor(maxIdx)))
	}
	e.boundary--
	if e.boundary == 0 {
		e.phase = PhaseVerifying
	}
	return err
}

func (e *Engine) sweepStep() error {
	e.progress += e.opts.SweepStep
	if e.progress > len(e.values) {
		e.phase = PhaseDone
		return e.stream.Pause()
	}
	return e.stream.Send(synth.SetFrequency(e.toneFor(e.progress)))
}

// toneFor maps an index or counter in [0, N] linearly onto [0, MaxFrequency].
func (e *Engine) toneFor(x int) float64 {
	return float64(x) / float64(len(e.values)) * e.opts.MaxFrequency
}

func maxIndex(values []int) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

// flip reverses values[0..index] in place.
func flip(values []int, index int) {
	for left := 0; left < index; left, index = left+1, index-1 {
		values[left], values[index] = values[index], values[left]
	}
}

// Phase is the current lifecycle state.
func (e *Engine) Phase() Phase { return e.phase }

// Boundary is the length of the unsorted prefix: indices [0, Boundary) are
// not yet in final position, everything from Boundary on is. It falls by one
// per sorting tick and reaches 0 when sorting ends.
func (e *Engine) Boundary() int { return e.boundary }

// Progress is the completion sweep counter. It stays 0 while sorting, then
// grows by the sweep step each verifying tick until it passes the array
// length.
func (e *Engine) Progress() int { return e.progress }

// Ticks counts sorting and sweep steps taken.
func (e *Engine) Ticks() int { return e.ticks }

// Flips counts prefix reversals performed.
func (e *Engine) Flips() int { return e.flips }

func (e *Engine) Len() int     { return len(e.values) }
func (e *Engine) At(i int) int { return e.values[i] }

// Done reports whether the sweep has finished. Step is a no-op afterwards.
func (e *Engine) Done() bool { return e.phase == PhaseDone }

func (e *Engine) Options() Options { return e.opts }

// View returns a read-only view of the array for rendering.
func (e *Engine) View() View {
	return View{values: e.values}
}

// Sorted reports whether the array is in ascending order.
func (e *Engine) Sorted() bool {
	for i := 1; i < len(e.values); i++ {
		if e.values[i-1] > e.values[i] {
			return false
		}
	}
	return true
}
