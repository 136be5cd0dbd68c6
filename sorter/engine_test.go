package sorter

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/intuitionamiga/SortSonic/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStream applies commands to a local oscillator and records the
// frequency after each one.
type recordingStream struct {
	osc     synth.Oscillator
	sent    []float64
	pauses  int
	stopped bool
	sendErr error
}

func (r *recordingStream) Send(cmd synth.Command) error {
	if r.stopped {
		return synth.ErrStreamStopped
	}
	if r.sendErr != nil {
		return r.sendErr
	}
	cmd(&r.osc)
	r.sent = append(r.sent, r.osc.Frequency)
	return nil
}

func (r *recordingStream) Pause() error {
	r.pauses++
	r.stopped = true
	return nil
}

func snapshot(e *Engine) []int {
	out := make([]int, e.Len())
	for i := range out {
		out[i] = e.At(i)
	}
	return out
}

func TestFlip(t *testing.T) {
	tests := []struct {
		in    []int
		index int
		want  []int
	}{
		{[]int{1, 2, 3, 4, 5}, 0, []int{1, 2, 3, 4, 5}},
		{[]int{1, 2, 3, 4, 5}, 1, []int{2, 1, 3, 4, 5}},
		{[]int{1, 2, 3, 4, 5}, 2, []int{3, 2, 1, 4, 5}},
		{[]int{1, 2, 3, 4, 5}, 4, []int{5, 4, 3, 2, 1}},
	}
	for _, tt := range tests {
		got := slices.Clone(tt.in)
		flip(got, tt.index)
		assert.Equal(t, tt.want, got, "flip(%v, %d)", tt.in, tt.index)
	}
}

func TestEngine_WorkedExample(t *testing.T) {
	stream := &recordingStream{}
	e := NewEngine([]int{3, 1, 4, 2}, stream, DefaultOptions())

	steps := []struct {
		values   []int
		boundary int
		sent     int
	}{
		{[]int{2, 3, 1, 4}, 3, 1},
		{[]int{1, 2, 3, 4}, 2, 2},
		{[]int{1, 2, 3, 4}, 1, 2},
		{[]int{1, 2, 3, 4}, 0, 2},
	}
	for i, want := range steps {
		require.Equal(t, PhaseSorting, e.Phase(), "tick %d", i+1)
		require.NoError(t, e.Step())
		assert.Equal(t, want.values, snapshot(e), "tick %d", i+1)
		assert.Equal(t, want.boundary, e.Boundary(), "tick %d", i+1)
		assert.Len(t, stream.sent, want.sent, "tick %d", i+1)
	}

	assert.Equal(t, PhaseVerifying, e.Phase())
	assert.Equal(t, 4, e.Flips())
	// maxIndex 2 then 1, scaled by 440/N
	assert.InDeltaSlice(t, []float64{220, 110}, stream.sent, 1e-9)
}

func TestEngine_SortsEveryPermutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	sizes := []int{1, 2, 3, 4, 5, 7, 16, 33, 100, MAX_SIZE}

	for _, n := range sizes {
		for trial := 0; trial < 5; trial++ {
			e := NewShuffled(n, rng, &recordingStream{}, DefaultOptions())

			ticks := 0
			for e.Phase() == PhaseSorting {
				before := e.Boundary()
				require.NoError(t, e.Step())
				ticks++
				require.Equal(t, before-1, e.Boundary(), "n=%d boundary must drop by one per tick", n)

				got := slices.Sorted(slices.Values(snapshot(e)))
				require.Equal(t, Permutation(n), got, "n=%d values must stay a permutation", n)
			}

			assert.LessOrEqual(t, ticks, n)
			assert.True(t, e.Sorted(), "n=%d not sorted: %v", n, snapshot(e))
			assert.Equal(t, Permutation(n), snapshot(e))
			assert.Zero(t, e.Boundary())
		}
	}
}

func TestEngine_SortedInputSendsNothing(t *testing.T) {
	stream := &recordingStream{}
	e := NewEngine(Permutation(50), stream, DefaultOptions())
	for e.Phase() == PhaseSorting {
		require.NoError(t, e.Step())
	}
	assert.Empty(t, stream.sent)
	assert.Zero(t, e.Flips())
	assert.Equal(t, 50, e.Ticks())
}

func TestEngine_CompletionSweep(t *testing.T) {
	stream := &recordingStream{}
	e := NewEngine(Permutation(MAX_SIZE), stream, DefaultOptions())
	for e.Phase() == PhaseSorting {
		require.NoError(t, e.Step())
	}
	require.Empty(t, stream.sent)

	sweepTicks := 0
	for e.Phase() == PhaseVerifying {
		require.NoError(t, e.Step())
		sweepTicks++
		require.LessOrEqual(t, sweepTicks, 1000, "sweep never finished")
	}

	assert.Equal(t, 51, sweepTicks)
	assert.Equal(t, PhaseDone, e.Phase())
	assert.True(t, e.Done())
	assert.Equal(t, 1, stream.pauses)
	assert.Equal(t, 1020, e.Progress())

	require.Len(t, stream.sent, 50)
	assert.InDelta(t, 8.8, stream.sent[0], 1e-9)
	assert.InDelta(t, MAX_FREQUENCY, stream.sent[49], 1e-9)
	assert.True(t, slices.IsSorted(stream.sent), "sweep must rise")
}

func TestEngine_BoundaryAndProgress(t *testing.T) {
	e := NewEngine([]int{3, 1, 2}, &recordingStream{}, Options{SweepStep: 2})
	assert.Equal(t, e.Len(), e.Boundary())
	assert.Zero(t, e.Progress())

	for e.Phase() == PhaseSorting {
		before := e.Boundary()
		require.NoError(t, e.Step())
		assert.Equal(t, before-1, e.Boundary())
		assert.Zero(t, e.Progress(), "progress stays 0 while sorting")
		for i := e.Boundary(); i < e.Len(); i++ {
			assert.Equal(t, i+1, e.At(i), "index %d past the boundary must be final", i)
		}
	}
	assert.Zero(t, e.Boundary())

	var progress []int
	for !e.Done() {
		require.NoError(t, e.Step())
		progress = append(progress, e.Progress())
	}
	assert.Equal(t, []int{2, 4}, progress)
	assert.Zero(t, e.Boundary())
}

func TestEngine_DoneIsTerminal(t *testing.T) {
	stream := &recordingStream{}
	e := NewEngine([]int{2, 1}, stream, Options{SweepStep: 1})
	for !e.Done() {
		require.NoError(t, e.Step())
	}
	ticks, sent := e.Ticks(), len(stream.sent)

	for i := 0; i < 10; i++ {
		require.NoError(t, e.Step())
	}
	assert.Equal(t, ticks, e.Ticks())
	assert.Len(t, stream.sent, sent)
	assert.Equal(t, 1, stream.pauses)
	assert.Equal(t, []int{1, 2}, snapshot(e))
}

func TestEngine_PropagatesStreamErrors(t *testing.T) {
	boom := errors.New("device gone")
	stream := &recordingStream{sendErr: boom}
	e := NewEngine([]int{2, 1}, stream, DefaultOptions())

	assert.ErrorIs(t, e.Step(), boom)
	// The step still happened
	assert.Equal(t, 1, e.Boundary())
	assert.Equal(t, []int{1, 2}, snapshot(e))
}

func TestEngine_Defaults(t *testing.T) {
	e := NewEngine(Permutation(3), &recordingStream{}, Options{})
	assert.Equal(t, DefaultOptions(), e.Options())

	empty := NewEngine(nil, &recordingStream{}, DefaultOptions())
	assert.Equal(t, PhaseVerifying, empty.Phase())
}

func TestNewShuffled_Deterministic(t *testing.T) {
	a := NewShuffled(200, rand.New(rand.NewPCG(42, 7)), &recordingStream{}, DefaultOptions())
	b := NewShuffled(200, rand.New(rand.NewPCG(42, 7)), &recordingStream{}, DefaultOptions())
	assert.Equal(t, snapshot(a), snapshot(b))
	assert.Equal(t, Permutation(200), slices.Sorted(slices.Values(snapshot(a))))
}

func TestView_ReflectsSteps(t *testing.T) {
	e := NewEngine([]int{3, 1, 4, 2}, &recordingStream{}, DefaultOptions())
	v := e.View()
	require.Equal(t, 4, v.Len())
	require.Equal(t, 4, v.Max())
	require.NoError(t, e.Step())
	assert.Equal(t, 2, v.At(0))
	assert.Equal(t, 4, v.At(3))
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "sorting", PhaseSorting.String())
	assert.Equal(t, "verifying", PhaseVerifying.String())
	assert.Equal(t, "done", PhaseDone.String())
	assert.Equal(t, "unknown", Phase(9).String())
}

// TestEngine_DrivesRealStream runs the engine against a synth.Stream with an
// interleaved audio render, the way the audio thread would.
func TestEngine_DrivesRealStream(t *testing.T) {
	stream := synth.NewStream(synth.DefaultStreamConfig())
	e := NewShuffled(64, rand.New(rand.NewPCG(3, 3)), stream, DefaultOptions())

	buf := make([]float32, 512)
	for !e.Done() {
		require.NoError(t, e.Step())
		stream.Render(buf)
		assert.LessOrEqual(t, stream.Frequency(), MAX_FREQUENCY)
	}
	assert.True(t, stream.Stopped())
	assert.True(t, e.Sorted())
	assert.ErrorIs(t, stream.Pause(), synth.ErrStreamStopped)
}
