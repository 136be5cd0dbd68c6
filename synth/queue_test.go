package synth

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tag returns a command that records n when applied.
func tag(n int, seen *[]int) Command {
	return func(*Oscillator) {
		*seen = append(*seen, n)
	}
}

func run(cmd Command) { cmd(nil) }

func TestCommandQueue_RoundsCapacity(t *testing.T) {
	q := NewCommandQueue(5)
	assert.Len(t, q.slots, 8)
	assert.Equal(t, uint64(7), q.mask)
}

func TestCommandQueue_FIFO(t *testing.T) {
	q := NewCommandQueue(16)
	var seen []int
	for i := 0; i < 10; i++ {
		q.Push(tag(i, &seen))
	}
	require.Equal(t, 10, q.Len())

	n := q.Drain(run)
	assert.Equal(t, 10, n)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, seen)
	assert.Zero(t, q.Len())
	assert.Zero(t, q.Drain(run))
}

func TestCommandQueue_OverflowKeepsEverythingInOrder(t *testing.T) {
	q := NewCommandQueue(4)
	var seen []int
	for i := 0; i < 10; i++ {
		q.Push(tag(i, &seen))
	}
	assert.Equal(t, 4, q.Len())
	assert.Equal(t, 6, q.Backlog())

	q.Drain(run)
	q.Flush()
	assert.Equal(t, 4, q.Len())
	assert.Equal(t, 2, q.Backlog())

	// A push behind a backlog must not overtake it
	q.Drain(run)
	q.Push(tag(10, &seen))
	assert.Zero(t, q.Backlog())
	q.Drain(run)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, seen)
}

// TestCommandQueue_ConcurrentProducerConsumer has one goroutine per side.
// Run with -race; ordering is checked on the consumer.
func TestCommandQueue_ConcurrentProducerConsumer(t *testing.T) {
	const total = 20000
	q := NewCommandQueue(64)

	var got []int // Consumer only
	var wg sync.WaitGroup

	wg.Go(func() {
		for i := 0; i < total; i++ {
			q.Push(tag(i, &got))
		}
		for q.Backlog() > 0 {
			q.Flush()
			runtime.Gosched()
		}
	})

	wg.Go(func() {
		for len(got) < total {
			if q.Drain(run) == 0 {
				runtime.Gosched()
			}
		}
	})

	wg.Wait()
	require.Len(t, got, total)
	for i, v := range got {
		if v != i {
			t.Fatalf("command %d delivered out of order as %d", i, v)
		}
	}
}
