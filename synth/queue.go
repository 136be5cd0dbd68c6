// queue.go - Lock-free single-producer/single-consumer command ring

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortSonic
License: GPLv3 or later
*/

package synth

import "sync/atomic"

// CommandQueue carries Commands from the control thread (producer) to the
// audio thread (consumer) in FIFO order.
//
// Thread assignment:
//   - Push, Flush, Backlog: producer only
//   - Drain: consumer only
//
// The ring is bounded. When it is full, Push parks the command in a
// producer-owned backlog which is moved into the ring, oldest first, on the
// next Push or Flush. Push never blocks and never drops.
type CommandQueue struct {
	// Separate cache lines for producer and consumer counters
	writePos atomic.Uint64
	_pad1    [56]byte
	readPos  atomic.Uint64
	_pad2    [56]byte

	slots []Command
	mask  uint64

	backlog []Command // Producer side only
}

// NewCommandQueue creates a queue whose ring capacity is minSize rounded up
// to the next power of two.
func NewCommandQueue(minSize int) *CommandQueue {
	size := 1
	for size < minSize {
		size <<= 1
	}
	return &CommandQueue{
		slots: make([]Command, size),
		mask:  uint64(size - 1),
	}
}

// Push enqueues cmd behind every command pushed before it.
func (q *CommandQueue) Push(cmd Command) {
	q.Flush()
	if len(q.backlog) > 0 || !q.tryPush(cmd) {
		q.backlog = append(q.backlog, cmd)
	}
}

// Flush moves as much of the backlog into the ring as fits.
func (q *CommandQueue) Flush() {
	n := 0
	for n < len(q.backlog) && q.tryPush(q.backlog[n]) {
		q.backlog[n] = nil
		n++
	}
	if n == len(q.backlog) {
		q.backlog = q.backlog[:0]
		return
	}
	q.backlog = append(q.backlog[:0], q.backlog[n:]...)
}

// Backlog reports how many commands are waiting for ring space.
func (q *CommandQueue) Backlog() int {
	return len(q.backlog)
}

func (q *CommandQueue) tryPush(cmd Command) bool {
	w := q.writePos.Load()
	r := q.readPos.Load()
	if w-r == uint64(len(q.slots)) {
		return false
	}
	q.slots[w&q.mask] = cmd
	q.writePos.Store(w + 1)
	return true
}

// Drain applies every command visible in the ring, oldest first, and
// returns how many were applied. Bounded by the ring capacity.
func (q *CommandQueue) Drain(apply func(Command)) int {
	r := q.readPos.Load()
	w := q.writePos.Load()
	n := 0
	for ; r < w; r++ {
		slot := &q.slots[r&q.mask]
		cmd := *slot
		*slot = nil
		apply(cmd)
		n++
	}
	q.readPos.Store(r)
	return n
}

// Len returns the number of commands in the ring.
func (q *CommandQueue) Len() int {
	return int(q.writePos.Load() - q.readPos.Load())
}
