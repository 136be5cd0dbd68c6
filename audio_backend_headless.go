//go:build headless

package main

import (
	"context"
	"sync"
	"time"

	"github.com/intuitionamiga/SortSonic/synth"
)

func init() {
	compiledFeatures = append(compiledFeatures, "audio:headless")
}

const headlessAudioPeriod = 10 * time.Millisecond

// OtoPlayer without a device: Pump pulls the stream at real-time cadence
// and discards the samples.
type OtoPlayer struct {
	stream  *synth.Stream
	started bool
	paused  chan struct{}
	once    sync.Once
	mutex   sync.Mutex
}

func NewOtoPlayer(stream *synth.Stream) (*OtoPlayer, error) {
	p := &OtoPlayer{
		stream: stream,
		paused: make(chan struct{}),
	}
	stream.Attach(p)
	return p, nil
}

func (op *OtoPlayer) Start() {
	op.mutex.Lock()
	op.started = true
	op.mutex.Unlock()
}

func (op *OtoPlayer) Pause() {
	op.mutex.Lock()
	op.started = false
	op.mutex.Unlock()
	op.once.Do(func() { close(op.paused) })
}

func (op *OtoPlayer) Close() error {
	op.Pause()
	return nil
}

func (op *OtoPlayer) IsStarted() bool {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	return op.started
}

// Pump renders one period of frames per tick until paused or ctx ends.
func (op *OtoPlayer) Pump(ctx context.Context) error {
	frames := op.stream.SampleRate() * int(headlessAudioPeriod) / int(time.Second)
	buf := make([]float32, frames*op.stream.Channels())

	ticker := time.NewTicker(headlessAudioPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-op.paused:
			return nil
		case <-ticker.C:
			op.stream.Render(buf)
		}
	}
}
