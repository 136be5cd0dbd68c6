//go:build !headless

// audio_backend_oto.go - OTO v3 audio output implementation

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortSonic
License: GPLv3 or later
*/

package main

import (
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/pkg/errors"

	"github.com/intuitionamiga/SortSonic/synth"
)

func init() {
	compiledFeatures = append(compiledFeatures, "audio:oto")
}

// OtoPlayer plays a synth.Stream on the default output device. The oto
// player goroutine pulls samples through stream.Read.
type OtoPlayer struct {
	ctx     *oto.Context
	player  *oto.Player
	stream  *synth.Stream
	started bool
	mutex   sync.Mutex // Only for setup/control operations
}

func NewOtoPlayer(stream *synth.Stream) (*OtoPlayer, error) {
	op := &oto.NewContextOptions{
		SampleRate:   stream.SampleRate(),
		ChannelCount: stream.Channels(),
		Format:       oto.FormatFloat32LE,
		BufferSize:   20 * time.Millisecond,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, &AudioError{
			Operation: "context creation",
			Details:   "no usable output device",
			Err:       errors.Wrap(err, "oto"),
		}
	}
	<-ready

	p := &OtoPlayer{
		ctx:    ctx,
		stream: stream,
	}
	p.player = ctx.NewPlayer(stream)
	stream.Attach(p)
	return p, nil
}

func (op *OtoPlayer) Start() {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if !op.started && op.player != nil {
		op.player.Play()
		op.started = true
	}
}

// Pause is called once, through synth.Stream.Pause.
func (op *OtoPlayer) Pause() {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if op.started && op.player != nil {
		op.player.Pause()
		op.started = false
	}
}

func (op *OtoPlayer) Close() error {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	op.started = false
	if op.player == nil {
		return nil
	}
	err := op.player.Close()
	op.player = nil
	return errors.Wrap(err, "close oto player")
}

func (op *OtoPlayer) IsStarted() bool {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	return op.started
}
