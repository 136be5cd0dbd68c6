// stream.go - Audio-thread render loop fed by the command queue

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortSonic
License: GPLv3 or later
*/

package synth

import (
	"encoding/binary"
	"errors"
	"math"
	"sync"
	"sync/atomic"
)

// ErrStreamStopped is returned by Send and Pause once the stream is paused.
var ErrStreamStopped = errors.New("synth: stream stopped")

// Device is the output side of a stream: whatever pulls samples at the
// device cadence. Pause must stop pulling; it is called once.
type Device interface {
	Pause()
}

// StreamConfig fixes the stream format at creation time.
type StreamConfig struct {
	SampleRate int
	Channels   int
	Volume     float64
	Capacity   int // Command ring slots
}

// DefaultStreamConfig returns 44.1kHz stereo at half amplitude.
func DefaultStreamConfig() StreamConfig {
	return StreamConfig{
		SampleRate: SAMPLE_RATE,
		Channels:   CHANNEL_COUNT,
		Volume:     DEFAULT_VOLUME,
		Capacity:   DEFAULT_CAPACITY,
	}
}

// Stream owns one oscillator on the audio thread and the queue that feeds it.
// The control thread only calls Send, Flush and Pause; the audio thread only
// calls Render or Read.
type Stream struct {
	osc        Oscillator // Audio thread only
	queue      *CommandQueue
	sampleRate float64
	channels   int

	stopped   atomic.Bool
	frequency atomic.Uint64 // float64 bits, mirror of osc.Frequency for display

	mu     sync.Mutex // Setup and pause only
	device Device

	scratch []float32 // Read buffer, audio thread only
}

// NewStream creates a stream with the oscillator at frequency 0.
func NewStream(cfg StreamConfig) *Stream {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = SAMPLE_RATE
	}
	if cfg.Channels <= 0 {
		cfg.Channels = CHANNEL_COUNT
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = DEFAULT_CAPACITY
	}
	return &Stream{
		osc:        Oscillator{Amplitude: cfg.Volume},
		queue:      NewCommandQueue(cfg.Capacity),
		sampleRate: float64(cfg.SampleRate),
		channels:   cfg.Channels,
	}
}

// Attach sets the device paused by Pause.
func (s *Stream) Attach(d Device) {
	s.mu.Lock()
	s.device = d
	s.mu.Unlock()
}

// SampleRate returns the rate the stream was created with.
func (s *Stream) SampleRate() int { return int(s.sampleRate) }

// Channels returns the interleaved channel count.
func (s *Stream) Channels() int { return s.channels }

// Send schedules cmd on the audio thread. It never blocks.
func (s *Stream) Send(cmd Command) error {
	if s.stopped.Load() {
		return ErrStreamStopped
	}
	s.queue.Push(cmd)
	return nil
}

// Flush retries commands parked while the ring was full.
func (s *Stream) Flush() {
	if !s.stopped.Load() {
		s.queue.Flush()
	}
}

// Pause stops sample generation and pauses the attached device. Only the
// first call has an effect; later calls return ErrStreamStopped.
func (s *Stream) Pause() error {
	if !s.stopped.CompareAndSwap(false, true) {
		return ErrStreamStopped
	}
	s.mu.Lock()
	d := s.device
	s.mu.Unlock()
	if d != nil {
		d.Pause()
	}
	return nil
}

// Stopped reports whether Pause has been called.
func (s *Stream) Stopped() bool {
	return s.stopped.Load()
}

// Frequency returns the frequency the audio thread last rendered with.
func (s *Stream) Frequency() float64 {
	return math.Float64frombits(s.frequency.Load())
}

func (s *Stream) apply(cmd Command) {
	cmd(&s.osc)
}

// Render drains pending commands, then fills buf with interleaved frames.
// A stopped stream renders silence.
func (s *Stream) Render(buf []float32) {
	if s.stopped.Load() {
		clear(buf)
		return
	}
	s.queue.Drain(s.apply)
	s.frequency.Store(math.Float64bits(s.osc.Frequency))

	for i := 0; i+s.channels <= len(buf); i += s.channels {
		v := float32(s.osc.Sample(s.sampleRate))
		for c := 0; c < s.channels; c++ {
			buf[i+c] = v
		}
	}
	// Partial trailing frame
	if tail := len(buf) % s.channels; tail != 0 {
		clear(buf[len(buf)-tail:])
	}
}

// Read implements io.Reader over float32 little-endian interleaved frames.
func (s *Stream) Read(p []byte) (int, error) {
	n := len(p) / 4
	if cap(s.scratch) < n {
		s.scratch = make([]float32, n)
	}
	samples := s.scratch[:n]
	s.Render(samples)
	for i, v := range samples {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(v))
	}
	clear(p[n*4:])
	return len(p), nil
}
