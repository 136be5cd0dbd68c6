// demo.go - Frame-clock glue between the sort engine, renderer and audio stream

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortSonic
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/convox/logger"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/intuitionamiga/SortSonic/render"
	"github.com/intuitionamiga/SortSonic/sorter"
	"github.com/intuitionamiga/SortSonic/synth"
)

// Demo owns one run. Update and Draw are called from the frame driver's
// goroutine, once per frame, in that order.
type Demo struct {
	engine   *sorter.Engine
	stream   *synth.Stream
	renderer *render.Renderer
	log      *logger.Logger

	phase   sorter.Phase
	started time.Time
	elapsed time.Duration
}

// NewDemo shuffles cfg.Size values and binds the engine to stream.
func NewDemo(cfg Config, stream *synth.Stream, log *logger.Logger) *Demo {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	d := &Demo{
		engine:   sorter.NewShuffled(cfg.Size, rng, stream, cfg.EngineOptions()),
		stream:   stream,
		renderer: render.NewRenderer(cfg.Width, cfg.Height),
		log:      log.At("demo"),
		started:  time.Now(),
	}
	d.phase = d.engine.Phase()
	d.log.Logf("state=start size=%d seed=%d max_frequency=%0.1f sweep_step=%d", cfg.Size, seed, cfg.MaxFrequency, cfg.SweepStep)
	d.publish()
	return d
}

// Update advances the engine one step.
func (d *Demo) Update() error {
	d.stream.Flush()
	if err := d.engine.Step(); err != nil {
		return errors.Wrapf(err, "step %d", d.engine.Ticks())
	}
	if p := d.engine.Phase(); p != d.phase {
		d.phase = p
		d.transition(p)
	}
	d.publish()
	return nil
}

func (d *Demo) transition(p sorter.Phase) {
	switch p {
	case sorter.PhaseVerifying:
		d.log.Logf("state=%s ticks=%d flips=%d sorted=%t", p, d.engine.Ticks(), d.engine.Flips(), d.engine.Sorted())
	case sorter.PhaseDone:
		d.elapsed = time.Since(d.started)
		d.log.Logf("state=%s ticks=%d", p, d.engine.Ticks())
	}
}

// Draw renders the current array to s.
func (d *Demo) Draw(s render.Surface) error {
	return d.renderer.Draw(s, d.engine.View())
}

// Done reports whether the sweep has finished and the stream is paused.
func (d *Demo) Done() bool {
	return d.engine.Done()
}

func (d *Demo) Engine() *sorter.Engine {
	return d.engine
}

// Summary describes a finished run in one line.
func (d *Demo) Summary() string {
	return fmt.Sprintf("sorted %s values with %s flips in %s ticks (%s)",
		humanize.Comma(int64(d.engine.Len())),
		humanize.Comma(int64(d.engine.Flips())),
		humanize.Comma(int64(d.engine.Ticks())),
		d.elapsed.Round(time.Millisecond))
}

func (d *Demo) publish() {
	runtimeStatus.set(runtimeStatusSnapshot{
		phase:     d.engine.Phase(),
		size:      d.engine.Len(),
		boundary:  d.engine.Boundary(),
		progress:  d.engine.Progress(),
		ticks:     d.engine.Ticks(),
		flips:     d.engine.Flips(),
		frequency: d.stream.Frequency(),
		audioOn:   !d.stream.Stopped(),
	})
}
