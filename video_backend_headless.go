//go:build headless

package main

import (
	"context"
	"image/color"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"gopkg.in/cheggaaa/pb.v1"
)

func init() {
	compiledFeatures = append(compiledFeatures, "video:headless")
}

// countingSurface draws nothing and counts calls.
type countingSurface struct {
	rects  uint64
	frames uint64
}

func (s *countingSurface) Fill(color.Color) {}

func (s *countingSurface) FillRect(_, _, _, _ float32, _ color.Color) {
	s.rects++
}

func (s *countingSurface) Present() error {
	s.frames++
	return nil
}

type HeadlessVideoOutput struct {
	demo    *Demo
	audio   *OtoPlayer
	config  DisplayConfig
	surface countingSurface
}

func NewVideoOutput(config DisplayConfig, demo *Demo, audio *OtoPlayer) (VideoOutput, error) {
	if config.RefreshRate <= 0 {
		config.RefreshRate = DEFAULT_TPS
	}
	return &HeadlessVideoOutput{
		demo:   demo,
		audio:  audio,
		config: config,
	}, nil
}

// Run ticks the demo at the configured rate while the audio pump runs on
// its own goroutine. It returns once the demo is done.
func (h *HeadlessVideoOutput) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)

	g.Go(func() error {
		return h.audio.Pump(ctx)
	})
	g.Go(func() error {
		defer cancel()
		return h.frameLoop(ctx)
	})
	return g.Wait()
}

// tickInterval is the frame period for tps ticks per second, never below 1ns.
func tickInterval(tps int) time.Duration {
	if tps <= 0 {
		tps = DEFAULT_TPS
	}
	return max(time.Second/time.Duration(tps), time.Nanosecond)
}

func (h *HeadlessVideoOutput) frameLoop(ctx context.Context) error {
	var bar *pb.ProgressBar
	if term.IsTerminal(int(os.Stdout.Fd())) {
		bar = pb.New(h.demo.Engine().Len())
		bar.Prefix("sorting ")
		bar.SetMaxWidth(70)
		bar.SetRefreshRate(200 * time.Millisecond)
		bar.Output = os.Stdout
		bar.Start()
		defer bar.Finish()
	}

	ticker := time.NewTicker(tickInterval(h.config.RefreshRate))
	defer ticker.Stop()
	for !h.demo.Done() {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		if err := h.demo.Update(); err != nil {
			return err
		}
		if err := h.demo.Draw(&h.surface); err != nil {
			return &VideoError{Operation: "draw", Details: "headless frame", Err: err}
		}
		if bar != nil {
			bar.Set(runtimeStatus.snapshot().sorted())
		}
	}
	return nil
}
