//go:build !headless

// video_backend_ebiten.go - Ebiten window, frame clock and HUD

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortSonic
License: GPLv3 or later
*/

package main

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/intuitionamiga/SortSonic/sorter"
)

func init() {
	compiledFeatures = append(compiledFeatures, "video:ebiten")
}

// ebitenSurface adapts the screen image handed to Draw.
type ebitenSurface struct {
	image *ebiten.Image
}

func (s *ebitenSurface) Fill(c color.Color) {
	s.image.Fill(c)
}

func (s *ebitenSurface) FillRect(x, y, width, height float32, c color.Color) {
	vector.DrawFilledRect(s.image, x, y, width, height, c, false)
}

// Ebiten presents the screen after Draw returns.
func (s *ebitenSurface) Present() error {
	return nil
}

type EbitenOutput struct {
	ctx     context.Context
	demo    *Demo
	config  DisplayConfig
	surface ebitenSurface
	drawErr error
}

func NewVideoOutput(config DisplayConfig, demo *Demo, _ *OtoPlayer) (VideoOutput, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, &VideoError{
			Operation: "backend creation",
			Details:   fmt.Sprintf("invalid window size %dx%d", config.Width, config.Height),
		}
	}
	return &EbitenOutput{
		ctx:    context.Background(),
		demo:   demo,
		config: config,
	}, nil
}

func (eo *EbitenOutput) Run(ctx context.Context) error {
	eo.ctx = ctx
	ebiten.SetWindowSize(eo.config.Width, eo.config.Height)
	ebiten.SetWindowTitle("SortSonic - pancake sort")
	ebiten.SetTPS(eo.config.RefreshRate)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(eo); err != nil {
		return &VideoError{Operation: "run", Details: "game loop", Err: err}
	}
	return nil
}

// Update is the frame clock tick. The demo keeps its last frame on screen
// after it is done, until the window closes.
func (eo *EbitenOutput) Update() error {
	if ebiten.IsWindowBeingClosed() || eo.ctx.Err() != nil {
		return ebiten.Termination
	}
	if eo.drawErr != nil {
		return eo.drawErr
	}
	return eo.demo.Update()
}

func (eo *EbitenOutput) Draw(screen *ebiten.Image) {
	eo.surface.image = screen
	if err := eo.demo.Draw(&eo.surface); err != nil {
		eo.drawErr = err
		return
	}
	if eo.config.ShowHUD {
		eo.drawStatusBar(screen)
	}
}

func (eo *EbitenOutput) Layout(_, _ int) (int, int) {
	return eo.config.Width, eo.config.Height
}

type statusToken struct {
	name    string
	enabled bool
}

func drawStatusLine(screen *ebiten.Image, x, baselineY int, label string, tokens []statusToken) {
	face := basicfont.Face7x13
	labelColor := color.RGBA{190, 190, 190, 255}
	offColor := color.RGBA{120, 120, 120, 255}
	onColor := color.RGBA{0, 220, 90, 255}

	text.Draw(screen, label, face, x, baselineY, labelColor)
	cursorX := x + text.BoundString(face, label).Dx() + 6

	for _, token := range tokens {
		c := offColor
		if token.enabled {
			c = onColor
		}
		text.Draw(screen, token.name, face, cursorX, baselineY, c)
		cursorX += text.BoundString(face, token.name).Dx() + 8
	}
}

func (eo *EbitenOutput) drawStatusBar(screen *ebiten.Image) {
	s := runtimeStatus.snapshot()

	barHeight := 31
	if barHeight >= eo.config.Height {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(eo.config.Width), float32(barHeight), color.RGBA{0, 0, 0, 180}, false)

	drawStatusLine(screen, 6, 13, "PHASE", []statusToken{
		{name: "SORT", enabled: s.phase == sorter.PhaseSorting},
		{name: "|", enabled: false},
		{name: "SWEEP", enabled: s.phase == sorter.PhaseVerifying},
		{name: "|", enabled: false},
		{name: "DONE", enabled: s.phase == sorter.PhaseDone},
	})
	drawStatusLine(screen, 6, 26, "AUDIO", []statusToken{
		{name: fmt.Sprintf("%6.1fHz", s.frequency), enabled: s.audioOn},
		{name: "|", enabled: false},
		{name: fmt.Sprintf("%d/%d placed", s.sorted(), s.size), enabled: s.phase != sorter.PhaseSorting},
		{name: "|", enabled: false},
		{name: fmt.Sprintf("%d flips", s.flips), enabled: false},
	})
}
