// renderer.go - Array to bar-chart frame mapping

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortSonic
License: GPLv3 or later
*/

package render

import (
	"image/color"
)

const (
	BAR_SATURATION = 1.0
	BAR_LIGHTNESS  = 0.5
)

// Background is the frame clear colour.
var Background color.Color = color.Black

// Surface is the drawing service a frame is issued against. Coordinates
// have the origin at the top-left, y growing downward.
type Surface interface {
	Fill(c color.Color)
	FillRect(x, y, width, height float32, c color.Color)
	Present() error
}

// Array is the read-only data being drawn.
type Array interface {
	Len() int
	At(i int) int
	Max() int
}

// Bar is one rectangle of a frame.
type Bar struct {
	X, Y, Width, Height float32
	Color               HSL
}

// Renderer maps an array to a viewport of the given size. It keeps no state
// between frames.
type Renderer struct {
	Width  float32
	Height float32
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{Width: float32(width), Height: float32(height)}
}

// BarAt computes the rectangle for value v at index i of n. Bars sit side by
// side in index order and grow upward from the bottom edge.
func (r *Renderer) BarAt(i, v, n, top int) Bar {
	w := r.Width / float32(n)
	h := float32(v) / float32(top) * r.Height
	return Bar{
		X:      float32(i) * w,
		Y:      r.Height - h,
		Width:  w,
		Height: h,
		Color: HSL{
			H: float64(v-1) / float64(top),
			S: BAR_SATURATION,
			L: BAR_LIGHTNESS,
		},
	}
}

// Bars returns every bar of the frame for a.
func (r *Renderer) Bars(a Array) []Bar {
	n, top := a.Len(), a.Max()
	bars := make([]Bar, n)
	for i := range bars {
		bars[i] = r.BarAt(i, a.At(i), n, top)
	}
	return bars
}

// Draw clears s, issues one rectangle per element and presents the frame.
func (r *Renderer) Draw(s Surface, a Array) error {
	s.Fill(Background)
	n, top := a.Len(), a.Max()
	for i := 0; i < n; i++ {
		b := r.BarAt(i, a.At(i), n, top)
		s.FillRect(b.X, b.Y, b.Width, b.Height, b.Color)
	}
	return s.Present()
}
