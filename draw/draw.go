// Package draw rasterizes filled circles, filled squares, straight lines and text onto a
// [pixel.Buffer].
//
// Shape anchors use buffer coordinates (see package pixel); text origins use image
// coordinates of [pixel.Buffer.Image].
package draw

import (
	"image"

	"github.com/ntBre/image/pixel"
)

// Shape is one of [Circle], [Square] or [Line].
type Shape interface {
	// Draw paints the shape onto dst in color c. Pixels written before an error are kept.
	Draw(dst *pixel.Buffer, c pixel.Color) error

	// String describes the shape for logs and errors.
	String() string

	shape()
}

// Draw paints shapes onto dst in order, stopping at the first error.
func Draw(dst *pixel.Buffer, c pixel.Color, shapes ...Shape) error {
	for _, s := range shapes {
		if err := s.Draw(dst, c); err != nil {
			return err
		}
	}
	return nil
}

// box is an inclusive pixel range [lx, hx] × [ly, hy].
type box struct {
	lx, hx int
	ly, hy int
}

func (b box) empty() bool {
	return b.lx > b.hx || b.ly > b.hy
}

// clampedBox returns [x−r, x+r] × [y−r, y+r] clamped to [0, width−1] × [0, height−1].
func clampedBox(dst *pixel.Buffer, x, y, r int) box {
	w, h := dst.Shape()
	return box{
		lx: max(x-r, 0),
		hx: min(x+r, w-1),
		ly: max(y-r, 0),
		hy: min(y+r, h-1),
	}
}

// rect returns the box as a half-open rectangle for logging.
func (b box) rect() image.Rectangle {
	return image.Rect(b.lx, b.ly, b.hx+1, b.hy+1)
}

// Interface checks.
var (
	_ Shape = Circle{}
	_ Shape = Square{}
	_ Shape = Line{}
)
