package pixel

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Interpolation selects the resampling kernel used by [Buffer.Resize].
type Interpolation uint8

// Supported interpolations.
const (
	Nearest Interpolation = iota
	BiLinear
)

func (i Interpolation) String() string {
	switch i {
	case BiLinear:
		return "bilinear"
	default:
		return "nearest"
	}
}

func (i Interpolation) scaler() xdraw.Scaler {
	switch i {
	case BiLinear:
		return xdraw.BiLinear
	default:
		return xdraw.NearestNeighbor
	}
}

// Resize scales the buffer content to width×height, reallocating its pixels. It panics if a
// dimension is negative.
func (b *Buffer) Resize(width, height int, interp Interpolation) {
	dst := NewBuffer(width, height)
	if len(b.pix) > 0 && len(dst.pix) > 0 {
		interp.scaler().Scale(dst.Image(), dst.Bounds(), b.Image(), b.Bounds(), xdraw.Src, nil)
	}
	Logger().Debug("pixel: resized buffer",
		"from", image.Pt(b.width, b.height),
		"to", image.Pt(width, height),
		"interpolation", interp)
	*b = *dst
}
