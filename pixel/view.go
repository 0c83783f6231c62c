package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

// Image returns a view of the buffer implementing draw.Image, so image/draw, x/image and font
// renderers can paint on it.
//
// The view uses image coordinates: X is the column and Y the row, so view pixel (X, Y) is
// buffer pixel (Y, X). Reads outside the view return transparent black, writes are ignored.
func (b *Buffer) Image() draw.Image {
	return &view{b}
}

type view struct {
	b *Buffer
}

func (v *view) ColorModel() color.Model {
	return Model
}

func (v *view) Bounds() image.Rectangle {
	return v.b.Bounds()
}

func (v *view) Opaque() bool {
	for i := 3; i < len(v.b.pix); i += 4 {
		if v.b.pix[i] != 0xff {
			return false
		}
	}
	return true
}

func (v *view) offset(x, y int) (int, bool) {
	if !(image.Point{X: x, Y: y}).In(v.Bounds()) {
		return 0, false
	}
	return v.b.PixOffset(y, x), true
}

func (v *view) At(x, y int) color.Color {
	i, ok := v.offset(x, y)
	if !ok {
		return Color{}
	}
	s := v.b.pix[i : i+4 : i+4]
	return Color{R: s[0], G: s[1], B: s[2], A: s[3]}
}

func (v *view) Set(x, y int, c color.Color) {
	i, ok := v.offset(x, y)
	if !ok {
		return
	}
	p := FromColor(c).Channels()
	copy(v.b.pix[i:i+4], p[:])
}

// Interface checks.
var (
	_ draw.Image  = (*view)(nil)
	_ color.Color = Color{}
)
