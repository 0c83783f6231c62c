package pixel

import (
	"image"
)

// Buffer is a width×height RGBA pixel buffer.
type Buffer struct {
	width  int
	height int
	pix    []byte
}

// NewBuffer allocates a zeroed (transparent black) buffer. It panics if a dimension is negative.
func NewBuffer(width, height int) *Buffer {
	if width < 0 || height < 0 {
		panic("pixel: negative buffer dimension")
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]byte, 4*width*height),
	}
}

// Shape returns the buffer width and height.
func (b *Buffer) Shape() (width, height int) {
	return b.width, b.height
}

// Bounds returns the buffer dimensions as a rectangle anchored at the origin.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Pix returns the raw pixel bytes, 4 per pixel. The slice aliases the buffer.
func (b *Buffer) Pix() []byte {
	return b.pix
}

// Clear zeroes all pixels.
func (b *Buffer) Clear() {
	clear(b.pix)
}

// Fill overwrites every pixel with c.
func (b *Buffer) Fill(c Color) {
	if len(b.pix) == 0 {
		return
	}
	v := c.Channels()
	copy(b.pix, v[:])
	// Double the filled prefix until the buffer is covered.
	for n := 4; n < len(b.pix); n *= 2 {
		copy(b.pix[n:], b.pix[:n])
	}
}

// PixOffset returns the index of the first byte of pixel (x, y).
func (b *Buffer) PixOffset(x, y int) int {
	return 4*x*b.width + 4*y
}

// offset validates (x, y) and returns its pixel offset.
func (b *Buffer) offset(x, y int) (int, error) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0, &BoundsError{X: x, Y: y, Width: b.width, Height: b.height}
	}
	i := b.PixOffset(x, y)
	if i+4 > len(b.pix) {
		// Rows are addressed by x, so on a buffer wider than high part of the
		// nominal range has no storage.
		return 0, &BoundsError{X: x, Y: y, Width: b.width, Height: b.height}
	}
	return i, nil
}

// At returns the color of pixel (x, y).
func (b *Buffer) At(x, y int) (Color, error) {
	i, err := b.offset(x, y)
	if err != nil {
		return Color{}, err
	}
	s := b.pix[i : i+4 : i+4]
	return Color{R: s[0], G: s[1], B: s[2], A: s[3]}, nil
}

// Set changes the color of pixel (x, y).
func (b *Buffer) Set(x, y int, c Color) error {
	i, err := b.offset(x, y)
	if err != nil {
		return err
	}
	v := c.Channels()
	copy(b.pix[i:i+4], v[:])
	return nil
}
