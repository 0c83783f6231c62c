package codec

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// PNG is the Portable Network Graphics codec.
var PNG Codec = pngCodec{encoder: &png.Encoder{CompressionLevel: png.DefaultCompression}}

type pngCodec struct {
	encoder *png.Encoder
}

// Decode reads a PNG stream. Images are reported in the format they were stored in: 8-bit
// truecolor decodes as RGB, truecolor with alpha (or a tRNS chunk) as RGBA, and so on.
func (c pngCodec) Decode(r io.Reader) (*Raster, error) {
	m, err := png.Decode(r)
	if err != nil {
		return nil, err
	}

	var (
		b      = m.Bounds()
		raster = &Raster{Width: b.Dx(), Height: b.Dy()}
	)
	switch m := m.(type) {
	case *image.RGBA:
		// The alpha channel of an 8-bit truecolor PNG is always opaque; drop it.
		raster.Format = RGB
		raster.Pix = make([]byte, 0, 3*raster.Width*raster.Height)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := m.Pix[m.PixOffset(b.Min.X, y):m.PixOffset(b.Max.X, y)]
			for i := 0; i < len(row); i += 4 {
				raster.Pix = append(raster.Pix, row[i], row[i+1], row[i+2])
			}
		}
	case *image.NRGBA:
		raster.Format = RGBA
		raster.Pix = packRows(m.Pix, m.Stride, b, 4)
	case *image.Gray:
		raster.Format = Gray
		raster.Pix = packRows(m.Pix, m.Stride, b, 1)
	case *image.Paletted:
		raster.Format = Paletted
		raster.Pix = packRows(m.Pix, m.Stride, b, 1)
	case *image.RGBA64:
		raster.Format = RGB16
		raster.Pix = make([]byte, 0, 6*raster.Width*raster.Height)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := m.Pix[m.PixOffset(b.Min.X, y):m.PixOffset(b.Max.X, y)]
			for i := 0; i < len(row); i += 8 {
				raster.Pix = append(raster.Pix, row[i:i+6]...)
			}
		}
	case *image.NRGBA64:
		raster.Format = RGBA16
		raster.Pix = packRows(m.Pix, m.Stride, b, 8)
	case *image.Gray16:
		raster.Format = Gray16
		raster.Pix = packRows(m.Pix, m.Stride, b, 2)
	default:
		return nil, fmt.Errorf("%w: %T", ErrFormat, m)
	}
	return raster, nil
}

// Encode writes an RGBA raster as PNG. Fully opaque rasters are stored as 8-bit truecolor
// without an alpha channel by the image/png encoder.
func (c pngCodec) Encode(w io.Writer, raster *Raster) error {
	if raster.Format != RGBA {
		return fmt.Errorf("%w: %s", ErrFormat, raster.Format)
	}
	if err := raster.Validate(); err != nil {
		return err
	}
	return c.encoder.Encode(w, &image.NRGBA{
		Pix:    raster.Pix,
		Stride: 4 * raster.Width,
		Rect:   image.Rect(0, 0, raster.Width, raster.Height),
	})
}

// packRows copies the pixels inside b out of a strided buffer.
func packRows(pix []byte, stride int, b image.Rectangle, bpp int) []byte {
	var (
		w   = b.Dx() * bpp
		out = make([]byte, 0, w*b.Dy())
	)
	for y := 0; y < b.Dy(); y++ {
		off := y * stride
		out = append(out, pix[off:off+w]...)
	}
	return out
}
