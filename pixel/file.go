package pixel

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/ntBre/image/codec"
)

// Load decodes the PNG file at path. The file must hold 8-bit RGB pixels; every pixel gets an
// opaque alpha channel. Filesystem errors are returned unchanged, codec failures wrap
// ErrDecode.
func Load(path string) (*Buffer, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return Decode(bufio.NewReader(f), codec.PNG)
}

// Decode reads an image from r with c. Only RGB rasters are accepted, other channel formats
// are rejected rather than reinterpreted.
func Decode(r io.Reader, c codec.Codec) (*Buffer, error) {
	raster, err := c.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if raster.Format != codec.RGB {
		return nil, fmt.Errorf("%w: %w: %s", ErrDecode, codec.ErrFormat, raster.Format)
	}
	if err = raster.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	b := &Buffer{
		width:  raster.Width,
		height: raster.Height,
		pix:    make([]byte, 0, 4*raster.Width*raster.Height),
	}
	for i := 0; i < len(raster.Pix); i += 3 {
		b.pix = append(b.pix, raster.Pix[i], raster.Pix[i+1], raster.Pix[i+2], 0xff)
	}
	Logger().Debug("pixel: decoded buffer", "width", b.width, "height", b.height, "format", raster.Format)
	return b, nil
}

// Save encodes the buffer as PNG to path, creating or truncating the file.
//
// Note that PNG files written from a buffer with any non-opaque pixel carry an alpha channel
// and can not be loaded back by [Load].
func (b *Buffer) Save(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if err = b.Encode(w, codec.PNG); err != nil {
		return err
	}
	return w.Flush()
}

// Encode writes the buffer to w with c as an RGBA raster.
func (b *Buffer) Encode(w io.Writer, c codec.Codec) error {
	raster := &codec.Raster{
		Width:  b.width,
		Height: b.height,
		Format: codec.RGBA,
		Pix:    b.pix,
	}
	if err := c.Encode(w, raster); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	Logger().Debug("pixel: encoded buffer", "width", b.width, "height", b.height)
	return nil
}
