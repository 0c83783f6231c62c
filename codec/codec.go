package codec

import (
	"errors"
	"io"
)

// Errors
var (
	ErrFormat = errors.New("codec: unsupported channel format")
	ErrSize   = errors.New("codec: pixel data does not match image size")
)

// Format is the channel layout of raster pixel bytes.
type Format uint8

// Supported formats.
const (
	Unknown  Format = iota
	RGB             // 3 bytes per pixel
	RGBA            // 4 bytes per pixel, non-premultiplied
	Gray            // 1 byte per pixel
	Paletted        // 1 palette index per pixel
	RGB16           // 6 bytes per pixel, big endian
	RGBA16          // 8 bytes per pixel, big endian, non-premultiplied
	Gray16          // 2 bytes per pixel, big endian
)

func (f Format) String() string {
	switch f {
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	case Gray:
		return "gray"
	case Paletted:
		return "paletted"
	case RGB16:
		return "RGB16"
	case RGBA16:
		return "RGBA16"
	case Gray16:
		return "gray16"
	default:
		return "unknown"
	}
}

// BytesPerPixel returns the packed pixel size, or 0 for Unknown.
func (f Format) BytesPerPixel() int {
	switch f {
	case Gray, Paletted:
		return 1
	case Gray16:
		return 2
	case RGB:
		return 3
	case RGBA:
		return 4
	case RGB16:
		return 6
	case RGBA16:
		return 8
	default:
		return 0
	}
}

// Raster is a decoded image: Width×Height pixels stored row by row without padding.
type Raster struct {
	Width  int
	Height int
	Format Format
	Pix    []byte
}

// Validate checks that Pix holds exactly Width×Height pixels of Format.
func (r *Raster) Validate() error {
	bpp := r.Format.BytesPerPixel()
	if bpp == 0 {
		return ErrFormat
	}
	if r.Width < 0 || r.Height < 0 || len(r.Pix) != bpp*r.Width*r.Height {
		return ErrSize
	}
	return nil
}

// Codec decodes and encodes rasters.
type Codec interface {
	// Decode reads one image from r.
	Decode(r io.Reader) (*Raster, error)

	// Encode writes raster to w. Implementations accept at least RGBA rasters.
	Encode(w io.Writer, raster *Raster) error
}
