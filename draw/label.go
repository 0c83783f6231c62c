package draw

import (
	"fmt"
	"image"
	"sync"

	"github.com/golang/freetype/truetype"
	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/ntBre/image/pixel"
)

const faceCacheSize = 8

var (
	fontOnce sync.Once
	fontErr  error
	regular  *truetype.Font
	faces    *lru.Cache

	// faceMu serializes use of cached faces, truetype faces keep glyph state.
	faceMu sync.Mutex
)

func loadFont() {
	if regular, fontErr = truetype.Parse(goregular.TTF); fontErr != nil {
		return
	}
	faces, fontErr = lru.New(faceCacheSize)
}

// face returns the Go Regular face at size points, at 72 DPI one point is one pixel.
func face(size float64) (font.Face, error) {
	fontOnce.Do(loadFont)
	if fontErr != nil {
		return nil, fontErr
	}
	if f, ok := faces.Get(size); ok {
		return f.(font.Face), nil
	}

	pixel.Logger().Debug("draw: new font face", "size", size)
	f := truetype.NewFace(regular, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	faces.Add(size, f)
	return f, nil
}

// Label renders text in Go Regular at size points with the baseline starting at origin. The
// origin is in image coordinates: origin.X is the column and origin.Y the row. Glyphs are
// composited over the existing pixels and clipped to the buffer.
func Label(dst *pixel.Buffer, text string, origin image.Point, size float64, c pixel.Color) error {
	if size <= 0 {
		return fmt.Errorf("%w: label size %g", pixel.ErrDegenerate, size)
	}

	faceMu.Lock()
	defer faceMu.Unlock()

	f, err := face(size)
	if err != nil {
		return err
	}
	d := &font.Drawer{
		Dst:  dst.Image(),
		Src:  image.NewUniform(c),
		Face: f,
		Dot:  fixed.P(origin.X, origin.Y),
	}
	d.DrawString(text)
	return nil
}

// LabelBounds returns the pixel rectangle Label would cover, in image coordinates.
func LabelBounds(text string, origin image.Point, size float64) (image.Rectangle, error) {
	if size <= 0 {
		return image.Rectangle{}, fmt.Errorf("%w: label size %g", pixel.ErrDegenerate, size)
	}

	faceMu.Lock()
	defer faceMu.Unlock()

	f, err := face(size)
	if err != nil {
		return image.Rectangle{}, err
	}
	b, _ := font.BoundString(f, text)
	return image.Rect(
		b.Min.X.Floor(), b.Min.Y.Floor(),
		b.Max.X.Ceil(), b.Max.Y.Ceil(),
	).Add(origin), nil
}
