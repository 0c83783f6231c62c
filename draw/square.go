package draw

import (
	"fmt"
	"image"

	"github.com/ntBre/image/pixel"
)

// Square is a filled square of side 2·Length+1 around Center.
type Square struct {
	Center image.Point
	Length int
}

func (Square) shape() {}

func (s Square) String() string {
	return fmt.Sprintf("square at %s length %d", s.Center, s.Length)
}

// Draw fills the clamped bounding box; box coordinate (i, j) is buffer pixel (i, j).
func (s Square) Draw(dst *pixel.Buffer, c pixel.Color) error {
	if s.Length <= 0 {
		return fmt.Errorf("%w: %s", pixel.ErrDegenerate, s)
	}

	b := clampedBox(dst, s.Center.X, s.Center.Y, s.Length)
	if b.empty() {
		return nil
	}
	pixel.Logger().Debug("draw: square", "shape", s, "box", b.rect())

	for i := b.lx; i <= b.hx; i++ {
		for j := b.ly; j <= b.hy; j++ {
			if err := dst.Set(i, j, c); err != nil {
				return err
			}
		}
	}
	return nil
}
