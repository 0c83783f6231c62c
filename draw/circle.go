package draw

import (
	"fmt"
	"image"

	"github.com/ntBre/image/pixel"
)

// Circle is a filled circle around Center.
type Circle struct {
	Center image.Point
	Radius int
}

func (Circle) shape() {}

func (s Circle) String() string {
	return fmt.Sprintf("circle at %s radius %d", s.Center, s.Radius)
}

// Draw fills all pixels of the clamped bounding box within Radius of the box midpoint. Near an
// edge the midpoint moves inward with the clamped box, shifting the circle along.
//
// Box coordinate (i, j) is written to buffer pixel (j, i).
func (s Circle) Draw(dst *pixel.Buffer, c pixel.Color) error {
	if s.Radius <= 0 {
		return fmt.Errorf("%w: %s", pixel.ErrDegenerate, s)
	}

	b := clampedBox(dst, s.Center.X, s.Center.Y, s.Radius)
	if b.empty() {
		return nil
	}
	var (
		mx = (b.lx + b.hx) / 2
		my = (b.ly + b.hy) / 2
		rr = s.Radius * s.Radius
	)
	pixel.Logger().Debug("draw: circle", "shape", s, "box", b.rect(), "mid", image.Pt(mx, my))

	for i := b.lx; i <= b.hx; i++ {
		dx := i - mx
		for j := b.ly; j <= b.hy; j++ {
			dy := j - my
			if dx*dx+dy*dy <= rr {
				if err := dst.Set(j, i, c); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
