package draw

import (
	"fmt"
	"image"
	"math"

	"github.com/ntBre/image/pixel"
)

// Line is a straight line of the given Width between From and To.
type Line struct {
	From, To image.Point
	Width    int
}

func (Line) shape() {}

func (s Line) String() string {
	return fmt.Sprintf("line from %s to %s width %d", s.From, s.To, s.Width)
}

// Draw walks i over [From.X, To.X) and paints Width pixels per step: buffer pixels
// (round(m·i + b), w) for w in [i − Width/2, i − Width/2 + Width), where y = m·x + b passes
// through both endpoints. Endpoints are swapped when From.X > To.X.
//
// Vertical lines (From.X == To.X) have no slope and are rejected. Writes are not clamped;
// the first pixel outside the buffer stops the draw with pixel.ErrOutOfBounds.
func (s Line) Draw(dst *pixel.Buffer, c pixel.Color) error {
	if s.Width <= 0 || s.From.X == s.To.X {
		return fmt.Errorf("%w: %s", pixel.ErrDegenerate, s)
	}

	from, to := s.From, s.To
	if from.X > to.X {
		from, to = to, from
	}
	var (
		m    = float64(to.Y-from.Y) / float64(to.X-from.X)
		b    = float64(to.Y) - m*float64(to.X)
		half = s.Width / 2
	)
	pixel.Logger().Debug("draw: line", "shape", s, "slope", m, "intercept", b)

	for i := from.X; i < to.X; i++ {
		row := int(math.Round(m*float64(i) + b))
		for w := i - half; w < i-half+s.Width; w++ {
			if err := dst.Set(row, w, c); err != nil {
				return err
			}
		}
	}
	return nil
}
