package pixel

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrOutOfBounds  = errors.New("pixel: out of buffer bounds")
	ErrDecode       = errors.New("pixel: decode failed")
	ErrEncode       = errors.New("pixel: encode failed")
	ErrDegenerate   = errors.New("pixel: degenerate geometry")
	ErrInvalidColor = errors.New("pixel: invalid color")
)

// BoundsError reports an access outside of a buffer.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (err *BoundsError) Error() string {
	return fmt.Sprintf("pixel: (%d,%d) out of %dx%d buffer bounds", err.X, err.Y, err.Width, err.Height)
}

// Unwrap returns ErrOutOfBounds.
func (err *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}
