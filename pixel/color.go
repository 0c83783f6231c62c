package pixel

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Model converts any color to a Color.
var Model color.Model = color.ModelFunc(model)

// Color is a non-premultiplied 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGBA builds a color from its channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Red is opaque red.
func Red() Color { return Color{0xff, 0x00, 0x00, 0xff} }

// Green is opaque green.
func Green() Color { return Color{0x00, 0xff, 0x00, 0xff} }

// Blue is opaque blue.
func Blue() Color { return Color{0x00, 0x00, 0xff, 0xff} }

// Black is opaque black.
func Black() Color { return Color{0x00, 0x00, 0x00, 0xff} }

// White is opaque white.
func White() Color { return Color{0xff, 0xff, 0xff, 0xff} }

// Transparent is the zero color, the content of a new buffer.
func Transparent() Color { return Color{} }

// Channels returns the color in buffer byte order.
func (c Color) Channels() [4]byte {
	return [4]byte{c.R, c.G, c.B, c.A}
}

// RGBA implements color.Color; like color.NRGBA the returned values are premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// String formats the color as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// FromColor converts any color.Color.
func FromColor(c color.Color) Color {
	return model(c).(Color)
}

func model(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// ParseColor parses a hexadecimal color (#rgb, #rgba, #rrggbb or #rrggbbaa, the # is optional)
// or an SVG 1.1 color name such as "red" or "cornflowerblue".
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[name]; ok {
		return FromColor(c), nil
	}

	hex := strings.TrimPrefix(name, "#")
	switch len(hex) {
	case 3, 4:
		// Expand short forms, "f0a" becomes "ff00aa".
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
