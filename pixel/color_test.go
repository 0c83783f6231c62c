package pixel

import (
	"errors"
	"image/color"
	"testing"
)

func TestColorConstructors(t *testing.T) {
	tests := []struct {
		Name  string
		Color Color
		Want  [4]byte
		Text  string
	}{
		{"red", Red(), [4]byte{0xff, 0, 0, 0xff}, "#ff0000ff"},
		{"green", Green(), [4]byte{0, 0xff, 0, 0xff}, "#00ff00ff"},
		{"blue", Blue(), [4]byte{0, 0, 0xff, 0xff}, "#0000ffff"},
		{"black", Black(), [4]byte{0, 0, 0, 0xff}, "#000000ff"},
		{"white", White(), [4]byte{0xff, 0xff, 0xff, 0xff}, "#ffffffff"},
		{"transparent", Transparent(), [4]byte{}, "#00000000"},
		{"custom", RGBA(0x12, 0x34, 0x56, 0x78), [4]byte{0x12, 0x34, 0x56, 0x78}, "#12345678"},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			if v := test.Color.Channels(); v != test.Want {
				it.Errorf("expected channels %v, got %v", test.Want, v)
			}
			if v := test.Color.String(); v != test.Text {
				it.Errorf("expected string %q, got %q", test.Text, v)
			}
		})
	}
}

func TestColorRGBA(t *testing.T) {
	c := RGBA(0x80, 0x40, 0x20, 0x80)
	r, g, b, a := c.RGBA()
	wr, wg, wb, wa := color.NRGBA{R: 0x80, G: 0x40, B: 0x20, A: 0x80}.RGBA()
	if r != wr || g != wg || b != wb || a != wa {
		t.Errorf("expected (%#04x,%#04x,%#04x,%#04x), got (%#04x,%#04x,%#04x,%#04x)", wr, wg, wb, wa, r, g, b, a)
	}
}

func TestFromColor(t *testing.T) {
	for _, c := range []Color{Red(), RGBA(1, 2, 3, 0xff), RGBA(0x10, 0x20, 0x30, 0x40), Transparent()} {
		if v := FromColor(c); v != c {
			t.Errorf("expected %s, got %s", c, v)
		}
	}
	if v := FromColor(color.RGBA{R: 0x80, A: 0x80}); v != RGBA(0xff, 0, 0, 0x80) {
		t.Errorf("expected %s, got %s", RGBA(0xff, 0, 0, 0x80), v)
	}
	if v := FromColor(color.Gray{Y: 0x42}); v != RGBA(0x42, 0x42, 0x42, 0xff) {
		t.Errorf("expected %s, got %s", RGBA(0x42, 0x42, 0x42, 0xff), v)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		Text string
		Want Color
	}{
		{"red", Red()},
		{" Black ", Black()},
		{"cornflowerblue", RGBA(0x64, 0x95, 0xed, 0xff)},
		{"#f0a", RGBA(0xff, 0x00, 0xaa, 0xff)},
		{"f0a8", RGBA(0xff, 0x00, 0xaa, 0x88)},
		{"#123456", RGBA(0x12, 0x34, 0x56, 0xff)},
		{"#12345678", RGBA(0x12, 0x34, 0x56, 0x78)},
		{"#ABCDEF", RGBA(0xab, 0xcd, 0xef, 0xff)},
	}
	for _, test := range tests {
		t.Run(test.Text, func(it *testing.T) {
			v, err := ParseColor(test.Text)
			if err != nil {
				it.Fatal(err)
			}
			if v != test.Want {
				it.Errorf("expected %s, got %s", test.Want, v)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, text := range []string{"", "#", "#12", "#12345", "#1234567", "#zzzzzz", "notacolor", "#+12345"} {
		if _, err := ParseColor(text); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("%q: expected %v, got %v", text, ErrInvalidColor, err)
		}
	}
}
