package codec

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func testRaster(w, h int, alpha byte) *Raster {
	r := &Raster{Width: w, Height: h, Format: RGBA, Pix: make([]byte, 4*w*h)}
	for i := 0; i < len(r.Pix); i += 4 {
		r.Pix[i+0] = byte(i)
		r.Pix[i+1] = byte(i >> 1)
		r.Pix[i+2] = byte(i >> 2)
		r.Pix[i+3] = alpha
	}
	return r
}

func TestPNGRoundTripOpaque(t *testing.T) {
	src := testRaster(7, 3, 0xff)

	var buf bytes.Buffer
	if err := PNG.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	dst, err := PNG.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if dst.Format != RGB {
		t.Fatalf("expected format %s, got %s", RGB, dst.Format)
	}
	if dst.Width != src.Width || dst.Height != src.Height {
		t.Fatalf("expected size %dx%d, got %dx%d", src.Width, src.Height, dst.Width, dst.Height)
	}
	if err = dst.Validate(); err != nil {
		t.Fatal(err)
	}
	for i, j := 0, 0; i < len(src.Pix); i, j = i+4, j+3 {
		if !bytes.Equal(src.Pix[i:i+3], dst.Pix[j:j+3]) {
			t.Fatalf("pixel %d is %v, expected %v", i/4, dst.Pix[j:j+3], src.Pix[i:i+3])
		}
	}
}

func TestPNGRoundTripTranslucent(t *testing.T) {
	src := testRaster(4, 4, 0x80)

	var buf bytes.Buffer
	if err := PNG.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	dst, err := PNG.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if dst.Format != RGBA {
		t.Fatalf("expected format %s, got %s", RGBA, dst.Format)
	}
	if !bytes.Equal(src.Pix, dst.Pix) {
		t.Errorf("expected pixels %v, got %v", src.Pix, dst.Pix)
	}
}

func TestPNGDecodeGray(t *testing.T) {
	m := image.NewGray(image.Rect(0, 0, 3, 2))
	m.SetGray(1, 1, color.Gray{Y: 0x42})

	var buf bytes.Buffer
	if err := png.Encode(&buf, m); err != nil {
		t.Fatal(err)
	}

	r, err := PNG.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if r.Format != Gray {
		t.Fatalf("expected format %s, got %s", Gray, r.Format)
	}
	if v := r.Pix[1*3+1]; v != 0x42 {
		t.Errorf("expected gray %#02x, got %#02x", 0x42, v)
	}
}

func TestPNGDecodeGarbage(t *testing.T) {
	if _, err := PNG.Decode(bytes.NewReader([]byte("not a png"))); err == nil {
		t.Error("expected an error decoding garbage")
	}
}

func TestPNGEncodeErrors(t *testing.T) {
	tests := []struct {
		Name   string
		Raster *Raster
		Err    error
	}{
		{"rgb", &Raster{Width: 1, Height: 1, Format: RGB, Pix: make([]byte, 3)}, ErrFormat},
		{"short", &Raster{Width: 2, Height: 2, Format: RGBA, Pix: make([]byte, 4)}, ErrSize},
		{"long", &Raster{Width: 1, Height: 1, Format: RGBA, Pix: make([]byte, 8)}, ErrSize},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			err := PNG.Encode(new(bytes.Buffer), test.Raster)
			if !errors.Is(err, test.Err) {
				it.Errorf("expected %v, got %v", test.Err, err)
			}
		})
	}
}

func TestPNGEncodeEmpty(t *testing.T) {
	if err := PNG.Encode(new(bytes.Buffer), &Raster{Format: RGBA}); err == nil {
		t.Error("expected an error encoding an empty image")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		Format Format
		Name   string
		Size   int
	}{
		{Unknown, "unknown", 0},
		{RGB, "RGB", 3},
		{RGBA, "RGBA", 4},
		{Gray, "gray", 1},
		{Paletted, "paletted", 1},
		{RGB16, "RGB16", 6},
		{RGBA16, "RGBA16", 8},
		{Gray16, "gray16", 2},
	}
	for _, test := range tests {
		if v := test.Format.String(); v != test.Name {
			t.Errorf("expected name %q, got %q", test.Name, v)
		}
		if v := test.Format.BytesPerPixel(); v != test.Size {
			t.Errorf("%s: expected %d bytes per pixel, got %d", test.Name, test.Size, v)
		}
	}
}
