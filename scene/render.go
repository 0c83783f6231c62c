package scene

import (
	"fmt"
	"image"
	"strings"

	"github.com/ntBre/image/draw"
	"github.com/ntBre/image/pixel"
)

func parseColor(s string) (pixel.Color, error) {
	if s == "" {
		return pixel.Black(), nil
	}
	return pixel.ParseColor(s)
}

func point(name string, v []int) (image.Point, error) {
	if len(v) != 2 {
		return image.Point{}, fmt.Errorf("%w: %s must be [x, y], got %v", ErrScene, name, v)
	}
	return image.Pt(v[0], v[1]), nil
}

// Build converts the table to a drawable shape and its color (black when unset).
func (s Shape) Build() (draw.Shape, pixel.Color, error) {
	c, err := parseColor(s.Color)
	if err != nil {
		return nil, c, err
	}
	at, err := point("at", s.At)
	if err != nil {
		return nil, c, err
	}

	switch kind := strings.ToLower(s.Kind); kind {
	case "circle":
		return draw.Circle{Center: at, Radius: s.Radius}, c, nil
	case "square":
		return draw.Square{Center: at, Length: s.Length}, c, nil
	case "line":
		to, err := point("to", s.To)
		if err != nil {
			return nil, c, err
		}
		width := s.Width
		if width == 0 {
			width = 1
		}
		return draw.Line{From: at, To: to, Width: width}, c, nil
	default:
		return nil, c, fmt.Errorf("%w: unknown shape kind %q", ErrScene, s.Kind)
	}
}

func (l Label) build() (image.Point, pixel.Color, error) {
	c, err := parseColor(l.Color)
	if err != nil {
		return image.Point{}, c, err
	}
	at, err := point("at", l.At)
	return at, c, err
}

func (s *Scene) interpolation() (pixel.Interpolation, error) {
	switch strings.ToLower(s.Interpolation) {
	case "", "nearest":
		return pixel.Nearest, nil
	case "bilinear":
		return pixel.BiLinear, nil
	default:
		return 0, fmt.Errorf("%w: unknown interpolation %q", ErrScene, s.Interpolation)
	}
}

// Render loads the input (or allocates the canvas), fills the background, resizes and then
// draws all shapes followed by all labels.
func (s *Scene) Render() (*pixel.Buffer, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var (
		b   *pixel.Buffer
		err error
	)
	if s.Input != "" {
		if b, err = pixel.Load(s.Path(s.Input)); err != nil {
			return nil, err
		}
	} else {
		b = pixel.NewBuffer(s.Width, s.Height)
	}

	if s.Background != "" {
		c, _ := parseColor(s.Background)
		b.Fill(c)
	}

	if s.Resize != nil {
		interp, _ := s.interpolation()
		b.Resize(s.Resize[0], s.Resize[1], interp)
	}

	for i, shape := range s.Shapes {
		d, c, _ := shape.Build()
		if err = d.Draw(b, c); err != nil {
			return b, fmt.Errorf("shape %d: %w", i, err)
		}
	}

	for i, label := range s.Labels {
		at, c, _ := label.build()
		if err = draw.Label(b, label.Text, at, label.Size, c); err != nil {
			return b, fmt.Errorf("label %d: %w", i, err)
		}
	}

	pixel.Logger().Debug("scene: rendered",
		"shapes", len(s.Shapes),
		"labels", len(s.Labels),
		"bounds", b.Bounds())
	return b, nil
}

// Save renders the scene and writes it to Output.
func (s *Scene) Save() error {
	if s.Output == "" {
		return fmt.Errorf("%w: no output", ErrScene)
	}
	b, err := s.Render()
	if err != nil {
		return err
	}
	return b.Save(s.Path(s.Output))
}
