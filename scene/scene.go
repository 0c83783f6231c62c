// Package scene describes a drawing in TOML: the canvas, an optional input image, shapes and
// text labels, and renders it to a pixel buffer.
//
//	width = 64
//	height = 64
//	background = "white"
//	output = "out.png"
//
//	[[shape]]
//	kind = "circle"
//	at = [32, 32]
//	radius = 10
//	color = "#ff0000"
//
//	[[label]]
//	text = "hello"
//	at = [4, 60]
//	size = 12.0
//
// Relative input and output paths are resolved against the scene file's directory.
package scene

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrScene is wrapped by all scene validation errors.
var ErrScene = errors.New("scene: invalid scene")

// Scene is a decoded scene file.
type Scene struct {
	// Width and Height of a new canvas; not allowed together with Input.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Input is a PNG file to draw on.
	Input string `toml:"input"`

	// Output is the PNG file to write.
	Output string `toml:"output"`

	// Background fills the canvas before drawing.
	Background string `toml:"background"`

	// Resize is the [width, height] the canvas is scaled to before drawing.
	Resize []int `toml:"resize"`

	// Interpolation is "nearest" (default) or "bilinear".
	Interpolation string `toml:"interpolation"`

	Shapes []Shape `toml:"shape"`
	Labels []Label `toml:"label"`

	dir string
}

// Shape is one [[shape]] table.
type Shape struct {
	// Kind is "circle", "square" or "line".
	Kind string `toml:"kind"`

	// At is the center of circles and squares and the start of lines.
	At []int `toml:"at"`

	// To is the end of lines.
	To []int `toml:"to"`

	Radius int    `toml:"radius"`
	Length int    `toml:"length"`
	Width  int    `toml:"width"`
	Color  string `toml:"color"`
}

// Label is one [[label]] table.
type Label struct {
	Text  string  `toml:"text"`
	At    []int   `toml:"at"`
	Size  float64 `toml:"size"`
	Color string  `toml:"color"`
}

// LoadFile decodes the scene file at path.
func LoadFile(path string) (*Scene, error) {
	s := new(Scene)
	md, err := toml.DecodeFile(path, s)
	if err != nil {
		return nil, err
	}
	if err = checkUndecoded(md); err != nil {
		return nil, err
	}
	s.dir = filepath.Dir(path)
	return s, s.Validate()
}

// Decode reads a scene from r; relative paths are resolved against the working directory.
func Decode(r io.Reader) (*Scene, error) {
	s := new(Scene)
	md, err := toml.NewDecoder(r).Decode(s)
	if err != nil {
		return nil, err
	}
	if err = checkUndecoded(md); err != nil {
		return nil, err
	}
	return s, s.Validate()
}

func checkUndecoded(md toml.MetaData) error {
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, key := range keys {
			names[i] = key.String()
		}
		return fmt.Errorf("%w: unknown keys %s", ErrScene, strings.Join(names, ", "))
	}
	return nil
}

// Path resolves p against the scene file's directory.
func (s *Scene) Path(p string) string {
	if p == "" || filepath.IsAbs(p) || s.dir == "" {
		return p
	}
	return filepath.Join(s.dir, p)
}

// Validate checks the canvas settings and every shape and label.
func (s *Scene) Validate() error {
	switch {
	case s.Input != "" && (s.Width != 0 || s.Height != 0):
		return fmt.Errorf("%w: width and height can not be combined with input", ErrScene)
	case s.Input == "" && (s.Width <= 0 || s.Height <= 0):
		return fmt.Errorf("%w: canvas size %dx%d", ErrScene, s.Width, s.Height)
	}
	if s.Resize != nil && (len(s.Resize) != 2 || s.Resize[0] < 0 || s.Resize[1] < 0) {
		return fmt.Errorf("%w: resize must be [width, height], got %v", ErrScene, s.Resize)
	}
	if _, err := s.interpolation(); err != nil {
		return err
	}
	if s.Background != "" {
		if _, err := parseColor(s.Background); err != nil {
			return err
		}
	}
	for i, shape := range s.Shapes {
		if _, _, err := shape.Build(); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	for i, label := range s.Labels {
		if _, _, err := label.build(); err != nil {
			return fmt.Errorf("label %d: %w", i, err)
		}
	}
	return nil
}
