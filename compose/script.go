package compose

import (
	"bytes"
	"errors"
	"fmt"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"textrun/run"
)

// Bounds is the YAML form of run.Rect.
type Bounds struct {
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (b *Bounds) rect() *run.Rect {
	if b == nil {
		return nil
	}
	return &run.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// Entry is a single append operation. Exactly one of Text and Image is set.
type Entry struct {
	Text  *string `yaml:"text,omitempty"`
	Image string  `yaml:"image,omitempty"`
	// Style is an inline CSS declaration block applied on top of the
	// running attributes.
	Style  string  `yaml:"style,omitempty"`
	Bounds *Bounds `yaml:"bounds,omitempty"`
}

// Script describes a run as an ordered list of appends.
type Script struct {
	Spans []Entry `yaml:"spans"`
}

// ParseScript decodes and checks a YAML run script.
func ParseScript(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode run script: %w", err)
	}
	if err := s.check(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Script) check() (err error) {
	for i, e := range s.Spans {
		switch {
		case e.Text != nil && e.Image != "":
			err = multierr.Append(err, fmt.Errorf("span %d: both text and image specified", i))
		case e.Text == nil && e.Image == "":
			err = multierr.Append(err, fmt.Errorf("span %d: neither text nor image specified", i))
		case e.Text != nil && e.Bounds != nil:
			err = multierr.Append(err, fmt.Errorf("span %d: bounds apply to images only", i))
		case e.Bounds != nil && (e.Bounds.Width <= 0 || e.Bounds.Height <= 0):
			err = multierr.Append(err, fmt.Errorf("span %d: bounds must have positive size", i))
		}
	}
	if err != nil {
		return errors.Join(errors.New("invalid run script"), err)
	}
	return nil
}
