// Package compose builds runs from YAML scripts.
package compose

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"textrun/attrs"
	"textrun/css"
	"textrun/run"
)

// Composer turns scripts into runs.
type Composer struct {
	codec   *attrs.Codec
	parser  *css.Parser
	log     *zap.Logger
	maxSize int
}

// NewComposer creates a composer. maxSize limits loaded image dimensions, 0
// keeps images as they are.
func NewComposer(codec *attrs.Codec, maxSize int, log *zap.Logger) *Composer {
	if log == nil {
		log = zap.NewNop()
	}
	if codec == nil {
		codec = attrs.NewCodec(attrs.StandardDefaults(), log)
	}
	return &Composer{
		codec:   codec,
		parser:  css.NewParser(log, css.WithFallbackFont(codec.Defaults().Font)),
		log:     log.Named("compose"),
		maxSize: maxSize,
	}
}

// Build appends every script entry to a new run. Relative image paths are
// resolved against dir. All style and image errors are reported together;
// no run is returned when there are any.
func (c *Composer) Build(ctx context.Context, s *Script, dir string) (*run.Builder, error) {
	b := run.New(run.WithCodec(c.codec), run.WithLogger(c.log))

	var errs error
	for i, e := range s.Spans {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		style, err := c.parser.Compile(e.Style)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("span %d: bad style: %w", i, err))
		}

		if e.Text != nil {
			b.Append(*e.Text, style)
			continue
		}

		att, err := c.loadImage(dir, e)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("span %d: %w", i, err))
			continue
		}
		c.log.Debug("Image loaded", zap.String("file", e.Image), zap.String("mime", att.MIME), zap.Stringer("id", att.ID))
		b.AppendAttachment(att, style)
	}
	if errs != nil {
		return nil, errs
	}
	return b, nil
}

func (c *Composer) loadImage(dir string, e Entry) (*run.Attachment, error) {
	path := e.Image
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read image: %w", err)
	}
	att, err := run.LoadAttachment(data, c.maxSize, e.Bounds.rect())
	if err != nil {
		return nil, fmt.Errorf("unable to load image %q: %w", e.Image, err)
	}
	return att, nil
}
