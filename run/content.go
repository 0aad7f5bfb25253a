package run

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Content is what a span holds: Text or *Attachment.
type Content interface {
	spanContent()
}

// Text is a plain string fragment.
type Text string

func (Text) spanContent()        {}
func (*Attachment) spanContent() {}

// ObjectReplacement stands in for an attachment in the plain string form of
// a run.
const ObjectReplacement = "\uFFFC"

// Rect is a rectangle in points.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}

// Attachment is an inline image occupying exactly one character of a run.
type Attachment struct {
	ID    uuid.UUID
	Image image.Image
	MIME  string
	// Bounds overrides the natural image size when set.
	Bounds *Rect
}

// NewAttachment wraps img. bounds may be nil.
func NewAttachment(img image.Image, bounds *Rect) *Attachment {
	return &Attachment{
		ID:     uuid.Must(uuid.NewV7()),
		Image:  img,
		Bounds: bounds,
	}
}

// EffectiveBounds returns Bounds when set and the natural image rectangle
// anchored at the origin otherwise.
func (a *Attachment) EffectiveBounds() Rect {
	if a.Bounds != nil {
		return *a.Bounds
	}
	if a.Image == nil {
		return Rect{}
	}
	b := a.Image.Bounds()
	return Rect{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

var errNotImage = errors.New("data is not a recognized image")

// LoadAttachment decodes image data into an attachment applying EXIF
// orientation. When maxSize is positive images larger than maxSize in either
// dimension are scaled down to fit, preserving aspect ratio.
func LoadAttachment(data []byte, maxSize int, bounds *Rect) (*Attachment, error) {
	kind, err := filetype.Match(data)
	if err != nil {
		return nil, fmt.Errorf("unable to detect image type: %w", err)
	}
	if kind == filetype.Unknown || !filetype.IsImage(data) {
		return nil, errNotImage
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s image: %w", kind.MIME.Value, err)
	}
	if b := img.Bounds(); maxSize > 0 && (b.Dx() > maxSize || b.Dy() > maxSize) {
		img = imaging.Fit(img, maxSize, maxSize, imaging.Lanczos)
	}

	att := NewAttachment(img, bounds)
	att.MIME = kind.MIME.Value
	return att, nil
}
