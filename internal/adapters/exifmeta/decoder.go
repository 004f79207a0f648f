package exifmeta

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	"github.com/kamal-hamza/datestamp/internal/core/domain"
)

// Decoder reads EXIF tags with goexif
type Decoder struct{}

// NewDecoder creates a new EXIF decoder
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode walks every EXIF field of the image in r and returns them keyed by tag id
func (d *Decoder) Decode(r io.Reader) (domain.Metadata, error) {
	x, err := exif.Decode(r)
	if x == nil {
		if err == nil || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, domain.ErrNoMetadata
		}
		return nil, fmt.Errorf("exif: %w", err)
	}
	// goexif reports recoverable tag errors alongside a usable result
	if err != nil && exif.IsCriticalError(err) {
		return nil, fmt.Errorf("exif: %w", err)
	}

	collector := tagCollector{meta: make(domain.Metadata)}
	if err := x.Walk(&collector); err != nil {
		return nil, fmt.Errorf("exif: walk: %w", err)
	}

	if len(collector.meta) == 0 {
		return nil, domain.ErrNoMetadata
	}
	return collector.meta, nil
}

type tagCollector struct {
	meta domain.Metadata
}

func (c *tagCollector) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if tag == nil {
		return nil
	}
	c.meta[domain.TagID(tag.Id)] = tagValue(tag)
	return nil
}

func tagValue(tag *tiff.Tag) string {
	if tag.Format() == tiff.StringVal {
		if s, err := tag.StringVal(); err == nil {
			return strings.TrimRight(s, "\x00")
		}
	}
	return tag.String()
}
