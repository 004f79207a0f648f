package ports

import (
	"image"
	"image/color"
	"image/draw"
	"io"

	"golang.org/x/image/font"

	"github.com/kamal-hamza/datestamp/internal/core/domain"
)

// MetadataDecoder defines the port for reading embedded image metadata
type MetadataDecoder interface {
	// Decode returns the tag mapping, or domain.ErrNoMetadata when the
	// image carries no metadata block
	Decode(r io.Reader) (domain.Metadata, error)
}

// ImageCodec defines the port for image file I/O
type ImageCodec interface {
	// Open decodes the image file at path
	Open(path string) (image.Image, error)

	// Save encodes img to path in the format implied by its extension,
	// replacing any existing file
	Save(img image.Image, path string) error
}

// FontResolver defines the port for loading a font face
type FontResolver interface {
	// Resolve returns a face at the requested size and a label naming its source
	Resolve(size int) (font.Face, string, error)
}

// TextRenderer defines the port for measuring and rasterizing text
type TextRenderer interface {
	// Measure returns the ink bounding box of text relative to its origin
	Measure(face font.Face, text string) image.Rectangle

	// Draw renders text so that its ink box's top-left corner lands on at
	Draw(dst draw.Image, face font.Face, text string, at image.Point, c color.Color)
}
