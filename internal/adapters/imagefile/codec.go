package imagefile

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// DefaultJPEGQuality is used when no quality is configured
const DefaultJPEGQuality = 95

// Codec reads and writes image files with disintegration/imaging.
// The output format always follows the file extension.
type Codec struct {
	jpegQuality int
}

// NewCodec creates a codec that writes JPEGs at the given quality
func NewCodec(jpegQuality int) *Codec {
	if jpegQuality <= 0 || jpegQuality > 100 {
		jpegQuality = DefaultJPEGQuality
	}
	return &Codec{jpegQuality: jpegQuality}
}

// Open decodes the image at path without applying EXIF orientation
func (c *Codec) Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Save encodes img to path, replacing any existing file
func (c *Codec) Save(img image.Image, path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("unsupported output format for %s: %w", path, err)
	}
	return imaging.Save(img, path, imaging.JPEGQuality(c.jpegQuality))
}

// Info describes an image file without decoding its pixels
type Info struct {
	Format string
	Width  int
	Height int
	Bytes  int64
}

// Stat reads the image header of the file at path
func Stat(path string) (*Info, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	fi, err := file.Stat()
	if err != nil {
		return nil, err
	}

	cfg, format, err := image.DecodeConfig(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read image header: %w", err)
	}

	return &Info{
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
		Bytes:  fi.Size(),
	}, nil
}

// IsSupported reports whether the file extension is one the codec can read and write
func IsSupported(path string) bool {
	_, err := imaging.FormatFromFilename(path)
	return err == nil
}
