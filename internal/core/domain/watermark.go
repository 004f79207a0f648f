package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// OutputDirSuffix is appended to the source folder name to form the output folder
const OutputDirSuffix = "_watermark"

// Defaults offered by the interactive prompts
const (
	DefaultFontFamily = "arial.ttf"
	DefaultFontSize   = 30
	DefaultColor      = "red"
)

var (
	ErrInputNotFound   = errors.New("input file not found")
	ErrNoMetadata      = errors.New("no metadata present")
	ErrFontUnavailable = errors.New("font unavailable")
	ErrInvalidFontSize = errors.New("font size must be a positive integer")
	ErrInvalidColor    = errors.New("invalid color")
	ErrEmptyText       = errors.New("watermark text is empty")
	ErrDecode          = errors.New("failed to decode image")
	ErrWrite           = errors.New("failed to write image")
)

// PlacementRequest describes the watermark to draw
type PlacementRequest struct {
	Text     string
	FontSize int
	Color    string
	Position Position
}

// Validate checks the request before any image work starts
func (r PlacementRequest) Validate() error {
	if r.Text == "" {
		return ErrEmptyText
	}
	if r.FontSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidFontSize, r.FontSize)
	}
	if strings.TrimSpace(r.Color) == "" {
		return fmt.Errorf("%w: empty color", ErrInvalidColor)
	}
	return nil
}

// OutputTarget is where a watermarked copy of a source image is written
type OutputTarget struct {
	Dir  string
	Path string
}

// NewOutputTarget derives the output location for a source image.
// /photos/trip/a.jpg is written to /photos/trip_watermark/a.jpg.
func NewOutputTarget(sourcePath string) (OutputTarget, error) {
	abs, err := filepath.Abs(sourcePath)
	if err != nil {
		return OutputTarget{}, fmt.Errorf("failed to resolve %s: %w", sourcePath, err)
	}

	parent := filepath.Dir(abs)
	dir := filepath.Join(filepath.Dir(parent), filepath.Base(parent)+OutputDirSuffix)

	return OutputTarget{
		Dir:  dir,
		Path: filepath.Join(dir, filepath.Base(abs)),
	}, nil
}

// ComposeResult reports what was drawn and where it was saved
type ComposeResult struct {
	OutputPath string
	Text       string
	Placement  Placement
	TextSize   Size
	ImageSize  Size
	Font       string
}
