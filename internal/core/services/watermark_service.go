package services

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/rs/zerolog"

	"github.com/kamal-hamza/datestamp/internal/core/domain"
	"github.com/kamal-hamza/datestamp/internal/core/ports"
	"github.com/kamal-hamza/datestamp/pkg/colorspec"
)

// WatermarkService draws a text watermark onto an image and saves the copy
type WatermarkService struct {
	codec    ports.ImageCodec
	fonts    ports.FontResolver
	renderer ports.TextRenderer
	log      zerolog.Logger
}

// NewWatermarkService creates a new watermark service
func NewWatermarkService(codec ports.ImageCodec, fonts ports.FontResolver, renderer ports.TextRenderer, log zerolog.Logger) *WatermarkService {
	return &WatermarkService{
		codec:    codec,
		fonts:    fonts,
		renderer: renderer,
		log:      log,
	}
}

// ComposeRequest represents a request to watermark one image
type ComposeRequest struct {
	SourcePath string
	Placement  domain.PlacementRequest
}

// Compose draws the requested text on the source image and writes it to the
// derived output folder, overwriting any previous result.
func (s *WatermarkService) Compose(ctx context.Context, req ComposeRequest) (*domain.ComposeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := req.Placement.Validate(); err != nil {
		return nil, err
	}

	fill, err := colorspec.Parse(req.Placement.Color)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidColor, err)
	}

	// 1. Decode
	src, err := s.codec.Open(req.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", domain.ErrDecode, req.SourcePath, err)
	}

	bounds := src.Bounds()
	canvas := image.NewNRGBA(bounds)
	draw.Draw(canvas, bounds, src, bounds.Min, draw.Src)

	// 2. Font
	face, fontName, err := s.fonts.Resolve(req.Placement.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	// 3. Measure & place
	box := s.renderer.Measure(face, req.Placement.Text)
	imgSize := domain.Size{Width: bounds.Dx(), Height: bounds.Dy()}
	textSize := domain.Size{Width: box.Dx(), Height: box.Dy()}
	at := domain.Place(req.Placement.Position, imgSize, textSize)

	s.log.Debug().
		Str("font", fontName).
		Int("text_w", textSize.Width).
		Int("text_h", textSize.Height).
		Int("x", at.X).
		Int("y", at.Y).
		Str("position", req.Placement.Position.String()).
		Msg("placing watermark")

	// 4. Draw
	s.renderer.Draw(canvas, face, req.Placement.Text, bounds.Min.Add(image.Pt(at.X, at.Y)), fill)

	// 5. Save
	target, err := domain.NewOutputTarget(req.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWrite, err)
	}

	if err := os.MkdirAll(target.Dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: failed to create %s: %v", domain.ErrWrite, target.Dir, err)
	}

	if err := s.codec.Save(canvas, target.Path); err != nil {
		return nil, fmt.Errorf("%w %s: %v", domain.ErrWrite, target.Path, err)
	}

	s.log.Info().Str("output", target.Path).Msg("watermark saved")

	return &domain.ComposeResult{
		OutputPath: target.Path,
		Text:       req.Placement.Text,
		Placement:  at,
		TextSize:   textSize,
		ImageSize:  imgSize,
		Font:       fontName,
	}, nil
}
