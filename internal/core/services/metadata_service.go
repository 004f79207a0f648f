package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/kamal-hamza/datestamp/internal/core/domain"
	"github.com/kamal-hamza/datestamp/internal/core/ports"
)

// MetadataService reads capture dates from image metadata
type MetadataService struct {
	decoder ports.MetadataDecoder
	log     zerolog.Logger
}

// NewMetadataService creates a new metadata service
func NewMetadataService(decoder ports.MetadataDecoder, log zerolog.Logger) *MetadataService {
	return &MetadataService{
		decoder: decoder,
		log:     log,
	}
}

// Extract returns the normalized capture date of the image at path.
// Any failure to read the file or its metadata yields an absent date.
func (s *MetadataService) Extract(ctx context.Context, path string) domain.CaptureDate {
	meta, err := s.Inspect(ctx, path)
	if err != nil {
		if errors.Is(err, domain.ErrNoMetadata) {
			s.log.Debug().Str("path", path).Msg("no EXIF metadata")
		} else {
			s.log.Warn().Err(err).Str("path", path).Msg("failed to read EXIF")
		}
		return domain.NoCaptureDate
	}

	date := domain.CaptureDateFrom(meta)
	if !date.Valid {
		s.log.Debug().Str("path", path).Int("tags", len(meta)).Msg("DateTimeOriginal not present or blank")
		return date
	}

	s.log.Debug().Str("path", path).Str("date", date.Value).Msg("capture date found")
	return date
}

// Inspect returns every decoded metadata tag of the image at path
func (s *MetadataService) Inspect(ctx context.Context, path string) (domain.Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	meta, err := s.decoder.Decode(file)
	if err != nil {
		return nil, err
	}
	if len(meta) == 0 {
		return nil, domain.ErrNoMetadata
	}

	return meta, nil
}
