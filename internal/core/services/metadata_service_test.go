package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/kamal-hamza/datestamp/internal/adapters/exifmeta"
	"github.com/kamal-hamza/datestamp/internal/core/domain"
	"github.com/kamal-hamza/datestamp/internal/core/ports/mocks"
	"github.com/kamal-hamza/datestamp/internal/testutil"
	"github.com/kamal-hamza/datestamp/pkg/logging"
)

func TestMetadataService_Extract(t *testing.T) {
	src := testutil.WriteFile(t, t.TempDir(), "a.jpg", []byte("content is read by the mock"))

	tests := []struct {
		name     string
		decoder  *mocks.MockMetadataDecoder
		expected domain.CaptureDate
	}{
		{
			name:     "date time original",
			decoder:  mocks.NewMockMetadataDecoder(domain.Metadata{domain.TagDateTimeOriginal: "2023:05:19 12:34:56"}),
			expected: domain.CaptureDate{Value: "2023-05-19", Valid: true},
		},
		{
			name: "ignores other date tags",
			decoder: mocks.NewMockMetadataDecoder(domain.Metadata{
				domain.TagDateTime:          "2020:01:01 00:00:00",
				domain.TagDateTimeDigitized: "2020:01:02 00:00:00",
			}),
			expected: domain.NoCaptureDate,
		},
		{
			name:     "empty metadata",
			decoder:  mocks.NewMockMetadataDecoder(domain.Metadata{}),
			expected: domain.NoCaptureDate,
		},
		{
			name:     "no metadata block",
			decoder:  &mocks.MockMetadataDecoder{Err: domain.ErrNoMetadata},
			expected: domain.NoCaptureDate,
		},
		{
			name:     "decode failure",
			decoder:  &mocks.MockMetadataDecoder{Err: errors.New("corrupt")},
			expected: domain.NoCaptureDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMetadataService(tt.decoder, logging.Nop())

			got := svc.Extract(context.Background(), src)
			if got != tt.expected {
				t.Errorf("Extract() = %+v, want %+v", got, tt.expected)
			}
			if tt.decoder.Calls != 1 {
				t.Errorf("expected decoder to be called once, got %d", tt.decoder.Calls)
			}
		})
	}
}

func TestMetadataService_Extract_MissingFile(t *testing.T) {
	decoder := mocks.NewMockMetadataDecoder(domain.Metadata{domain.TagDateTimeOriginal: "2023:05:19 12:34:56"})
	svc := NewMetadataService(decoder, logging.Nop())

	got := svc.Extract(context.Background(), filepath.Join(t.TempDir(), "missing.jpg"))
	if got.Valid {
		t.Errorf("expected absent date for missing file, got %+v", got)
	}
	if decoder.Calls != 0 {
		t.Error("decoder should not be called when the file cannot be opened")
	}
}

func TestMetadataService_Inspect(t *testing.T) {
	src := testutil.WriteFile(t, t.TempDir(), "a.jpg", []byte("x"))
	meta := domain.Metadata{domain.TagMake: "Canon", domain.TagModel: "EOS"}
	svc := NewMetadataService(mocks.NewMockMetadataDecoder(meta), logging.Nop())

	got, err := svc.Inspect(context.Background(), src)
	if err != nil {
		t.Fatalf("Inspect() returned error: %v", err)
	}
	if got[domain.TagMake] != "Canon" || len(got) != 2 {
		t.Errorf("Inspect() = %v, want %v", got, meta)
	}

	empty := NewMetadataService(mocks.NewMockMetadataDecoder(nil), logging.Nop())
	if _, err := empty.Inspect(context.Background(), src); !errors.Is(err, domain.ErrNoMetadata) {
		t.Errorf("Inspect() error = %v, want ErrNoMetadata", err)
	}
}

func TestMetadataService_Extract_RealEXIF(t *testing.T) {
	dir := t.TempDir()
	withDate := testutil.WriteFile(t, dir, "dated.jpg", testutil.JPEG(t, 64, 48, "2023:05:19 12:34:56"))
	withoutDate := testutil.WriteFile(t, dir, "plain.jpg", testutil.JPEG(t, 64, 48, ""))
	pngFile := testutil.WriteFile(t, dir, "plain.png", testutil.PNG(t, 64, 48))

	svc := NewMetadataService(exifmeta.NewDecoder(), logging.Nop())
	ctx := context.Background()

	if got := svc.Extract(ctx, withDate); got.Value != "2023-05-19" || !got.Valid {
		t.Errorf("Extract(dated) = %+v, want 2023-05-19", got)
	}

	if got := svc.Extract(ctx, withoutDate); got.Valid {
		t.Errorf("Extract(plain jpeg) = %+v, want absent", got)
	}

	if got := svc.Extract(ctx, pngFile); got.Valid {
		t.Errorf("Extract(png) = %+v, want absent", got)
	}
}
