package exifmeta

import (
	"bytes"
	"errors"
	"testing"

	"github.com/kamal-hamza/datestamp/internal/core/domain"
	"github.com/kamal-hamza/datestamp/internal/testutil"
)

func TestDecoder_DateTimeOriginal(t *testing.T) {
	data := testutil.JPEG(t, 32, 24, "2023:05:19 12:34:56")

	meta, err := NewDecoder().Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() returned error: %v", err)
	}

	got, ok := meta.DateTimeOriginal()
	if !ok {
		t.Fatalf("DateTimeOriginal not found in %v", meta)
	}
	if got != "2023:05:19 12:34:56" {
		t.Errorf("DateTimeOriginal = %q, want %q", got, "2023:05:19 12:34:56")
	}

	if _, ok := meta.Get(domain.TagExifIFDPointer); !ok {
		t.Error("expected ExifIFDPointer tag to be collected")
	}
}

func TestDecoder_NoExif(t *testing.T) {
	data := testutil.JPEG(t, 32, 24, "")

	_, err := NewDecoder().Decode(bytes.NewReader(data))
	if !errors.Is(err, domain.ErrNoMetadata) {
		t.Errorf("Decode() error = %v, want ErrNoMetadata", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	_, err := NewDecoder().Decode(bytes.NewReader(nil))
	if err == nil {
		t.Fatal("expected error for empty input")
	}
}
