// Package testutil builds image fixtures for tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// Background is the fill color of generated fixtures
var Background = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// Solid returns an opaque w x h image filled with Background
func Solid(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	return img
}

// JPEG encodes a solid w x h image. When dateTimeOriginal is non-empty an
// EXIF APP1 segment carrying that DateTimeOriginal value is inserted after SOI.
func JPEG(t testing.TB, w, h int, dateTimeOriginal string) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, Solid(w, h), &jpeg.Options{Quality: 95}); err != nil {
		t.Fatalf("failed to encode jpeg fixture: %v", err)
	}
	data := buf.Bytes()

	if dateTimeOriginal == "" {
		return data
	}

	out := make([]byte, 0, len(data)+128)
	out = append(out, data[:2]...) // SOI
	out = append(out, exifSegment(dateTimeOriginal)...)
	out = append(out, data[2:]...)
	return out
}

// PNG encodes a solid w x h image
func PNG(t testing.TB, w, h int) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, Solid(w, h)); err != nil {
		t.Fatalf("failed to encode png fixture: %v", err)
	}
	return buf.Bytes()
}

// WriteFile writes data to dir/name, creating dir, and returns the full path
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// exifSegment builds a little-endian TIFF block with IFD0 holding only the
// Exif sub-IFD pointer, and the sub-IFD holding DateTimeOriginal.
func exifSegment(dateTimeOriginal string) []byte {
	le := binary.LittleEndian
	value := append([]byte(dateTimeOriginal), 0)

	const (
		ifd0Offset = 8
		ifdSize    = 2 + 12 + 4
		subOffset  = ifd0Offset + ifdSize
		dataOffset = subOffset + ifdSize
	)

	tiffData := make([]byte, dataOffset)
	copy(tiffData, "II")
	le.PutUint16(tiffData[2:], 42)
	le.PutUint32(tiffData[4:], ifd0Offset)

	// IFD0: ExifIFDPointer (LONG)
	le.PutUint16(tiffData[ifd0Offset:], 1)
	entry := tiffData[ifd0Offset+2:]
	le.PutUint16(entry[0:], 0x8769)
	le.PutUint16(entry[2:], 4)
	le.PutUint32(entry[4:], 1)
	le.PutUint32(entry[8:], subOffset)
	le.PutUint32(tiffData[ifd0Offset+2+12:], 0)

	// Exif IFD: DateTimeOriginal (ASCII)
	le.PutUint16(tiffData[subOffset:], 1)
	entry = tiffData[subOffset+2:]
	le.PutUint16(entry[0:], 0x9003)
	le.PutUint16(entry[2:], 2)
	le.PutUint32(entry[4:], uint32(len(value)))
	if len(value) <= 4 {
		copy(entry[8:12], value)
	} else {
		le.PutUint32(entry[8:], dataOffset)
		tiffData = append(tiffData, value...)
	}
	le.PutUint32(tiffData[subOffset+2+12:], 0)

	payload := append([]byte("Exif\x00\x00"), tiffData...)

	segment := []byte{0xFF, 0xE1, 0, 0}
	binary.BigEndian.PutUint16(segment[2:], uint16(len(payload)+2))
	return append(segment, payload...)
}
