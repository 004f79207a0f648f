package domain

import (
	"sort"
	"strings"
)

// DefaultCaptureText is the watermark text used when a photo has no capture date
const DefaultCaptureText = "NoDate"

// TagID is a numeric EXIF tag identifier
type TagID uint16

// Known EXIF tags
const (
	TagMake              TagID = 0x010F
	TagModel             TagID = 0x0110
	TagOrientation       TagID = 0x0112
	TagDateTime          TagID = 0x0132
	TagExifIFDPointer    TagID = 0x8769
	TagDateTimeOriginal  TagID = 0x9003
	TagDateTimeDigitized TagID = 0x9004
)

// UnknownTagName is returned by TagID.Name for ids outside the table
const UnknownTagName = "Unknown"

var tagNames = map[TagID]string{
	TagMake:              "Make",
	TagModel:             "Model",
	TagOrientation:       "Orientation",
	TagDateTime:          "DateTime",
	TagExifIFDPointer:    "ExifIFDPointer",
	TagDateTimeOriginal:  "DateTimeOriginal",
	TagDateTimeDigitized: "DateTimeDigitized",
}

// Name resolves the tag id to its conventional name
func (id TagID) Name() string {
	if name, ok := tagNames[id]; ok {
		return name
	}
	return UnknownTagName
}

// Known reports whether the id is in the tag table
func (id TagID) Known() bool {
	_, ok := tagNames[id]
	return ok
}

// Metadata is a decoded tag-id to value mapping
type Metadata map[TagID]string

// Get returns the value for the given tag
func (m Metadata) Get(id TagID) (string, bool) {
	v, ok := m[id]
	return v, ok
}

// DateTimeOriginal returns the raw capture timestamp (e.g. "2023:05:19 12:34:56")
func (m Metadata) DateTimeOriginal() (string, bool) {
	return m.Get(TagDateTimeOriginal)
}

// IDs returns the tag ids in ascending order
func (m Metadata) IDs() []TagID {
	ids := make([]TagID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// CaptureDate is a normalized YYYY-MM-DD capture date. The zero value is absent.
type CaptureDate struct {
	Value string
	Valid bool
}

// NoCaptureDate is the absent capture date
var NoCaptureDate = CaptureDate{}

// NewCaptureDate normalizes a raw EXIF timestamp of the form "YYYY:MM:DD HH:MM:SS".
// Only the part before the first space is kept and every ':' becomes '-'.
// The result is not validated as a calendar date, but a date part that is
// blank after normalization (e.g. the "    :  :     :  :  " unknown-date
// placeholder) counts as absent.
func NewCaptureDate(raw string) CaptureDate {
	datePart, _, _ := strings.Cut(raw, " ")
	value := strings.ReplaceAll(datePart, ":", "-")
	if strings.Trim(value, " -") == "" {
		return NoCaptureDate
	}
	return CaptureDate{
		Value: value,
		Valid: true,
	}
}

// CaptureDateFrom extracts the capture date from decoded metadata
func CaptureDateFrom(m Metadata) CaptureDate {
	raw, ok := m.DateTimeOriginal()
	if !ok {
		return NoCaptureDate
	}
	return NewCaptureDate(raw)
}

// Text returns the date, or fallback when absent
func (c CaptureDate) Text(fallback string) string {
	if !c.Valid {
		return fallback
	}
	return c.Value
}
