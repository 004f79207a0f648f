package domain

import (
	"reflect"
	"strings"
	"testing"
)

func TestNewCaptureDate(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"2023:05:19 12:34:56", "2023-05-19"},
		{"1999:12:31 23:59:59", "1999-12-31"},
		{"2024:02:30 00:00:00", "2024-02-30"}, // not validated
		{"2023:05:19", "2023-05-19"},
		{"2023/05/19 10:00:00", "2023/05/19"},
		{"19.05.2023", "19.05.2023"},
	}

	for _, tt := range tests {
		got := NewCaptureDate(tt.raw)
		if got.Value != tt.expected || !got.Valid {
			t.Errorf("NewCaptureDate(%q) = %+v, want %q", tt.raw, got, tt.expected)
		}
	}
}

func TestNewCaptureDate_Blank(t *testing.T) {
	for _, raw := range []string{"", " ", "    :  :     :  :  ", " 2023:05:19 12:34:56", "::"} {
		got := NewCaptureDate(raw)
		if got != NoCaptureDate {
			t.Errorf("NewCaptureDate(%q) = %+v, want absent", raw, got)
		}
		if text := got.Text(DefaultCaptureText); text != DefaultCaptureText {
			t.Errorf("Text() for %q = %q, want %q", raw, text, DefaultCaptureText)
		}
	}

	placeholder := Metadata{TagDateTimeOriginal: "    :  :     :  :  "}
	if got := CaptureDateFrom(placeholder); got.Valid {
		t.Errorf("CaptureDateFrom(placeholder) = %+v, want absent", got)
	}
}

func TestNewCaptureDate_Shape(t *testing.T) {
	got := NewCaptureDate("2023:05:19 12:34:56").Value

	if len(got) != 10 {
		t.Errorf("expected 10 characters, got %d (%q)", len(got), got)
	}
	if strings.Count(got, "-") != 2 {
		t.Errorf("expected two '-' separators in %q", got)
	}
	if strings.ContainsAny(got, ": ") {
		t.Errorf("expected no time component in %q", got)
	}
}

func TestCaptureDateFrom(t *testing.T) {
	withDate := Metadata{
		TagMake:             "Canon",
		TagDateTime:         "2020:01:01 00:00:00",
		TagDateTimeOriginal: "2023:05:19 12:34:56",
	}
	if got := CaptureDateFrom(withDate); got != (CaptureDate{Value: "2023-05-19", Valid: true}) {
		t.Errorf("CaptureDateFrom() = %+v", got)
	}

	withoutDate := Metadata{TagDateTime: "2020:01:01 00:00:00"}
	if got := CaptureDateFrom(withoutDate); got.Valid {
		t.Errorf("expected absent date, got %+v", got)
	}

	if got := CaptureDateFrom(nil); got != NoCaptureDate {
		t.Errorf("expected absent date for nil metadata, got %+v", got)
	}
}

func TestCaptureDate_Text(t *testing.T) {
	if got := NoCaptureDate.Text(DefaultCaptureText); got != "NoDate" {
		t.Errorf("absent Text() = %q, want NoDate", got)
	}
	if got := NewCaptureDate("2023:05:19 12:34:56").Text(DefaultCaptureText); got != "2023-05-19" {
		t.Errorf("Text() = %q, want 2023-05-19", got)
	}
}

func TestTagID_Name(t *testing.T) {
	tests := []struct {
		id       TagID
		expected string
	}{
		{TagDateTimeOriginal, "DateTimeOriginal"},
		{0x9003, "DateTimeOriginal"},
		{TagMake, "Make"},
		{0xBEEF, UnknownTagName},
	}

	for _, tt := range tests {
		if got := tt.id.Name(); got != tt.expected {
			t.Errorf("TagID(%#x).Name() = %q, want %q", uint16(tt.id), got, tt.expected)
		}
	}

	if TagID(0xBEEF).Known() {
		t.Error("0xBEEF should be unknown")
	}
}

func TestMetadata_IDs(t *testing.T) {
	m := Metadata{TagDateTimeOriginal: "a", TagMake: "b", TagDateTime: "c"}

	got := m.IDs()
	want := []TagID{TagMake, TagDateTime, TagDateTimeOriginal}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}
