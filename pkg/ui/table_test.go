package ui

import (
	"errors"
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"Canon EOS 5D Mark IV", 10, "Canon E..."},
		{"日本語のテキスト", 5, "日本..."},
		{"abc", 0, "abc"},
		{"abcdef", 2, "ab"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]TableColumn{
		{Header: "ID", Width: 6},
		{Header: "Tag"},
		{Header: "Value", MaxWidth: 8},
	})
	table.AddRow([]string{"0x010F", "Make", "Canon"})
	table.AddRow([]string{"0x0110", "Model", "Canon EOS 5D Mark IV"})

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected header, rule and 2 rows, got %d lines:\n%s", len(lines), table.Render())
	}
	if !strings.Contains(lines[0], "Value") {
		t.Errorf("Header missing column name: %q", lines[0])
	}
	if !strings.Contains(lines[3], "Canon...") {
		t.Errorf("Expected truncated model, got %q", lines[3])
	}
	if strings.Contains(lines[3], "Mark IV") {
		t.Errorf("Cell should be cut to MaxWidth: %q", lines[3])
	}
}

func TestTableRender_NoColumns(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Expected empty render, got %q", got)
	}
}

func TestFormatPrompt(t *testing.T) {
	if got := FormatPrompt("Font size", "30"); !strings.Contains(got, "Font size") || !strings.Contains(got, "(30)") {
		t.Errorf("FormatPrompt with default = %q", got)
	}
	if got := FormatPrompt("Image file path", ""); strings.Contains(got, "()") {
		t.Errorf("FormatPrompt without default should not show parens: %q", got)
	}
}

func TestFormatCheck(t *testing.T) {
	ok := FormatCheck("Clipboard", nil)
	if !strings.Contains(ok, IconSuccess) || !strings.Contains(ok, "Clipboard") {
		t.Errorf("FormatCheck(nil) = %q", ok)
	}
	if strings.Contains(ok, "\n") {
		t.Errorf("Passing check should be a single line: %q", ok)
	}

	failed := FormatCheck("Font: arial.ttf", errors.New(`font "arial.ttf" not found`))
	lines := strings.Split(failed, "\n")
	if len(lines) != 2 {
		t.Fatalf("Failing check should add a reason line, got %q", failed)
	}
	if !strings.Contains(lines[0], IconError) || !strings.Contains(lines[1], "not found") {
		t.Errorf("FormatCheck(err) = %q", failed)
	}
}

func TestFormatCamera(t *testing.T) {
	if got := FormatCamera("Captured on 2023-05-19"); !strings.Contains(got, "Captured on 2023-05-19") {
		t.Errorf("FormatCamera() = %q", got)
	}
}
