package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kamal-hamza/datestamp/internal/core/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if cfg.FontFamily != "arial.ttf" {
		t.Errorf("expected default FontFamily='arial.ttf', got %q", cfg.FontFamily)
	}

	if cfg.FontSize != 30 {
		t.Errorf("expected default FontSize=30, got %d", cfg.FontSize)
	}

	if cfg.Color != "red" {
		t.Errorf("expected default Color='red', got %q", cfg.Color)
	}

	if cfg.Position != "right_bottom" {
		t.Errorf("expected default Position='right_bottom', got %q", cfg.Position)
	}

	if !cfg.CopyToClipboard {
		t.Error("expected CopyToClipboard to default to true")
	}
}

// TestDefaultConfig_MatchesDomain keeps the config defaults tied to the
// values the session and composer document
func TestDefaultConfig_MatchesDomain(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.FontFamily != domain.DefaultFontFamily {
		t.Errorf("FontFamily = %q, want %q", cfg.FontFamily, domain.DefaultFontFamily)
	}
	if cfg.FontSize != domain.DefaultFontSize {
		t.Errorf("FontSize = %d, want %d", cfg.FontSize, domain.DefaultFontSize)
	}
	if cfg.Color != domain.DefaultColor {
		t.Errorf("Color = %q, want %q", cfg.Color, domain.DefaultColor)
	}
	if domain.ParsePosition(cfg.Position) != domain.DefaultPosition {
		t.Errorf("Position = %q, want %q", cfg.Position, domain.DefaultPosition)
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	// Loading a non-existent file should return default config
	cfg, err := Load("/nonexistent/path/config.yaml")

	if err != nil {
		t.Fatalf("unexpected error loading non-existent file: %v", err)
	}

	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	if cfg.FontSize != 30 {
		t.Errorf("expected default FontSize=30, got %d", cfg.FontSize)
	}

	if cfg.JPEGQuality != 95 {
		t.Errorf("expected default JPEGQuality=95, got %d", cfg.JPEGQuality)
	}
}

func TestSave_And_Load(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	cfg := &Config{
		FontFamily:      "DejaVuSans.ttf",
		FontSize:        48,
		Color:           "#00FF00",
		Position:        "center",
		JPEGQuality:     80,
		CopyToClipboard: false,
		ColorTheme:      "dark",
		LogLevel:        "debug",
	}

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}

	loadedCfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if *loadedCfg != *cfg {
		t.Errorf("loaded config = %+v, want %+v", *loadedCfg, *cfg)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	// Partial config: only color and an invalid quality
	yamlContent := `color: blue
jpeg_quality: 250
font_size: 0
font_family: ""
log_level: ""
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to create test config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Color != "blue" {
		t.Errorf("expected Color='blue', got %q", cfg.Color)
	}

	if cfg.JPEGQuality != 95 {
		t.Errorf("expected default JPEGQuality=95 for out-of-range value, got %d", cfg.JPEGQuality)
	}

	if cfg.FontSize != 30 {
		t.Errorf("expected default FontSize=30 for zero value, got %d", cfg.FontSize)
	}

	if cfg.Position != "right_bottom" {
		t.Errorf("expected default Position='right_bottom', got %q", cfg.Position)
	}

	if cfg.FontFamily != domain.DefaultFontFamily {
		t.Errorf("expected default FontFamily=%q for empty value, got %q", domain.DefaultFontFamily, cfg.FontFamily)
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("expected default LogLevel='warn' for empty value, got %q", cfg.LogLevel)
	}
}

func TestLoad_ColorTheme(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"dark", "dark", "dark"},
		{"light", "light", "light"},
		{"empty defaults to auto", `""`, "auto"},
		{"invalid defaults to auto", "neon", "auto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")

			if err := os.WriteFile(configPath, []byte("color_theme: "+tt.value+"\n"), 0644); err != nil {
				t.Fatalf("failed to create test config file: %v", err)
			}

			cfg, err := Load(configPath)
			if err != nil {
				t.Fatalf("failed to load config: %v", err)
			}

			if cfg.ColorTheme != tt.expected {
				t.Errorf("ColorTheme: expected %q, got %q", tt.expected, cfg.ColorTheme)
			}
		})
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `color: red
position: [invalid yaml structure
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to create test config file: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Fatal("expected error loading invalid YAML, got nil")
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")

	if err := DefaultConfig().Save(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("config file was not created: %v", err)
	}

	if !strings.Contains(string(data), "font_family: arial.ttf") {
		t.Errorf("saved config missing font_family, got:\n%s", data)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() returned error: %v", err)
	}

	expected := filepath.Join("/tmp/xdg", "datestamp", "config.yaml")
	if path != expected {
		t.Errorf("DefaultPath() = %q, want %q", path, expected)
	}
}
