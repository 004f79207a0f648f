package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kamal-hamza/datestamp/internal/adapters/imagefile"
	"github.com/kamal-hamza/datestamp/internal/core/domain"
	"github.com/kamal-hamza/datestamp/pkg/logging"
)

const appName = "datestamp"

type Config struct {
	// Watermark defaults offered by the prompts
	FontFamily string `yaml:"font_family"`
	FontSize   int    `yaml:"font_size"`
	Color      string `yaml:"color"`
	Position   string `yaml:"position"`

	// Output
	JPEGQuality     int  `yaml:"jpeg_quality"`
	CopyToClipboard bool `yaml:"copy_to_clipboard"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`
	LogLevel   string `yaml:"log_level"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		FontFamily:      domain.DefaultFontFamily,
		FontSize:        domain.DefaultFontSize,
		Color:           domain.DefaultColor,
		Position:        domain.DefaultPosition.String(),
		JPEGQuality:     imagefile.DefaultJPEGQuality,
		CopyToClipboard: true,
		ColorTheme:      "auto",
		LogLevel:        logging.LevelWarn,
	}
}

// DefaultPath returns the config file location.
// Follows XDG Base Directory specification on Unix and uses AppData on Windows
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, appName, "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	defaults := DefaultConfig()
	if cfg.FontFamily == "" {
		cfg.FontFamily = defaults.FontFamily
	}
	if cfg.FontSize <= 0 {
		cfg.FontSize = defaults.FontSize
	}
	if cfg.Color == "" {
		cfg.Color = defaults.Color
	}
	if cfg.Position == "" {
		cfg.Position = defaults.Position
	}
	if cfg.JPEGQuality <= 0 || cfg.JPEGQuality > 100 {
		cfg.JPEGQuality = defaults.JPEGQuality
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}

	if !isValidTheme(cfg.ColorTheme) {
		cfg.ColorTheme = "auto"
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func isValidTheme(theme string) bool {
	switch theme {
	case "auto", "dark", "light":
		return true
	}
	return false
}
