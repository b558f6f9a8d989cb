// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/AmanVerma1067/TTeditor/internal/timetable"
	"github.com/AmanVerma1067/TTeditor/internal/tui/theme"
)

// Config holds the application configuration.
type Config struct {
	API       APIConfig       `toml:"api"`
	Timetable TimetableConfig `toml:"timetable"`
	UI        UIConfig        `toml:"ui"`
}

// APIConfig holds remote timetable source settings.
type APIConfig struct {
	BaseURL        string `toml:"base_url"`        // remote timetable service
	TimeoutSeconds int    `toml:"timeout_seconds"` // per-request timeout
}

// TimetableConfig holds schedule editing settings.
type TimetableConfig struct {
	DefaultBatch string `toml:"default_batch"` // "E15", "E16" or "E17"
	ExportDir    string `toml:"export_dir"`    // where exported files land
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "https://timetable-api-9xsz.onrender.com",
			TimeoutSeconds: 15,
		},
		Timetable: TimetableConfig{
			DefaultBatch: string(timetable.DefaultBatch),
			ExportDir:    defaultExportDir(),
		},
		UI: UIConfig{
			Theme: "frappe",
		},
	}
}

// defaultExportDir returns the default directory for exported timetables.
func defaultExportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "tteditor")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "tteditor", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Timetable.ExportDir = expandPath(cfg.Timetable.ExportDir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TTEDITOR_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("TTEDITOR_API_TIMEOUT"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			cfg.API.TimeoutSeconds = seconds
		}
	}
	if v := os.Getenv("TTEDITOR_BATCH"); v != "" {
		cfg.Timetable.DefaultBatch = v
	}
	if v := os.Getenv("TTEDITOR_EXPORT_DIR"); v != "" {
		cfg.Timetable.ExportDir = v
	}
	if v := os.Getenv("TTEDITOR_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api base_url must be set")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("api base_url must be an http(s) URL, got %q", c.API.BaseURL)
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api timeout_seconds must be positive, got %d", c.API.TimeoutSeconds)
	}
	if !timetable.ValidBatch(timetable.Batch(c.Timetable.DefaultBatch)) {
		return fmt.Errorf("unknown default_batch %q (valid: E15, E16, E17)", c.Timetable.DefaultBatch)
	}
	if c.Timetable.ExportDir == "" {
		return fmt.Errorf("export_dir must be set")
	}
	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme %q (valid: %s)", c.UI.Theme, strings.Join(theme.Available(), ", "))
	}
	return nil
}

// Batch returns the configured default batch.
func (c *Config) Batch() timetable.Batch {
	return timetable.Batch(c.Timetable.DefaultBatch)
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
