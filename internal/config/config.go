package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds application configuration.
type Config struct {
	// SnapshotPath is the location of the snapshot database. Empty means
	// the default under the base directory; the --file flag overrides
	// both.
	SnapshotPath string `json:"snapshot_path,omitempty"`

	// BirthdayWindowDays is the lookahead used by the birthdays command
	// when no explicit window is given.
	BirthdayWindowDays int `json:"birthday_window_days,omitempty"`

	// SuggestThreshold is the minimum similarity for command
	// suggestions, in (0, 1].
	SuggestThreshold float64 `json:"suggest_threshold,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		BirthdayWindowDays: 7,
		SuggestThreshold:   0.80,
	}
}

// DefaultSnapshotPath resolves the snapshot location for a base
// directory.
func DefaultSnapshotPath(baseDir string) string {
	return filepath.Join(baseDir, "satchel.db")
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.satchel.
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Merge combines base and overlay configs. Overlay values take
// precedence when non-zero.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.SnapshotPath = overlay.SnapshotPath
	if result.SnapshotPath == "" {
		result.SnapshotPath = base.SnapshotPath
	}

	result.BirthdayWindowDays = overlay.BirthdayWindowDays
	if result.BirthdayWindowDays == 0 {
		result.BirthdayWindowDays = base.BirthdayWindowDays
	}

	result.SuggestThreshold = overlay.SuggestThreshold
	if result.SuggestThreshold == 0 {
		result.SuggestThreshold = base.SuggestThreshold
	}

	return result
}
