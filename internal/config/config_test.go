package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultWhenMissing(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BirthdayWindowDays != DefaultConfig().BirthdayWindowDays {
		t.Fatalf("BirthdayWindowDays = %d, want %d", cfg.BirthdayWindowDays, DefaultConfig().BirthdayWindowDays)
	}
	if cfg.SuggestThreshold != DefaultConfig().SuggestThreshold {
		t.Fatalf("SuggestThreshold = %v, want %v", cfg.SuggestThreshold, DefaultConfig().SuggestThreshold)
	}
}

func TestLoad_OverridesFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	content := `{"birthday_window_days": 14, "snapshot_path": "/tmp/custom.db"}`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BirthdayWindowDays != 14 {
		t.Fatalf("BirthdayWindowDays = %d, want 14", cfg.BirthdayWindowDays)
	}
	if cfg.SnapshotPath != "/tmp/custom.db" {
		t.Fatalf("SnapshotPath = %q, want /tmp/custom.db", cfg.SnapshotPath)
	}
	// Untouched fields keep their defaults.
	if cfg.SuggestThreshold != DefaultConfig().SuggestThreshold {
		t.Fatalf("SuggestThreshold = %v, want default", cfg.SuggestThreshold)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte(`{not json}`), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := Load(tmpDir); err == nil {
		t.Fatalf("Load() expected error, got nil")
	}
}

func TestDefaultSnapshotPath(t *testing.T) {
	got := DefaultSnapshotPath("/home/user/.satchel")
	want := filepath.Join("/home/user/.satchel", "satchel.db")
	if got != want {
		t.Fatalf("DefaultSnapshotPath = %q, want %q", got, want)
	}
}
