package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/profilecut/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultWastePercent = 15.0
	cfg.RecentJobs = []string{"job-a", "job-b"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	if loaded.DefaultWastePercent != 15.0 {
		t.Errorf("expected waste percent 15.0, got %v", loaded.DefaultWastePercent)
	}
	if len(loaded.RecentJobs) != 2 || loaded.RecentJobs[1] != "job-b" {
		t.Errorf("unexpected recent jobs: %v", loaded.RecentJobs)
	}
}

func TestLoadAppConfigMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected defaults for missing file, got error: %v", err)
	}
	defaults := model.DefaultAppConfig()
	if cfg.DefaultFloatTolerance != defaults.DefaultFloatTolerance {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

func TestLoadAppConfigFixesNilRecentJobs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"unit":"m"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	if cfg.RecentJobs == nil {
		t.Error("RecentJobs should be an empty slice, not nil")
	}
}

func TestLoadAppConfigCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadAppConfig(path); err == nil {
		t.Error("expected error for corrupt config")
	}
}
