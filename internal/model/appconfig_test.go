package model

import "testing"

func TestDefaultAppConfigMatchesSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	defaults := DefaultSettings()

	if cfg.DefaultFloatTolerance != defaults.FloatTolerance {
		t.Errorf("tolerance mismatch: %v vs %v", cfg.DefaultFloatTolerance, defaults.FloatTolerance)
	}
	if cfg.DefaultMinOffcutLength != defaults.MinOffcutLength {
		t.Errorf("offcut length mismatch: %v vs %v", cfg.DefaultMinOffcutLength, defaults.MinOffcutLength)
	}
	if cfg.Unit != "m" {
		t.Errorf("expected unit m, got %q", cfg.Unit)
	}
	if cfg.RecentJobs == nil {
		t.Error("RecentJobs should be an empty slice, not nil")
	}
}

func TestApplyToSettings(t *testing.T) {
	cfg := AppConfig{
		DefaultFloatTolerance:  1e-6,
		DefaultMinOffcutLength: 0.25,
	}
	s := DefaultSettings()
	cfg.ApplyToSettings(&s)

	if s.FloatTolerance != 1e-6 {
		t.Errorf("expected tolerance 1e-6, got %v", s.FloatTolerance)
	}
	if s.MinOffcutLength != 0.25 {
		t.Errorf("expected min offcut 0.25, got %v", s.MinOffcutLength)
	}
}
