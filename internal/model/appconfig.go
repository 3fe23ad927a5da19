package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default solve settings applied to new jobs
	DefaultFloatTolerance  float64 `json:"default_float_tolerance"`
	DefaultMinOffcutLength float64 `json:"default_min_offcut_length"`

	// Purchasing defaults
	DefaultWastePercent float64 `json:"default_waste_percent"`

	// Application preferences
	Unit       string   `json:"unit"` // display unit label, e.g. "m"
	RecentJobs []string `json:"recent_jobs"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultFloatTolerance:  defaults.FloatTolerance,
		DefaultMinOffcutLength: defaults.MinOffcutLength,
		DefaultWastePercent:    10.0,
		Unit:                   "m",
		RecentJobs:             []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a
// SolveSettings struct. Used when starting a new job so it inherits the
// user's saved defaults.
func (c AppConfig) ApplyToSettings(s *SolveSettings) {
	s.FloatTolerance = c.DefaultFloatTolerance
	s.MinOffcutLength = c.DefaultMinOffcutLength
}
