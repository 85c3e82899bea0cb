package domain

// Config holds client configuration, persisted as TOML.
type Config struct {
	// APIOrigin is the backend base URL. Relative clip paths returned by
	// the backend are resolved against it.
	APIOrigin string `toml:"api_origin"`

	// SuggestionCount caps derived follow-up queries (3-5).
	SuggestionCount int `toml:"suggestion_count"`

	// SuggestionTemplate formats a keyword into a follow-up query.
	SuggestionTemplate string `toml:"suggestion_template"`

	// PhaseIntervalSeconds is the wall-clock interval between cosmetic
	// ingestion progress phases.
	PhaseIntervalSeconds int `toml:"phase_interval_seconds"`

	// RetryCeilingSeconds is how long a clip resolution may run before the
	// UI offers a manual retry. The underlying request is not cancelled.
	RetryCeilingSeconds int `toml:"retry_ceiling_seconds"`

	// DownloadDir is where downloaded clips are written.
	DownloadDir string `toml:"download_dir"`

	// HistoryPath is the sqlite database for query and clip history.
	// Empty disables history.
	HistoryPath string `toml:"history_path"`

	// ClipRequestsPerSecond rate-limits clip extraction requests.
	ClipRequestsPerSecond float64 `toml:"clip_requests_per_second"`
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *Config {
	return &Config{
		APIOrigin:             "http://127.0.0.1:5000",
		SuggestionCount:       DefaultSuggestionCount,
		SuggestionTemplate:    DefaultSuggestionTemplate,
		PhaseIntervalSeconds:  5,
		RetryCeilingSeconds:   45,
		DownloadDir:           ".",
		ClipRequestsPerSecond: 2,
	}
}

// Normalise clamps out-of-range values back to usable defaults.
func (c *Config) Normalise() {
	if c.APIOrigin == "" {
		c.APIOrigin = DefaultConfig().APIOrigin
	}
	if c.SuggestionCount < 3 || c.SuggestionCount > 5 {
		c.SuggestionCount = DefaultSuggestionCount
	}
	if c.SuggestionTemplate == "" {
		c.SuggestionTemplate = DefaultSuggestionTemplate
	}
	if c.PhaseIntervalSeconds <= 0 {
		c.PhaseIntervalSeconds = 5
	}
	if c.RetryCeilingSeconds <= 0 {
		c.RetryCeilingSeconds = 45
	}
	if c.DownloadDir == "" {
		c.DownloadDir = "."
	}
	if c.ClipRequestsPerSecond <= 0 {
		c.ClipRequestsPerSecond = 2
	}
}
