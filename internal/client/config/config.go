// Package config assembles the client configuration from layered sources:
// built-in defaults, an optional JSON file (-c/-config), environment
// variables, and command-line flags. Later sources take precedence.
package config

import "time"

// Config holds runtime settings for the CourseMart CLI.
type Config struct {
	// APIBaseURL is the backend REST root, including the /api prefix.
	APIBaseURL string `env:"COURSEMART_API_BASE_URL"`

	// AssetBaseURL is prefixed onto relative image paths returned by the
	// backend. It usually matches the backend host, but course images are
	// served from a different host in dev deployments, hence a separate
	// setting.
	AssetBaseURL string `env:"COURSEMART_ASSET_BASE_URL"`

	// DatabasePath is the local sqlite file holding persisted state
	// (auth session, cart).
	DatabasePath string `env:"COURSEMART_DB_PATH"`

	// HTTPTimeout bounds every backend request.
	HTTPTimeout time.Duration `env:"COURSEMART_HTTP_TIMEOUT"`

	// RefreshInterval is both the auto-refresh period of the catalog and
	// the minimum spacing between two fetches.
	RefreshInterval time.Duration `env:"COURSEMART_REFRESH_INTERVAL"`

	// TopInstructorCount is how many instructors the dashboard section asks for.
	TopInstructorCount int `env:"COURSEMART_TOP_INSTRUCTORS"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"COURSEMART_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://randaeldaba-001-site1.qtempurl.com/api"
	c.AssetBaseURL = "https://randaeldaba-001-site1.qtempurl.com"
	c.DatabasePath = "coursemart.db"
	c.HTTPTimeout = 10 * time.Second
	c.RefreshInterval = 30 * time.Second
	c.TopInstructorCount = 4
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment, and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
