package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/example/coursemart/internal/flagx"
	"github.com/example/coursemart/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so intervals can be written either as strings like "30s" or
// as integer nanoseconds. Absent fields leave the running Config untouched.
type JsonConfig struct {
	APIBaseURL         *string         `json:"api_base_url"`
	AssetBaseURL       *string         `json:"asset_base_url"`
	DatabasePath       *string         `json:"database_path"`
	HTTPTimeout        *timex.Duration `json:"http_timeout"`
	RefreshInterval    *timex.Duration `json:"refresh_interval"`
	TopInstructorCount *int            `json:"top_instructor_count"`
	LogLevel           *string         `json:"log_level"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. No flag, no JSON, no error.
func parseJson(cfg *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.AssetBaseURL != nil {
		cfg.AssetBaseURL = *jc.AssetBaseURL
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.HTTPTimeout != nil {
		cfg.HTTPTimeout = jc.HTTPTimeout.Duration
	}
	if jc.RefreshInterval != nil {
		cfg.RefreshInterval = jc.RefreshInterval.Duration
	}
	if jc.TopInstructorCount != nil {
		cfg.TopInstructorCount = *jc.TopInstructorCount
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
