package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{orig[0]}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	setArgs(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://randaeldaba-001-site1.qtempurl.com/api", cfg.APIBaseURL)
	assert.Equal(t, "https://randaeldaba-001-site1.qtempurl.com", cfg.AssetBaseURL)
	assert.Equal(t, "coursemart.db", cfg.DatabasePath)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 30*time.Second, cfg.RefreshInterval)
	assert.Equal(t, 4, cfg.TopInstructorCount)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	setArgs(t)
	t.Setenv("COURSEMART_API_BASE_URL", "https://api.example.com/api")
	t.Setenv("COURSEMART_HTTP_TIMEOUT", "5s")
	t.Setenv("COURSEMART_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)

	// Untouched settings keep their defaults.
	assert.Equal(t, "coursemart.db", cfg.DatabasePath)
}

func TestLoadConfig_JsonFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_base_url": "https://json.example.com/api",
		"refresh_interval": "45s",
		"top_instructor_count": 8
	}`), 0o600))
	setArgs(t, "-config", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://json.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 45*time.Second, cfg.RefreshInterval)
	assert.Equal(t, 8, cfg.TopInstructorCount)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_EnvOverridesJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_base_url": "https://json.example.com/api"}`), 0o600))
	setArgs(t, "-c", path)
	t.Setenv("COURSEMART_API_BASE_URL", "https://env.example.com/api")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com/api", cfg.APIBaseURL)
}

func TestLoadConfig_FlagsWinOverEnv(t *testing.T) {
	setArgs(t, "-a", "https://flag.example.com/api", "-d", "/tmp/state.db", "-r", "60")
	t.Setenv("COURSEMART_API_BASE_URL", "https://env.example.com/api")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://flag.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/state.db", cfg.DatabasePath)
	assert.Equal(t, time.Minute, cfg.RefreshInterval)
}

func TestLoadConfig_MissingJsonFile(t *testing.T) {
	setArgs(t, "-config", filepath.Join(t.TempDir(), "absent.json"))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))
	setArgs(t, "-config", path)

	_, err := LoadConfig()
	assert.Error(t, err)
}
