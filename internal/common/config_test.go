package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, 8085, config.Server.Port)
	assert.Equal(t, "localhost", config.Server.Host)
	assert.Equal(t, time.Hour, config.Retrieval.CacheTTL)
	assert.Equal(t, 3, config.Retrieval.StaticLimit)
	assert.Equal(t, "0 */6 * * *", config.Collection.Schedule)
	assert.NoError(t, config.Validate())
}

func TestLoadFromFilesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "responsa.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment = "production"

[server]
port = 9090

[web_search]
mode = "simulation"

[retrieval]
static_limit = 5
`), 0644))

	config, err := LoadFromFiles(path)
	require.NoError(t, err)

	assert.Equal(t, "production", config.Environment)
	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, "simulation", config.WebSearch.Mode)
	assert.Equal(t, 5, config.Retrieval.StaticLimit)

	// Untouched values keep their defaults.
	assert.Equal(t, "localhost", config.Server.Host)
	assert.Equal(t, time.Hour, config.Retrieval.CacheTTL)
}

func TestLoadFromFilesLaterFilesWin(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.toml")
	second := filepath.Join(dir, "second.toml")
	require.NoError(t, os.WriteFile(first, []byte("[server]\nport = 9090\n"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("[server]\nport = 9191\n"), 0644))

	config, err := LoadFromFiles(first, second)
	require.NoError(t, err)
	assert.Equal(t, 9191, config.Server.Port)
}

func TestLoadFromFilesMissingFile(t *testing.T) {
	_, err := LoadFromFiles("/nonexistent/responsa.toml")
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("RESPONSA_ENV", "production")
	t.Setenv("RESPONSA_SERVER_PORT", "7070")
	t.Setenv("RESPONSA_WEB_SEARCH_MODE", "simulation")

	config, err := LoadFromFiles()
	require.NoError(t, err)

	assert.Equal(t, "production", config.Environment)
	assert.Equal(t, 7070, config.Server.Port)
	assert.Equal(t, "simulation", config.WebSearch.Mode)
}

func TestValidateRejectsBadEnvironment(t *testing.T) {
	config := NewDefaultConfig()
	config.Environment = "staging"
	assert.Error(t, config.Validate())
}

func TestValidateRejectsBadSchedule(t *testing.T) {
	config := NewDefaultConfig()
	config.Collection.Enabled = true
	config.Collection.Schedule = "whenever"
	assert.Error(t, config.Validate())
}

func TestValidateRejectsNonPositiveCacheTTL(t *testing.T) {
	config := NewDefaultConfig()
	config.Retrieval.CacheTTL = 0
	assert.Error(t, config.Validate())
}

func TestIsDevelopment(t *testing.T) {
	config := NewDefaultConfig()
	assert.True(t, config.IsDevelopment())

	config.Environment = "preview"
	assert.True(t, config.IsDevelopment())

	config.Environment = "production"
	assert.False(t, config.IsDevelopment())
}
