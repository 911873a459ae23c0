package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validConfigJSON = `{
    "api_base_url": "https://pro-api.example.com/api/v3/",
    "api_key": "demo-key",
    "coins_per_page": 25,
    "default_range": 30,
    "request_timeout_ms": 1500,
    "retries": 2,
    "data_dir": "/tmp/coinfolio",
    "dark_mode": false
}`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "Valid JSON config",
			file:    "config.json",
			content: validConfigJSON,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "https://pro-api.example.com/api/v3", cfg.APIBaseURL)
				assert.Equal(t, "demo-key", cfg.APIKey)
				assert.Equal(t, 25, cfg.CoinsPerPage)
				assert.Equal(t, DefaultMarketsPerPage, cfg.MarketsPerPage)
				assert.Equal(t, 30, cfg.DefaultRange)
				assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
				assert.Equal(t, 2, cfg.Retries)
				assert.False(t, cfg.DarkMode)
			},
		},
		{
			name:    "Valid YAML config",
			file:    "config.yaml",
			content: "coins_per_page: 20\nexport_dir: out\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 20, cfg.CoinsPerPage)
				assert.Equal(t, "out", cfg.ExportDir)
				assert.True(t, cfg.DarkMode)
			},
		},
		{
			name:    "Unsupported range",
			file:    "config.json",
			content: `{"default_range": 14}`,
			wantErr: true,
		},
		{
			name:    "Negative retries",
			file:    "config.json",
			content: `{"retries": -1}`,
			wantErr: true,
		},
		{
			name:    "Bad base URL",
			file:    "config.json",
			content: `{"api_base_url": "ftp://example.com"}`,
			wantErr: true,
		},
		{
			name:    "Malformed file",
			file:    "config.json",
			content: `{"coins_per_page": `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)
			cfg, err := Load(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, DefaultCoinsPerPage, cfg.CoinsPerPage)
	assert.Equal(t, DefaultRange, cfg.DefaultRange)
	assert.Zero(t, cfg.Retries)
	assert.Zero(t, cfg.RequestTimeout)
	assert.True(t, cfg.DarkMode)
}

func TestLoadConfigEnvironmentOverride(t *testing.T) {
	t.Setenv("COINFOLIO_RETRIES", "4")
	t.Setenv("COINFOLIO_API_KEY", "from-env")

	path := writeConfig(t, "config.json", `{"retries": 1}`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Retries)
	assert.Equal(t, "from-env", cfg.APIKey)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".coinfolio"), expandHome("~/.coinfolio"))
	assert.Equal(t, "relative/dir", expandHome("relative/dir"))
}
