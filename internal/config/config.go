// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application settings loaded from config.json (or yaml),
// .env and COINFOLIO_* environment variables.
type Config struct {
	APIBaseURL       string        `mapstructure:"api_base_url"`
	APIKey           string        `mapstructure:"api_key"`
	CoinsPerPage     int           `mapstructure:"coins_per_page"`
	MarketsPerPage   int           `mapstructure:"markets_per_page"`
	DefaultRange     int           `mapstructure:"default_range"`
	RequestTimeout   time.Duration `mapstructure:"-"`
	RequestTimeoutMS int           `mapstructure:"request_timeout_ms"`
	Retries          int           `mapstructure:"retries"`
	DataDir          string        `mapstructure:"data_dir"`
	LogFile          string        `mapstructure:"log_file"`
	DebugLogging     bool          `mapstructure:"debug_logging"`
	DarkMode         bool          `mapstructure:"dark_mode"`
	ExportDir        string        `mapstructure:"export_dir"`
}

const (
	DefaultAPIBaseURL     = "https://api.coingecko.com/api/v3"
	DefaultCoinsPerPage   = 10
	DefaultMarketsPerPage = 100
	DefaultRange          = 7
	DefaultDataDir        = ".coinfolio"
	DefaultLogFile        = "logs/coinfolio.log"
	DefaultExportDir      = "exports"

	envPrefix = "COINFOLIO"
)

// Ranges lists the chart day ranges accepted by default_range.
var Ranges = []int{1, 7, 30, 365}

// Load reads configuration from path. A missing file is not an error:
// defaults and environment still apply. An empty path skips the file.
func Load(path string) (*Config, error) {
	// .env is optional; an unreadable one is reported, a missing one is not
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config error: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutMS) * time.Millisecond
	cfg.DataDir = expandHome(cfg.DataDir)
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		return &Config{
			APIBaseURL:     DefaultAPIBaseURL,
			CoinsPerPage:   DefaultCoinsPerPage,
			MarketsPerPage: DefaultMarketsPerPage,
			DefaultRange:   DefaultRange,
			DataDir:        expandHome(DefaultDataDir),
			LogFile:        DefaultLogFile,
			DarkMode:       true,
			ExportDir:      DefaultExportDir,
		}
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	defaults := map[string]interface{}{
		"api_base_url":       DefaultAPIBaseURL,
		"api_key":            "",
		"coins_per_page":     DefaultCoinsPerPage,
		"markets_per_page":   DefaultMarketsPerPage,
		"default_range":      DefaultRange,
		"request_timeout_ms": 0,
		"retries":            0,
		"data_dir":           DefaultDataDir,
		"log_file":           DefaultLogFile,
		"debug_logging":      false,
		"dark_mode":          true,
		"export_dir":         DefaultExportDir,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

func (c *Config) validate() error {
	parsed, err := url.Parse(c.APIBaseURL)
	if err != nil || parsed.Host == "" {
		return fmt.Errorf("invalid api_base_url %q", c.APIBaseURL)
	}
	if !strings.HasPrefix(parsed.Scheme, "http") {
		return errors.New("api_base_url must use http or https")
	}
	if c.CoinsPerPage <= 0 {
		return errors.New("invalid coins_per_page")
	}
	if c.MarketsPerPage <= 0 || c.MarketsPerPage > 250 {
		return errors.New("markets_per_page must be between 1 and 250")
	}
	if !validRange(c.DefaultRange) {
		return fmt.Errorf("default_range must be one of %v", Ranges)
	}
	if c.RequestTimeoutMS < 0 {
		return errors.New("invalid request_timeout_ms")
	}
	if c.Retries < 0 {
		return errors.New("invalid retries count")
	}
	if c.DataDir == "" {
		return errors.New("data_dir is required")
	}
	return nil
}

func validRange(days int) bool {
	for _, r := range Ranges {
		if r == days {
			return true
		}
	}
	return false
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
