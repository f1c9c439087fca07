// Package config provides configuration management for the engram hook binaries.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
)

const (
	// DefaultPort is the port the local Engram server listens on.
	DefaultPort = 7437

	// DefaultMinLearningLength is the minimum cleaned length for a learning
	// to be worth capturing.
	DefaultMinLearningLength = 20

	// DefaultHealthTimeout bounds the health probe before a run is skipped.
	DefaultHealthTimeout = 2 * time.Second

	// DefaultSaveTimeout bounds each observation submission.
	DefaultSaveTimeout = 5 * time.Second
)

// Config holds the settings used by the hooks.
type Config struct {
	Port              int
	MinLearningLength int
	HealthTimeout     time.Duration
	SaveTimeout       time.Duration
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Port:              DefaultPort,
		MinLearningLength: DefaultMinLearningLength,
		HealthTimeout:     DefaultHealthTimeout,
		SaveTimeout:       DefaultSaveTimeout,
	}
}

// settings mirrors ~/.engram/settings.json. Keys match the environment
// variable names so both configuration surfaces read the same.
type settings struct {
	Port      *int `json:"ENGRAM_PORT"`
	MinLength *int `json:"ENGRAM_MIN_LEARNING_LENGTH"`
}

// Load returns the configuration: defaults, overridden by the settings file,
// overridden by the environment. A missing or malformed settings file falls
// back to defaults rather than erroring.
func Load() (*Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(SettingsPath()); err == nil {
		var s settings
		if err := json.Unmarshal(data, &s); err == nil {
			if s.Port != nil && *s.Port > 0 {
				cfg.Port = *s.Port
			}
			if s.MinLength != nil && *s.MinLength > 0 {
				cfg.MinLearningLength = *s.MinLength
			}
		}
	}

	if port, ok := envInt("ENGRAM_PORT"); ok {
		cfg.Port = port
	}
	if minLen, ok := envInt("ENGRAM_MIN_LEARNING_LENGTH"); ok {
		cfg.MinLearningLength = minLen
	}

	return cfg, nil
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// BaseURL returns the base URL of the Engram server.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("http://127.0.0.1:%d", c.Port)
}

// DataDir returns the engram data directory (~/.engram).
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".engram")
}

// SettingsPath returns the settings file path.
func SettingsPath() string {
	return filepath.Join(DataDir(), "settings.json")
}

// LogDir returns the directory hook log files are appended to,
// honoring XDG_CACHE_HOME.
func LogDir() string {
	cache := os.Getenv("XDG_CACHE_HOME")
	if cache == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cache = filepath.Join(home, ".cache")
	}
	return filepath.Join(cache, "engram", "logs")
}

// EnsureLogDir creates the log directory if needed.
func EnsureLogDir() error {
	return os.MkdirAll(LogDir(), 0o750)
}
