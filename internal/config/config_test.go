// Package config provides configuration management for the engram hook binaries.
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// ConfigSuite is a test suite for config operations.
type ConfigSuite struct {
	suite.Suite
	tempDir     string
	origHomeDir string
}

func (s *ConfigSuite) SetupTest() {
	var err error
	s.tempDir, err = os.MkdirTemp("", "config-test-*")
	s.Require().NoError(err)

	// Save and override HOME
	s.origHomeDir = os.Getenv("HOME")
	os.Setenv("HOME", s.tempDir)
	os.Unsetenv("XDG_CACHE_HOME")
	os.Unsetenv("ENGRAM_PORT")
	os.Unsetenv("ENGRAM_MIN_LEARNING_LENGTH")
}

func (s *ConfigSuite) TearDownTest() {
	os.Setenv("HOME", s.origHomeDir)
	os.RemoveAll(s.tempDir)
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

// TestDefault tests default configuration values.
func (s *ConfigSuite) TestDefault() {
	cfg := Default()

	s.Equal(DefaultPort, cfg.Port)
	s.Equal(DefaultMinLearningLength, cfg.MinLearningLength)
	s.Equal(2*time.Second, cfg.HealthTimeout)
	s.Equal(5*time.Second, cfg.SaveTimeout)
}

// TestBaseURL tests base URL formatting.
func (s *ConfigSuite) TestBaseURL() {
	cfg := Default()
	s.Equal("http://127.0.0.1:7437", cfg.BaseURL())

	cfg.Port = 39999
	s.Equal("http://127.0.0.1:39999", cfg.BaseURL())
}

// TestDataDir tests data directory path.
func (s *ConfigSuite) TestDataDir() {
	dir := DataDir()
	s.Contains(dir, ".engram")
}

// TestSettingsPath tests settings file path.
func (s *ConfigSuite) TestSettingsPath() {
	path := SettingsPath()
	s.Contains(path, "settings.json")
}

// TestLogDir tests cache-relative log directory resolution.
func (s *ConfigSuite) TestLogDir() {
	s.Equal(filepath.Join(s.tempDir, ".cache", "engram", "logs"), LogDir())

	os.Setenv("XDG_CACHE_HOME", filepath.Join(s.tempDir, "xdg"))
	defer os.Unsetenv("XDG_CACHE_HOME")
	s.Equal(filepath.Join(s.tempDir, "xdg", "engram", "logs"), LogDir())
}

// TestEnsureLogDir tests log directory creation.
func (s *ConfigSuite) TestEnsureLogDir() {
	err := EnsureLogDir()
	s.NoError(err)

	info, err := os.Stat(LogDir())
	s.NoError(err)
	s.True(info.IsDir())

	// Second call should not error (dir exists)
	s.NoError(EnsureLogDir())
}

// TestLoad_TableDriven tests configuration loading with various scenarios.
func (s *ConfigSuite) TestLoad_TableDriven() {
	tests := []struct {
		name           string
		settingsJSON   string
		env            map[string]string
		expectedPort   int
		expectedMinLen int
	}{
		{
			name:           "no settings file",
			settingsJSON:   "",
			expectedPort:   DefaultPort,
			expectedMinLen: DefaultMinLearningLength,
		},
		{
			name:           "custom port",
			settingsJSON:   `{"ENGRAM_PORT": 38888}`,
			expectedPort:   38888,
			expectedMinLen: DefaultMinLearningLength,
		},
		{
			name:           "custom minimum length",
			settingsJSON:   `{"ENGRAM_MIN_LEARNING_LENGTH": 10}`,
			expectedPort:   DefaultPort,
			expectedMinLen: 10,
		},
		{
			name:           "invalid JSON returns defaults",
			settingsJSON:   `{invalid}`,
			expectedPort:   DefaultPort,
			expectedMinLen: DefaultMinLearningLength,
		},
		{
			name:           "environment overrides settings file",
			settingsJSON:   `{"ENGRAM_PORT": 38888}`,
			env:            map[string]string{"ENGRAM_PORT": "39999"},
			expectedPort:   39999,
			expectedMinLen: DefaultMinLearningLength,
		},
		{
			name:           "invalid environment value ignored",
			settingsJSON:   "",
			env:            map[string]string{"ENGRAM_PORT": "not-a-port"},
			expectedPort:   DefaultPort,
			expectedMinLen: DefaultMinLearningLength,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			// Create fresh temp dir
			tempDir, err := os.MkdirTemp("", "config-test-*")
			s.Require().NoError(err)
			defer os.RemoveAll(tempDir)

			os.Setenv("HOME", tempDir)

			err = os.MkdirAll(filepath.Join(tempDir, ".engram"), 0750)
			s.Require().NoError(err)

			if tt.settingsJSON != "" {
				writeErr := os.WriteFile(
					filepath.Join(tempDir, ".engram", "settings.json"),
					[]byte(tt.settingsJSON),
					0600,
				)
				s.Require().NoError(writeErr)
			}

			for k, v := range tt.env {
				os.Setenv(k, v)
				defer os.Unsetenv(k)
			}

			cfg, err := Load()
			s.NoError(err)
			s.NotNil(cfg)
			s.Equal(tt.expectedPort, cfg.Port)
			s.Equal(tt.expectedMinLen, cfg.MinLearningLength)
		})
	}
}
