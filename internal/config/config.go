// Package config provides configuration loading and validation for the application.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variable names read at startup
const (
	// EnvAPIKey supplies the Gemini credential for the suggestion service
	EnvAPIKey = "GEMINI_API_KEY"
	// EnvChromePath overrides the Chrome/Chromium binary used for PDF export
	EnvChromePath = "CHROME_PATH"
	// EnvStoragePath overrides where the resume document is persisted
	EnvStoragePath = "RESUMATE_STORAGE"
)

// Config represents the application configuration. All fields are optional;
// missing values use defaults or come from the environment.
type Config struct {
	// StoragePath is the file the resume document is persisted to
	StoragePath string `json:"storage_path,omitempty"`
	// APIKey is the Gemini API key for the suggestion service. Its absence
	// disables that feature only; nothing else depends on it.
	APIKey string `json:"api_key,omitempty"`
	// ChromePath is an explicit Chrome/Chromium binary for PDF export
	ChromePath string `json:"chrome_path,omitempty"`
	// Verbose enables detailed log output
	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from the environment. A .env file in the working
// directory is loaded first if present.
func FromEnv() *Config {
	_ = godotenv.Load()

	return &Config{
		StoragePath: os.Getenv(EnvStoragePath),
		APIKey:      os.Getenv(EnvAPIKey),
		ChromePath:  os.Getenv(EnvChromePath),
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.StoragePath == "" {
		result.StoragePath = defaults.StoragePath
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.StoragePath == "" {
		result.StoragePath = DefaultStoragePath()
	}

	return result
}

// DefaultStoragePath is the per-user location of the persisted document.
// Falls back to the working directory when the home directory is unknown.
func DefaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "resume.json"
	}
	return filepath.Join(home, ".resumate", "resume.json")
}

// Validate checks that the configuration has usable values
func (c *Config) Validate() error {
	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}
	return nil
}
