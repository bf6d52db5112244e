// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	ReferencesDir string `json:"references_dir,omitempty"` // Directory holding guideline/sample inputs and extracted artifacts
	OutputDir     string `json:"output_dir,omitempty"`     // Root directory for drafts, reviews and final documents

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for the optional artifact store
}

// DefaultConfig returns the standard directory layout used when neither flags
// nor a config file override it.
func DefaultConfig() Config {
	return Config{
		ReferencesDir: "references",
		OutputDir:     "outputs",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values. Absent directories
// are fine since every stage creates its outputs on demand; an existing
// non-directory path at either location is a configuration mistake.
func (c *Config) Validate() error {
	if c.ReferencesDir != "" {
		if info, err := os.Stat(c.ReferencesDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: references_dir is not a directory: %s", c.ReferencesDir)
		}
	}

	if c.OutputDir != "" {
		if info, err := os.Stat(c.OutputDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: output_dir is not a directory: %s", c.OutputDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.ReferencesDir == "" {
		result.ReferencesDir = defaults.ReferencesDir
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// DraftsDir returns the drafts directory under the output root.
func (c *Config) DraftsDir() string {
	return filepath.Join(c.OutputDir, "drafts")
}

// ReviewsDir returns the review-reports directory under the output root.
func (c *Config) ReviewsDir() string {
	return filepath.Join(c.OutputDir, "reviews")
}

// FinalDir returns the final-documents base directory under the output root.
func (c *Config) FinalDir() string {
	return filepath.Join(c.OutputDir, "final_documents")
}
