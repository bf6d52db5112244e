package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wenhao/disclosure-assistant/internal/config"
	"github.com/wenhao/disclosure-assistant/internal/types"
)

// resolveConfig builds the effective configuration for a command: config-file
// values, overridden by explicitly set flags, with defaults filling the rest.
// Only flags the user actually set override the file values.
func resolveConfig(cmd *cobra.Command, configPath, references, output string, verbose bool) (*config.Config, error) {
	var cfg config.Config

	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("references") {
		cfg.ReferencesDir = references
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = output
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}

	cfg = cfg.MergeWithDefaults(config.DefaultConfig())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveDatabaseURL applies the flag > config file > environment precedence
// for the optional artifact store connection string.
func resolveDatabaseURL(cmd *cobra.Command, cfg *config.Config, flagValue string) string {
	if cmd.Flags().Changed("db-url") {
		return flagValue
	}
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}
	return os.Getenv("DATABASE_URL")
}

// printWarnings reports tolerated fallbacks on stderr
func printWarnings(warnings []types.Warning) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
}
