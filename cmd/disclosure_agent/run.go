package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/wenhao/disclosure-assistant/internal/pipeline"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full disclosure pipeline end-to-end",
	Long: `Orchestrates the entire disclosure assembly process: analyze -> collect -> draft -> review -> save.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath  string
	runReferences  string
	runOutput      string
	runVerbose     bool
	runInput       string
	runDatabaseURL string
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runReferences, "references", "r", "", "Directory holding the reference documents")
	runCommand.Flags().StringVarP(&runOutput, "output", "o", "", "Directory for generated documents")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed stage information")
	runCommand.Flags().StringVarP(&runInput, "input", "i", "", "Path to a free-text answers file for the collection stage")

	// Database URL for artifact persistence
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd, runConfigPath, runReferences, runOutput, runVerbose)
	if err != nil {
		return err
	}

	_, err = pipeline.RunPipeline(ctx, pipeline.RunOptions{
		Config:      cfg,
		InputPath:   runInput,
		Verbose:     cfg.Verbose,
		DatabaseURL: resolveDatabaseURL(cmd, cfg, runDatabaseURL),
	})
	return err
}
