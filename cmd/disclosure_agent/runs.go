package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wenhao/disclosure-assistant/internal/config"
	"github.com/wenhao/disclosure-assistant/internal/db"
)

var runsCmd = &cobra.Command{
	Use:   "runs [run-id]",
	Short: "Inspect pipeline runs recorded in the database",
	Long:  "Lists recent pipeline runs from the database mirror, or shows one run in detail when a run ID is given. Requires a configured database.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRuns,
}

var (
	runsConfigPath  string
	runsDatabaseURL string
	runsLimit       int
)

func init() {
	runsCmd.Flags().StringVar(&runsConfigPath, "config", "", "Path to config.json file")
	runsCmd.Flags().StringVar(&runsDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 10, "Maximum number of runs to list")

	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg := &config.Config{}
	if runsConfigPath != "" {
		loaded, err := config.LoadConfig(runsConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	url := resolveDatabaseURL(cmd, cfg, runsDatabaseURL)
	if url == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	database, err := db.Connect(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if len(args) == 1 {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid run id %q: %w", args[0], err)
		}
		run, err := database.GetRun(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to fetch run: %w", err)
		}
		if run == nil {
			return fmt.Errorf("run not found: %s", id)
		}
		printRunDetail(run)
		return nil
	}

	runs, err := database.ListRuns(ctx, runsLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}
	for _, run := range runs {
		score := "-"
		if run.Score != nil {
			score = fmt.Sprintf("%.1f%%", *run.Score)
		}
		fmt.Printf("%s  %-9s  %-6s  %s  %s\n",
			run.ID, run.Status, score, run.CreatedAt.Format("2006-01-02 15:04"), run.Title)
	}
	return nil
}

func printRunDetail(run *db.Run) {
	fmt.Printf("Run:       %s\n", run.ID)
	fmt.Printf("Title:     %s\n", run.Title)
	fmt.Printf("Field:     %s\n", run.TechnicalField)
	fmt.Printf("Status:    %s\n", run.Status)
	if run.Score != nil {
		fmt.Printf("Score:     %.1f%%\n", *run.Score)
	} else {
		fmt.Printf("Score:     -\n")
	}
	fmt.Printf("Created:   %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	if run.CompletedAt != nil {
		fmt.Printf("Completed: %s\n", run.CompletedAt.Format("2006-01-02 15:04:05"))
	}
}
