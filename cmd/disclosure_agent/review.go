package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/wenhao/disclosure-assistant/internal/drafting"
	"github.com/wenhao/disclosure-assistant/internal/observability"
	"github.com/wenhao/disclosure-assistant/internal/review"
	"github.com/wenhao/disclosure-assistant/internal/storage"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review the newest draft against the extracted rules",
	Long:  "Runs the section, content, and formatting checks over the most recent draft document and writes a review report. The review never blocks the pipeline; a low score is advice, not an error.",
	RunE:  runReview,
}

var (
	reviewConfigPath string
	reviewReferences string
	reviewOutput     string
	reviewVerbose    bool
)

func init() {
	reviewCmd.Flags().StringVar(&reviewConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	reviewCmd.Flags().StringVarP(&reviewReferences, "references", "r", "", "Directory holding the reference documents")
	reviewCmd.Flags().StringVarP(&reviewOutput, "output", "o", "", "Directory for generated documents")
	reviewCmd.Flags().BoolVarP(&reviewVerbose, "verbose", "v", false, "Print the full review result")

	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, reviewConfigPath, reviewReferences, reviewOutput, reviewVerbose)
	if err != nil {
		return err
	}

	draftPath, err := storage.NewestMatch(cfg.DraftsDir(), drafting.DraftFilePattern)
	if err != nil {
		if errors.Is(err, storage.ErrNoMatch) {
			return fmt.Errorf("no draft documents found in %s: run draft first", cfg.DraftsDir())
		}
		return fmt.Errorf("locating draft failed: %w", err)
	}

	content, warnings := storage.ReadText(draftPath)
	printWarnings(warnings)

	spec, warnings := storage.LoadSpecification(filepath.Join(cfg.ReferencesDir, storage.SpecificationFile))
	printWarnings(warnings)

	result := review.Review(content, filepath.Base(draftPath), spec.RuleSet(), time.Now())
	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintReviewResult(&result)
	}

	reportPath, err := review.SaveReport(review.Report(result), cfg.ReviewsDir(), draftPath)
	if err != nil {
		return err
	}

	fmt.Printf("Reviewed: %s\n", filepath.Base(draftPath))
	fmt.Printf("Review score: %.1f%% (%d/%d checks passed)\n",
		result.OverallScore, result.PassedChecks, result.TotalChecks)
	fmt.Printf("Report saved: %s\n", reportPath)

	return nil
}
