// Package pipeline provides the high-level orchestration for the disclosure
// assembly process.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/wenhao/disclosure-assistant/internal/analysis"
	"github.com/wenhao/disclosure-assistant/internal/archive"
	"github.com/wenhao/disclosure-assistant/internal/collection"
	"github.com/wenhao/disclosure-assistant/internal/config"
	"github.com/wenhao/disclosure-assistant/internal/db"
	"github.com/wenhao/disclosure-assistant/internal/drafting"
	"github.com/wenhao/disclosure-assistant/internal/observability"
	"github.com/wenhao/disclosure-assistant/internal/review"
	"github.com/wenhao/disclosure-assistant/internal/storage"
	"github.com/wenhao/disclosure-assistant/internal/types"
)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Config      *config.Config
	InputPath   string // optional free-text answers file for the collection stage
	Verbose     bool
	DatabaseURL string
}

// Result holds the artifact locations and review outcome of a completed run
type Result struct {
	RunID       uuid.UUID
	DraftPath   string
	ReviewScore float64
	FinalPath   string
	ReportPath  string
	Warnings    []types.Warning
}

// collectAnswers produces the answer record for the collection stage, either
// by parsing a free-text input file or from previously collected answers.
func collectAnswers(inputPath, referencesDir string) (types.AnswerRecord, []types.Warning) {
	if inputPath != "" {
		text, warns := storage.ReadText(inputPath)
		return collection.ParseFreeText(text), warns
	}
	return storage.LoadAnswers(filepath.Join(referencesDir, storage.CollectedInfoFile))
}

// RunPipeline orchestrates the full disclosure assembly pipeline: analyze,
// collect, draft, review, save. File outputs are the source of truth; the
// database mirror is best-effort and its failures degrade to printed warnings.
// Accumulated stage warnings are flushed to stderr before returning.
func RunPipeline(ctx context.Context, opts RunOptions) (*Result, error) {
	now := time.Now()
	runID := uuid.New()
	printer := observability.NewPrinter(os.Stdout)
	result := &Result{RunID: runID}
	defer func() {
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}
	}()

	// Initialize database connection if configured
	var database *db.DB
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
			database = nil
		} else {
			defer database.Close()
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Connected to database\n")
			}
		}
	}

	// Step 1: Extract the writing specification from reference material
	fmt.Printf("Step 1/5: Analyzing writing specifications...\n")
	spec, warns, err := analysis.Analyze(opts.Config.ReferencesDir)
	result.Warnings = append(result.Warnings, warns...)
	if err != nil {
		return nil, fmt.Errorf("specification analysis failed: %w", err)
	}
	if _, _, err := analysis.SaveSpecification(spec, opts.Config.ReferencesDir); err != nil {
		return nil, fmt.Errorf("saving specification failed: %w", err)
	}
	rules := spec.RuleSet()
	if opts.Verbose {
		printer.PrintRuleSet(&rules)
	}

	// Step 2: Collect and validate technical information
	fmt.Printf("Step 2/5: Collecting technical information...\n")
	record, warns := collectAnswers(opts.InputPath, opts.Config.ReferencesDir)
	result.Warnings = append(result.Warnings, warns...)
	if len(record) == 0 {
		return nil, fmt.Errorf("no technical information available: provide an input file or run collect first")
	}

	questionnaire := collection.NewQuestionnaire()
	validation := questionnaire.Validate(record)
	if opts.Verbose {
		printer.PrintValidationResult(&validation)
	}
	if len(validation.MissingFields) > 0 {
		fmt.Printf("Warning: missing required fields: %s\n", strings.Join(validation.MissingFields, ", "))
		fmt.Printf("Placeholders will be used in the draft.\n")
	}
	if _, err := collection.SaveCollected(record, opts.Config.ReferencesDir); err != nil {
		return nil, fmt.Errorf("saving collected information failed: %w", err)
	}
	collectionReport := questionnaire.Report(record, validation)
	if _, err := collection.SaveReport(collectionReport, opts.Config.ReferencesDir); err != nil {
		return nil, fmt.Errorf("saving collection report failed: %w", err)
	}

	// Record the run and the first artifacts
	if database != nil {
		techField := record[collection.FieldTechnicalField]
		if err := database.CreateRun(ctx, runID, techField, drafting.Title(record)); err != nil {
			fmt.Printf("Warning: Failed to create database run: %v\n", err)
			database = nil
		} else {
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Created database run: %s\n", runID)
			}
			_ = database.SaveArtifact(ctx, runID, db.StepSpecification, db.CategoryJSON, spec)
			_ = database.SaveArtifact(ctx, runID, db.StepCollectedInfo, db.CategoryJSON, record)
			_ = database.SaveTextArtifact(ctx, runID, db.StepCollectionReport, db.CategoryMarkdown, collectionReport)
		}
	}

	// Step 3: Synthesize the draft
	fmt.Printf("Step 3/5: Generating disclosure draft...\n")
	layout := drafting.DefaultLayout()
	draft := layout.Synthesize(record, rules, now)
	draftPath, err := drafting.SaveDraft(draft, opts.Config.DraftsDir(), now)
	if err != nil {
		return nil, fmt.Errorf("saving draft failed: %w", err)
	}
	result.DraftPath = draftPath
	fmt.Printf("Draft saved: %s (%d characters, %d sections)\n",
		draftPath, utf8.RuneCountInString(draft), archive.SectionCount(draft))
	if n := strings.Count(draft, "待补充"); n > 0 {
		fmt.Printf("Warning: draft contains %d placeholder marks to fill in\n", n)
	}
	if database != nil {
		_ = database.SaveTextArtifact(ctx, runID, db.StepDraft, db.CategoryMarkdown, draft)
	}

	// Step 4: Review the draft against the rule set
	fmt.Printf("Step 4/5: Reviewing draft quality...\n")
	reviewResult := review.Review(draft, filepath.Base(draftPath), rules, now)
	result.ReviewScore = reviewResult.OverallScore
	if opts.Verbose {
		printer.PrintReviewResult(&reviewResult)
	}
	reviewReport := review.Report(reviewResult)
	if _, err := review.SaveReport(reviewReport, opts.Config.ReviewsDir(), draftPath); err != nil {
		return nil, fmt.Errorf("saving review report failed: %w", err)
	}
	fmt.Printf("Review score: %.1f%% (%d/%d checks passed)\n",
		reviewResult.OverallScore, reviewResult.PassedChecks, reviewResult.TotalChecks)
	if database != nil {
		_ = database.SaveArtifact(ctx, runID, db.StepReview, db.CategoryJSON, reviewResult)
		_ = database.SaveTextArtifact(ctx, runID, db.StepReviewReport, db.CategoryMarkdown, reviewReport)
		_ = database.UpdateRunScore(ctx, runID, reviewResult.OverallScore)
	}

	// Step 5: Finalize and archive
	fmt.Printf("Step 5/5: Finalizing and archiving document...\n")
	techField := archive.TechnicalField(draft)
	final := archive.Finalize(draft, now)
	filename := archive.Filename(techField, now)
	finalPath, backupPath, err := archive.SaveFinal(final, filename, opts.Config.FinalDir(), now)
	if err != nil {
		return nil, fmt.Errorf("saving final document failed: %w", err)
	}
	result.FinalPath = finalPath

	saveRecord := archive.SaveRecord{
		Filename:       filename,
		TechnicalField: techField,
		SaveDate:       now.Format("2006-01-02 15:04:05"),
		FilePath:       finalPath,
		BackupPath:     backupPath,
		Version:        archive.Version,
		FileSize:       utf8.RuneCountInString(final),
		SectionCount:   archive.SectionCount(final),
	}
	_, warns, err = archive.UpdateIndex(saveRecord.IndexEntry(), opts.Config.FinalDir())
	result.Warnings = append(result.Warnings, warns...)
	if err != nil {
		return nil, fmt.Errorf("updating document index failed: %w", err)
	}
	saveReport := archive.Report(saveRecord)
	reportPath, err := archive.SaveReport(saveReport, opts.Config.FinalDir(), now)
	if err != nil {
		return nil, fmt.Errorf("saving save report failed: %w", err)
	}
	result.ReportPath = reportPath

	if database != nil {
		_ = database.SaveTextArtifact(ctx, runID, db.StepFinalDocument, db.CategoryMarkdown, final)
		_ = database.SaveTextArtifact(ctx, runID, db.StepSaveReport, db.CategoryMarkdown, saveReport)
		_ = database.CompleteRun(ctx, runID, db.RunStatusCompleted)
	}

	fmt.Printf("Done! Final document archived at %s\n", finalPath)
	return result, nil
}
