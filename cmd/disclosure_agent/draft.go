package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/wenhao/disclosure-assistant/internal/archive"
	"github.com/wenhao/disclosure-assistant/internal/collection"
	"github.com/wenhao/disclosure-assistant/internal/drafting"
	"github.com/wenhao/disclosure-assistant/internal/storage"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Generate a disclosure draft from collected information",
	Long:  "Synthesizes a complete technical disclosure draft from the saved specification and collected answers. Missing answers become placeholder sections; the saved specification falls back to the built-in defaults when absent.",
	RunE:  runDraft,
}

var (
	draftConfigPath string
	draftReferences string
	draftOutput     string
	draftVerbose    bool
)

func init() {
	draftCmd.Flags().StringVar(&draftConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	draftCmd.Flags().StringVarP(&draftReferences, "references", "r", "", "Directory holding the reference documents")
	draftCmd.Flags().StringVarP(&draftOutput, "output", "o", "", "Directory for generated documents")
	draftCmd.Flags().BoolVarP(&draftVerbose, "verbose", "v", false, "Print the generated document title")

	rootCmd.AddCommand(draftCmd)
}

func runDraft(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, draftConfigPath, draftReferences, draftOutput, draftVerbose)
	if err != nil {
		return err
	}

	spec, warnings := storage.LoadSpecification(filepath.Join(cfg.ReferencesDir, storage.SpecificationFile))
	printWarnings(warnings)

	record, warnings := storage.LoadAnswers(filepath.Join(cfg.ReferencesDir, storage.CollectedInfoFile))
	printWarnings(warnings)
	if len(record) == 0 {
		return fmt.Errorf("no technical information collected: run collect first")
	}

	validation := collection.NewQuestionnaire().Validate(record)
	if len(validation.MissingFields) > 0 {
		fmt.Printf("Warning: missing required fields: %s\n", strings.Join(validation.MissingFields, ", "))
		fmt.Printf("Placeholders will be used in the draft.\n")
	}

	now := time.Now()
	draft := drafting.DefaultLayout().Synthesize(record, spec.RuleSet(), now)
	if cfg.Verbose {
		fmt.Printf("[VERBOSE] Document title: %s\n", drafting.Title(record))
	}

	draftPath, err := drafting.SaveDraft(draft, cfg.DraftsDir(), now)
	if err != nil {
		return err
	}
	fmt.Printf("Draft saved: %s (%d characters, %d sections)\n",
		draftPath, utf8.RuneCountInString(draft), archive.SectionCount(draft))
	if n := strings.Count(draft, "待补充"); n > 0 {
		fmt.Printf("Warning: draft contains %d placeholder marks to fill in\n", n)
	}

	return nil
}
