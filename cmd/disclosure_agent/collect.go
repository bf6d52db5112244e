package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wenhao/disclosure-assistant/internal/collection"
	"github.com/wenhao/disclosure-assistant/internal/observability"
	"github.com/wenhao/disclosure-assistant/internal/storage"
	"github.com/wenhao/disclosure-assistant/internal/types"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect and validate the invention information",
	Long:  "Collects answers to the fixed eight-field questionnaire from a free-text file or direct flags, validates the required fields, and saves the answer record with a collection status report. Validation gaps are reported, never fatal.",
	RunE:  runCollect,
}

var (
	collectConfigPath string
	collectReferences string
	collectOutput     string
	collectVerbose    bool
	collectGuide      bool
	collectInput      string
	collectFields     []string
)

func init() {
	collectCmd.Flags().StringVar(&collectConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	collectCmd.Flags().StringVarP(&collectReferences, "references", "r", "", "Directory holding the reference documents")
	collectCmd.Flags().StringVarP(&collectOutput, "output", "o", "", "Directory for generated documents")
	collectCmd.Flags().BoolVarP(&collectVerbose, "verbose", "v", false, "Print the validation result details")
	collectCmd.Flags().BoolVar(&collectGuide, "guide", false, "Print the information collection guide and exit")
	collectCmd.Flags().StringVarP(&collectInput, "input", "i", "", "Path to a free-text answers file with one <label>: <value> line per field")
	collectCmd.Flags().StringArrayVar(&collectFields, "field", nil, "Answer one field directly as id=value (repeatable, overrides --input)")

	rootCmd.AddCommand(collectCmd)
}

func fieldIDs(q *collection.Questionnaire) string {
	ids := make([]string, 0, len(q.Fields()))
	for _, field := range q.Fields() {
		ids = append(ids, field.ID)
	}
	return strings.Join(ids, ", ")
}

func runCollect(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, collectConfigPath, collectReferences, collectOutput, collectVerbose)
	if err != nil {
		return err
	}

	questionnaire := collection.NewQuestionnaire()
	if collectGuide {
		fmt.Println(questionnaire.Guide())
		return nil
	}

	record := types.AnswerRecord{}
	if collectInput != "" {
		text, warnings := storage.ReadText(collectInput)
		printWarnings(warnings)
		record = collection.ParseFreeText(text)
	}

	if len(collectFields) > 0 {
		known := make(map[string]struct{})
		for _, field := range questionnaire.Fields() {
			known[field.ID] = struct{}{}
		}
		for _, pair := range collectFields {
			id, value, ok := strings.Cut(pair, "=")
			if !ok {
				return fmt.Errorf("invalid --field %q: expected id=value", pair)
			}
			if _, valid := known[id]; !valid {
				return fmt.Errorf("unknown field %q: valid field ids are %s", id, fieldIDs(questionnaire))
			}
			record[id] = value
		}
	}

	if len(record) == 0 {
		return fmt.Errorf("no information provided: use --input or --field")
	}

	result := questionnaire.Validate(record)
	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintValidationResult(&result)
	}

	infoPath, err := collection.SaveCollected(record, cfg.ReferencesDir)
	if err != nil {
		return err
	}
	reportPath, err := collection.SaveReport(questionnaire.Report(record, result), cfg.ReferencesDir)
	if err != nil {
		return err
	}

	if result.Valid {
		fmt.Printf("Collected %d fields; all required information present\n", len(record))
	} else {
		fmt.Printf("Collected %d fields; validation found gaps\n", len(record))
		if len(result.MissingFields) > 0 {
			fmt.Printf("Missing: %s\n", strings.Join(result.MissingFields, ", "))
		}
		if len(result.IncompleteFields) > 0 {
			fmt.Printf("Incomplete: %s\n", strings.Join(result.IncompleteFields, ", "))
		}
	}
	fmt.Printf("Answers saved: %s\n", infoPath)
	fmt.Printf("Report saved: %s\n", reportPath)

	return nil
}
