package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wenhao/disclosure-assistant/internal/analysis"
	"github.com/wenhao/disclosure-assistant/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Extract writing rules from the reference documents",
	Long:  "Reads the writing guidelines and the sample disclosure from the references directory, derives the document specification, and saves specification.json together with a markdown summary.",
	RunE:  runAnalyze,
}

var (
	analyzeConfigPath string
	analyzeReferences string
	analyzeOutput     string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCmd.Flags().StringVarP(&analyzeReferences, "references", "r", "", "Directory holding the reference documents")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Directory for generated documents")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print the extracted rule set")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, analyzeConfigPath, analyzeReferences, analyzeOutput, analyzeVerbose)
	if err != nil {
		return err
	}

	spec, warnings, err := analysis.Analyze(cfg.ReferencesDir)
	printWarnings(warnings)
	if err != nil {
		return err
	}

	jsonPath, summaryPath, err := analysis.SaveSpecification(spec, cfg.ReferencesDir)
	if err != nil {
		return err
	}

	fmt.Printf("Identified %d required sections and %d formatting rules\n",
		len(spec.ComprehensiveSpecs.RequiredSections), len(spec.ComprehensiveSpecs.FormattingRules))
	fmt.Printf("Specification saved: %s\n", jsonPath)
	fmt.Printf("Summary saved: %s\n", summaryPath)

	if cfg.Verbose {
		rules := spec.RuleSet()
		observability.NewPrinter(os.Stdout).PrintRuleSet(&rules)
	}

	return nil
}
