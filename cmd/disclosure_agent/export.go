package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wenhao/disclosure-assistant/internal/export"
	"github.com/wenhao/disclosure-assistant/internal/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a finalized document to HTML",
	Long:  "Renders a finalized disclosure document to a standalone HTML file next to the source. Without --file the newest entry in the document index is exported.",
	RunE:  runExport,
}

var (
	exportConfigPath string
	exportReferences string
	exportOutput     string
	exportVerbose    bool
	exportFile       string
)

func init() {
	exportCmd.Flags().StringVar(&exportConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	exportCmd.Flags().StringVarP(&exportReferences, "references", "r", "", "Directory holding the reference documents")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Directory for generated documents")
	exportCmd.Flags().BoolVarP(&exportVerbose, "verbose", "v", false, "Print detailed information")
	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "Path to a specific markdown file to export")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, exportConfigPath, exportReferences, exportOutput, exportVerbose)
	if err != nil {
		return err
	}

	mdPath := exportFile
	if mdPath == "" {
		var warnings []types.Warning
		mdPath, warnings, err = export.LatestFinal(cfg.FinalDir())
		printWarnings(warnings)
		if err != nil {
			return err
		}
	}

	htmlPath, err := export.Export(mdPath)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	fmt.Printf("Exported: %s\n", htmlPath)

	return nil
}
