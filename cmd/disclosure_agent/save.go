package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/wenhao/disclosure-assistant/internal/archive"
	"github.com/wenhao/disclosure-assistant/internal/drafting"
	"github.com/wenhao/disclosure-assistant/internal/storage"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Finalize the newest draft and archive it",
	Long:  "Upgrades the most recent draft to final status, strips review annotations, archives the document with a backup copy, and appends it to the document index.",
	RunE:  runSave,
}

var (
	saveConfigPath string
	saveReferences string
	saveOutput     string
	saveVerbose    bool
)

func init() {
	saveCmd.Flags().StringVar(&saveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	saveCmd.Flags().StringVarP(&saveReferences, "references", "r", "", "Directory holding the reference documents")
	saveCmd.Flags().StringVarP(&saveOutput, "output", "o", "", "Directory for generated documents")
	saveCmd.Flags().BoolVarP(&saveVerbose, "verbose", "v", false, "Print the archived document details")

	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, saveConfigPath, saveReferences, saveOutput, saveVerbose)
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

	draft, warnings := storage.ReadText(draftPath)
	printWarnings(warnings)

	now := time.Now()
	techField := archive.TechnicalField(draft)
	final := archive.Finalize(draft, now)
	filename := archive.Filename(techField, now)

	finalPath, backupPath, err := archive.SaveFinal(final, filename, cfg.FinalDir(), now)
	if err != nil {
		return fmt.Errorf("saving final document failed: %w", err)
	}

	record := archive.SaveRecord{
		Filename:       filename,
		TechnicalField: techField,
		SaveDate:       now.Format("2006-01-02 15:04:05"),
		FilePath:       finalPath,
		BackupPath:     backupPath,
		Version:        archive.Version,
		FileSize:       utf8.RuneCountInString(final),
		SectionCount:   archive.SectionCount(final),
	}
	indexPath, warnings, err := archive.UpdateIndex(record.IndexEntry(), cfg.FinalDir())
	printWarnings(warnings)
	if err != nil {
		return fmt.Errorf("updating document index failed: %w", err)
	}

	reportPath, err := archive.SaveReport(archive.Report(record), cfg.FinalDir(), now)
	if err != nil {
		return fmt.Errorf("saving save report failed: %w", err)
	}

	fmt.Printf("Finalized: %s\n", filepath.Base(draftPath))
	fmt.Printf("Archived: %s\n", finalPath)
	fmt.Printf("Backup: %s\n", backupPath)
	fmt.Printf("Index updated: %s\n", indexPath)
	fmt.Printf("Report saved: %s\n", reportPath)
	if cfg.Verbose {
		fmt.Printf("[VERBOSE] Technical field: %s\n", techField)
		fmt.Printf("[VERBOSE] Size: %d characters, %d sections\n", record.FileSize, record.SectionCount)
	}

	return nil
}
