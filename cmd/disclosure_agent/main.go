// Package main provides the entry point for the disclosure assistant CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "disclosure_agent",
	Short: "Patent disclosure document assistant",
	Long:  "Disclosure Assistant assembles Chinese technical patent-disclosure documents: it extracts writing rules from reference material, collects structured invention information, synthesizes a draft, reviews it against the rules, and archives the finalized document with backups and an index.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
