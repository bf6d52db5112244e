// Package types provides type definitions for structured data used throughout the disclosure-assistant system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// IndexEntry represents one record of the append-only document index
type IndexEntry struct {
	Filename       string `json:"filename"`
	TechnicalField string `json:"technical_field"`
	SaveDate       string `json:"save_date"`
	FilePath       string `json:"file_path"`
	BackupPath     string `json:"backup_path"`
	Version        string `json:"version"`
}
