// Package storage provides file access for the pipeline artifacts: text
// reading with encoding fallback, newest-file selection, and JSON persistence.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/wenhao/disclosure-assistant/internal/types"
)

// ReadText reads a file as UTF-8, falling back to GBK when the bytes are not
// valid UTF-8. Reference material in this domain is frequently saved by
// Windows editors in GBK. Failures degrade to empty content with a warning
// rather than an error; callers decide whether empty content is fatal.
func ReadText(path string) (string, []types.Warning) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", []types.Warning{{
			Code:    types.WarnUnreadable,
			Path:    path,
			Message: fmt.Sprintf("failed to read file: %v", err),
		}}
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(data)
	if err != nil {
		return "", []types.Warning{{
			Code:    types.WarnUnreadable,
			Path:    path,
			Message: fmt.Sprintf("content is neither UTF-8 nor GBK: %v", err),
		}}
	}

	return string(decoded), []types.Warning{{
		Code:    types.WarnDecodeFallback,
		Path:    path,
		Message: "content was not valid UTF-8, decoded as GBK",
	}}
}

// WriteText writes UTF-8 content, creating parent directories on demand
func WriteText(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// CopyFile duplicates a file's contents, creating parent directories on demand
func CopyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return nil
}
