// Package export converts finalized disclosure documents to HTML so they can
// be shared outside the Markdown toolchain.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/wenhao/disclosure-assistant/internal/storage"
	"github.com/wenhao/disclosure-assistant/internal/types"
)

// ErrNoFinalDocuments is returned when the index has no saved documents yet.
var ErrNoFinalDocuments = errors.New("no finalized documents in the index")

// Export converts a Markdown document to HTML, written next to the source
// with the extension swapped to .html, and returns the output path.
func Export(mdPath string) (string, error) {
	data, err := os.ReadFile(mdPath)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}

	var buf bytes.Buffer
	if err := goldmark.Convert(data, &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}

	outPath := strings.TrimSuffix(mdPath, filepath.Ext(mdPath)) + ".html"
	if err := storage.WriteText(outPath, buf.String()); err != nil {
		return "", err
	}
	return outPath, nil
}

// LatestFinal resolves the most recently indexed final document's path.
func LatestFinal(baseDir string) (string, []types.Warning, error) {
	indexPath := filepath.Join(baseDir, storage.IndexFile)
	index, warnings := storage.LoadIndex(indexPath)
	if len(index) == 0 {
		return "", warnings, ErrNoFinalDocuments
	}
	return index[len(index)-1].FilePath, warnings, nil
}
