package drafting

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/wenhao/disclosure-assistant/internal/storage"
)

// DraftFilePattern matches saved draft filenames, newest-first lookups use it.
const DraftFilePattern = "technical_disclosure_draft_*.md"

// SaveDraft writes the draft under draftsDir with a timestamped filename and
// returns the full path.
func SaveDraft(content, draftsDir string, now time.Time) (string, error) {
	filename := fmt.Sprintf("technical_disclosure_draft_%s.md", now.Format("20060102_150405"))
	path := filepath.Join(draftsDir, filename)
	if err := storage.WriteText(path, content); err != nil {
		return "", err
	}
	return path, nil
}
