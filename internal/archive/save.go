package archive

import (
	"path/filepath"
	"time"

	"github.com/wenhao/disclosure-assistant/internal/storage"
	"github.com/wenhao/disclosure-assistant/internal/types"
)

// SaveFinal writes the finalized document under <base>/<year>/<month>/ and an
// identical backup under <base>/backups/<year>/<month>/, creating both trees
// on demand.
func SaveFinal(content, filename, baseDir string, now time.Time) (outputPath, backupPath string, err error) {
	year := now.Format("2006")
	month := now.Format("01")

	outputPath = filepath.Join(baseDir, year, month, filename)
	if err = storage.WriteText(outputPath, content); err != nil {
		return "", "", err
	}

	backupPath = filepath.Join(baseDir, "backups", year, month, filename)
	if err = storage.CopyFile(outputPath, backupPath); err != nil {
		return "", "", err
	}

	return outputPath, backupPath, nil
}

// UpdateIndex appends an entry to the document index, creating the index file
// on first use. A malformed existing index resets to empty with a warning
// instead of failing the save.
func UpdateIndex(entry types.IndexEntry, baseDir string) (string, []types.Warning, error) {
	indexPath := filepath.Join(baseDir, storage.IndexFile)
	index, warnings := storage.LoadIndex(indexPath)
	index = append(index, entry)
	if err := storage.WriteJSON(indexPath, index); err != nil {
		return "", warnings, err
	}
	return indexPath, warnings, nil
}
