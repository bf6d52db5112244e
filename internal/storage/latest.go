package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoMatch indicates that a glob pattern matched no files
var ErrNoMatch = errors.New("no files match pattern")

// NewestMatch returns the path matching the glob pattern with the most recent
// modification time. Pattern is interpreted relative to dir. Concurrent writers
// can race this selection; single-operator use is assumed.
func NewestMatch(dir, pattern string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", fmt.Errorf("bad glob pattern %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %s in %s", ErrNoMatch, pattern, dir)
	}

	newest := ""
	var newestMod int64
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().UnixNano() > newestMod {
			newest = match
			newestMod = info.ModTime().UnixNano()
		}
	}
	if newest == "" {
		return "", fmt.Errorf("%w: %s in %s", ErrNoMatch, pattern, dir)
	}

	return newest, nil
}
