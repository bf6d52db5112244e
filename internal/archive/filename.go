package archive

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	techFieldPattern  = regexp.MustCompile(`技术领域[：:]\s*(.*)`)
	unsafeCharPattern = regexp.MustCompile(`[\\/*?:"<>|]`)
)

// maxFieldRunes caps the technical-field portion of the filename.
const maxFieldRunes = 30

// TechnicalField extracts the technical-field text from the first labeled line
// in the document. Draft metadata wraps the label in bold markers, which this
// pattern does not reach, so drafts usually resolve to the fallback.
func TechnicalField(content string) string {
	if m := techFieldPattern.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return "未指定技术领域"
}

// Filename builds the final document filename from the technical field:
// filesystem-unsafe characters stripped, spaces and commas underscored, the
// field truncated to thirty characters, then dated and version-tagged.
func Filename(techField string, now time.Time) string {
	clean := unsafeCharPattern.ReplaceAllString(techField, "")
	clean = strings.NewReplacer(" ", "_", "，", "_", ",", "_").Replace(clean)
	if runes := []rune(clean); len(runes) > maxFieldRunes {
		clean = string(runes[:maxFieldRunes])
	}
	return fmt.Sprintf("技术交底书_%s_%s_v%s.md", clean, now.Format("20060102"), Version)
}
