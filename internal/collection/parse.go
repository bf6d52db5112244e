package collection

import (
	"regexp"
	"strings"

	"github.com/wenhao/disclosure-assistant/internal/types"
)

// parsePatterns maps labeled lines in free text to questionnaire fields.
// Only the first match per field counts; unlabeled fields stay absent.
var parsePatterns = []struct {
	fieldID string
	pattern *regexp.Regexp
}{
	{FieldTechnicalField, regexp.MustCompile(`技术领域[：:]\s*(.*)`)},
	{FieldBackground, regexp.MustCompile(`背景技术[：:]\s*(.*)`)},
	{FieldProblem, regexp.MustCompile(`技术问题[：:]\s*(.*)`)},
	{FieldSolution, regexp.MustCompile(`技术方案[：:]\s*(.*)`)},
	{FieldEffects, regexp.MustCompile(`有益效果[：:]\s*(.*)`)},
}

// ParseFreeText extracts structured answers from labeled lines in operator
// input. This is deliberately plain pattern matching, not language
// understanding; anything without a recognized label is ignored.
func ParseFreeText(input string) types.AnswerRecord {
	record := types.AnswerRecord{}
	for _, entry := range parsePatterns {
		if match := entry.pattern.FindStringSubmatch(input); match != nil {
			record[entry.fieldID] = strings.TrimSpace(match[1])
		}
	}
	return record
}
