package collection

import (
	"strings"

	"github.com/wenhao/disclosure-assistant/internal/types"
)

// Validate checks an answer record against the questionnaire. Required fields
// that are absent or empty are missing; present values that fail their length
// rule are incomplete. A field lands in at most one of the two lists.
// Optional fields never affect the result.
func (q *Questionnaire) Validate(record types.AnswerRecord) types.ValidationResult {
	result := types.ValidationResult{
		Valid:            true,
		MissingFields:    []string{},
		IncompleteFields: []string{},
		Suggestions:      []string{},
	}

	for _, field := range q.fields {
		if !field.Required {
			continue
		}

		value, ok := record[field.ID]
		if !ok || value == "" {
			result.Valid = false
			result.MissingFields = append(result.MissingFields, field.Label)
			continue
		}

		if field.Rule == "" {
			continue
		}
		if err := q.validate.Var(strings.TrimSpace(value), field.Rule); err != nil {
			result.Valid = false
			result.IncompleteFields = append(result.IncompleteFields, field.Label)
		}
	}

	if len(result.MissingFields) > 0 {
		result.Suggestions = append(result.Suggestions,
			"请补充以下必需信息："+strings.Join(result.MissingFields, ", "))
	}
	if len(result.IncompleteFields) > 0 {
		result.Suggestions = append(result.Suggestions,
			"以下信息需要更详细："+strings.Join(result.IncompleteFields, ", "))
	}

	return result
}
