// Package types provides type definitions for structured data used throughout the disclosure-assistant system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// FieldSpec represents one entry of the fixed information questionnaire
type FieldSpec struct {
	ID       string // stable field identifier, also the JSON key in the answer record
	Label    string // Chinese display label used in documents and reports
	Prompt   string // question shown to the operator
	Required bool
	Rule     string // validator tag applied to the trimmed value; empty means always valid
}

// AnswerRecord represents collected questionnaire answers keyed by field ID.
// Partial records are legal; missing keys mean the question was never answered.
type AnswerRecord map[string]string

// Has reports whether the field was answered with a non-empty value
func (a AnswerRecord) Has(fieldID string) bool {
	return a[fieldID] != ""
}

// ValidationResult represents the outcome of checking an answer record against
// the questionnaire. A field label appears in at most one of the two lists.
type ValidationResult struct {
	Valid            bool     `json:"valid"`
	MissingFields    []string `json:"missing_fields"`
	IncompleteFields []string `json:"incomplete_fields"`
	Suggestions      []string `json:"suggestions"`
}
