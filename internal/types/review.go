// Package types provides type definitions for structured data used throughout the disclosure-assistant system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ReviewIssue represents a single finding from the content or formatting checks
type ReviewIssue struct {
	Type        string `json:"type"`
	Description string `json:"description"`

	// Optional detail fields, set depending on issue type
	Count        *int `json:"count,omitempty"`         // placeholder_content: total marker occurrences
	SectionIndex *int `json:"section_index,omitempty"` // short_section: zero-based chunk position
	WordCount    *int `json:"word_count,omitempty"`    // short_section: CJK character count
}

// ReviewResult represents the full outcome of reviewing one draft
type ReviewResult struct {
	DocumentName    string        `json:"document_name"`
	ReviewTime      string        `json:"review_time"`
	PresentSections []string      `json:"present_sections"`
	MissingSections []string      `json:"missing_sections"`
	ContentIssues   []ReviewIssue `json:"content_issues"`
	FormatIssues    []string      `json:"format_issues"`
	TotalChecks     int           `json:"total_checks"`
	PassedChecks    int           `json:"passed_checks"`
	OverallScore    float64       `json:"overall_score"`
}

// Passed reports whether the draft cleared every check
func (r *ReviewResult) Passed() bool {
	return r.PassedChecks == r.TotalChecks
}
