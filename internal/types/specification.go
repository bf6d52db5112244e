// Package types provides type definitions for structured data used throughout the disclosure-assistant system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Specification represents the full analysis artifact persisted as specification.json.
// It combines requirements extracted from the writing guidelines with the structural
// analysis of the sample document.
type Specification struct {
	WritingRequirements WritingRequirements `json:"writing_requirements"`
	SampleAnalysis      SampleAnalysis      `json:"sample_analysis"`
	ComprehensiveSpecs  ComprehensiveSpecs  `json:"comprehensive_specs"`
}

// WritingRequirements represents requirement sentences extracted from the guidelines,
// grouped by concern. Duplicate entries are preserved in extraction order.
type WritingRequirements struct {
	Structure   []string `json:"structure"`
	Formatting  []string `json:"formatting"`
	Content     []string `json:"content"`
	Terminology []string `json:"terminology"`
	Sections    []string `json:"sections"`
}

// SampleAnalysis represents the structural summary of the sample disclosure document
type SampleAnalysis struct {
	Title       string           `json:"title"`
	Sections    []string         `json:"sections"`
	Subsections []string         `json:"subsections"`
	Formatting  SampleFormatting `json:"formatting"`
}

// SampleFormatting represents element counts observed in the sample document
type SampleFormatting struct {
	Tables     int `json:"tables"`
	Lists      int `json:"lists"`
	CodeBlocks int `json:"code_blocks"`
}

// ComprehensiveSpecs represents the merged, authoritative rules derived from
// guidelines and sample. Downstream stages read only this block.
type ComprehensiveSpecs struct {
	DocumentStructure []SectionTemplate `json:"document_structure"`
	RequiredSections  []string          `json:"required_sections"`
	FormattingRules   []string          `json:"formatting_rules"`
	ContentGuidelines []string          `json:"content_guidelines"`
}

// SectionTemplate represents one entry of the document structure template
type SectionTemplate struct {
	Section     string `json:"section"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

// RuleSet represents the rules a draft is synthesized and reviewed against.
// It is an immutable view over a Specification; duplicates and order are preserved.
type RuleSet struct {
	RequiredSections    []string
	FormattingRules     []string
	ContentRequirements []string
}

// DefaultSections returns the built-in seven-section document skeleton used when
// no specification is available or it names no sections.
func DefaultSections() []string {
	return []string{
		"技术领域",
		"背景技术",
		"技术问题",
		"技术方案",
		"有益效果",
		"附图说明",
		"具体实施方式",
	}
}

// RuleSet derives the rule set downstream stages operate on.
func (s *Specification) RuleSet() RuleSet {
	return RuleSet{
		RequiredSections:    s.ComprehensiveSpecs.RequiredSections,
		FormattingRules:     s.ComprehensiveSpecs.FormattingRules,
		ContentRequirements: s.WritingRequirements.Content,
	}
}

// WithDefaultSections returns a copy of the rule set with the default section
// skeleton substituted when no sections were extracted.
func (r RuleSet) WithDefaultSections() RuleSet {
	if len(r.RequiredSections) == 0 {
		r.RequiredSections = DefaultSections()
	}
	return r
}
