// Package analysis extracts writing requirements from the guideline and sample
// reference documents and derives the specification artifact downstream stages
// consume. Extraction is fixed-pattern matching over the reference text; the
// pattern lists are package data so the recognized label set stays auditable.
package analysis

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/wenhao/disclosure-assistant/internal/storage"
	"github.com/wenhao/disclosure-assistant/internal/types"
)

// Reference input filenames looked up in the references directory
const (
	GuidelinesFile = "writing_guidelines.md"
	SampleFile     = "sample_disclosure.md"
)

// ErrNoSources indicates neither reference document yielded any content
var ErrNoSources = errors.New("no guideline or sample content available for analysis")

// Labeled-clause patterns recognized in the guidelines. Each captures the text
// after the label up to the end of the line.
var (
	structurePatterns = []*regexp.Regexp{
		regexp.MustCompile(`文档结构[：:]\s*(.*)`),
		regexp.MustCompile(`应包括[：:]\s*(.*)`),
		regexp.MustCompile(`必须包含[：:]\s*(.*)`),
		regexp.MustCompile(`章节[：:]\s*(.*)`),
	}
	formattingPatterns = []*regexp.Regexp{
		regexp.MustCompile(`格式要求[：:]\s*(.*)`),
		regexp.MustCompile(`字体[：:]\s*(.*)`),
		regexp.MustCompile(`字号[：:]\s*(.*)`),
		regexp.MustCompile(`间距[：:]\s*(.*)`),
		regexp.MustCompile(`标题[：:]\s*(.*)`),
	}

	// numbered section lines like 一、技术领域
	sectionPattern = regexp.MustCompile(`[一二三四五六七八九十]、\s*(.*?)[\n\r]`)

	titlePattern   = regexp.MustCompile(`(?m)^#\s+(.*)$`)
	headingPattern = regexp.MustCompile(`(?m)^#{2,3}\s+(.*)$`)
	tablePattern   = regexp.MustCompile(`\|.*\|`)
	listPattern    = regexp.MustCompile(`(?m)^\s*[-*]\s+`)
)

// ExtractRequirements pulls requirement clauses out of the guidelines text.
// Duplicate clauses are preserved in pattern order, then match order.
func ExtractRequirements(content string) types.WritingRequirements {
	req := types.WritingRequirements{
		Structure:   []string{},
		Formatting:  []string{},
		Content:     []string{},
		Terminology: []string{},
		Sections:    []string{},
	}

	for _, pattern := range structurePatterns {
		for _, match := range pattern.FindAllStringSubmatch(content, -1) {
			req.Structure = append(req.Structure, match[1])
		}
	}

	for _, pattern := range formattingPatterns {
		for _, match := range pattern.FindAllStringSubmatch(content, -1) {
			req.Formatting = append(req.Formatting, match[1])
		}
	}

	for _, match := range sectionPattern.FindAllStringSubmatch(content, -1) {
		req.Sections = append(req.Sections, match[1])
	}

	return req
}

// AnalyzeSample summarizes the structure of the sample disclosure document
func AnalyzeSample(content string) types.SampleAnalysis {
	analysis := types.SampleAnalysis{
		Sections:    []string{},
		Subsections: []string{},
	}

	if match := titlePattern.FindStringSubmatch(content); match != nil {
		analysis.Title = match[1]
	}

	for _, match := range headingPattern.FindAllStringSubmatch(content, -1) {
		analysis.Sections = append(analysis.Sections, match[1])
	}

	analysis.Formatting.Tables = len(tablePattern.FindAllString(content, -1))
	analysis.Formatting.Lists = len(listPattern.FindAllString(content, -1))
	analysis.Formatting.CodeBlocks = strings.Count(content, "```")

	return analysis
}

// BuildSpecification merges guideline requirements and sample analysis into
// the specification artifact. Guideline sections win over sample headings for
// the required-section list; the structure template always reflects the sample.
func BuildSpecification(guidelines, sample string) types.Specification {
	requirements := ExtractRequirements(guidelines)
	sampleAnalysis := AnalyzeSample(sample)

	spec := types.Specification{
		WritingRequirements: requirements,
		SampleAnalysis:      sampleAnalysis,
		ComprehensiveSpecs: types.ComprehensiveSpecs{
			DocumentStructure: []types.SectionTemplate{},
			RequiredSections:  []string{},
			FormattingRules:   []string{},
			ContentGuidelines: []string{},
		},
	}

	if len(requirements.Sections) > 0 {
		spec.ComprehensiveSpecs.RequiredSections = requirements.Sections
	} else if len(sampleAnalysis.Sections) > 0 {
		spec.ComprehensiveSpecs.RequiredSections = sampleAnalysis.Sections
	}

	if len(requirements.Formatting) > 0 {
		spec.ComprehensiveSpecs.FormattingRules = requirements.Formatting
	}

	if len(sampleAnalysis.Sections) > 0 {
		for _, section := range sampleAnalysis.Sections {
			spec.ComprehensiveSpecs.DocumentStructure = append(spec.ComprehensiveSpecs.DocumentStructure, types.SectionTemplate{
				Section:     section,
				Required:    true,
				Description: "标准章节：" + section,
			})
		}
	}

	return spec
}

// Analyze reads both reference documents and builds the specification.
// A single missing or unreadable source degrades to a warning; only the
// absence of both is an error.
func Analyze(referencesDir string) (types.Specification, []types.Warning, error) {
	var warnings []types.Warning

	guidelines, guidelineWarnings := readReference(filepath.Join(referencesDir, GuidelinesFile))
	warnings = append(warnings, guidelineWarnings...)

	sample, sampleWarnings := readReference(filepath.Join(referencesDir, SampleFile))
	warnings = append(warnings, sampleWarnings...)

	if guidelines == "" && sample == "" {
		return types.Specification{}, warnings, ErrNoSources
	}

	return BuildSpecification(guidelines, sample), warnings, nil
}

func readReference(path string) (string, []types.Warning) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", []types.Warning{{
			Code:    types.WarnMissingInput,
			Path:    path,
			Message: "reference file not found, continuing without it",
		}}
	}
	return storage.ReadText(path)
}
