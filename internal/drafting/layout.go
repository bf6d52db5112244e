// Package drafting synthesizes the disclosure draft from the collected answer
// record and the extracted rule set. The draft is always fully formed: every
// section renders either collected content or a placeholder, never nothing.
package drafting

import (
	"strings"

	"github.com/wenhao/disclosure-assistant/internal/collection"
	"github.com/wenhao/disclosure-assistant/internal/types"
)

// AnnotationRule maps a formatting requirement onto the comment annotation
// recorded in the draft. A rule string must contain the keyword and at least
// one variant to trigger.
type AnnotationRule struct {
	Keyword    string
	Variants   []string
	Annotation string
}

// Layout is the immutable synthesis configuration: section-to-field mapping,
// per-section placeholder content, and the annotation rules. Construct it once
// with DefaultLayout and pass it to each synthesis call; it is never mutated.
type Layout struct {
	sectionFields   map[string]string
	defaultContent  map[string]string
	annotationRules []AnnotationRule
}

// DefaultLayout builds the standard disclosure layout
func DefaultLayout() *Layout {
	return &Layout{
		sectionFields: map[string]string{
			"技术领域":   collection.FieldTechnicalField,
			"背景技术":   collection.FieldBackground,
			"技术问题":   collection.FieldProblem,
			"技术方案":   collection.FieldSolution,
			"有益效果":   collection.FieldEffects,
			"附图说明":   collection.FieldDrawings,
			"具体实施方式": collection.FieldImplementationCases,
			"实施例描述":  collection.FieldEmbodiment,
		},
		defaultContent: map[string]string{
			"技术领域":   "待补充技术领域描述",
			"背景技术":   "待补充背景技术描述",
			"技术问题":   "待补充技术问题描述",
			"技术方案":   "待补充技术方案描述",
			"有益效果":   "待补充有益效果描述",
			"附图说明":   "无附图",
			"具体实施方式": "待补充具体实施方式",
			"实施例描述":  "待补充实施例描述",
		},
		annotationRules: []AnnotationRule{
			{Keyword: "字体", Variants: []string{"宋体"}, Annotation: "<!-- 字体: 宋体 -->"},
			{Keyword: "字号", Variants: []string{"小四", "12pt"}, Annotation: "<!-- 字号: 小四 -->"},
			{Keyword: "间距", Variants: []string{"1.5倍", "1.5"}, Annotation: "<!-- 行距: 1.5倍 -->"},
		},
	}
}

// SectionContent resolves what a section renders: the trimmed collected answer
// when present, otherwise the section's placeholder. Unknown section names get
// the generic placeholder.
func (l *Layout) SectionContent(sectionName string, record types.AnswerRecord) string {
	if fieldID, ok := l.sectionFields[sectionName]; ok {
		if value, present := record[fieldID]; present {
			if content := strings.TrimSpace(value); content != "" {
				return content
			}
		}
	}
	if fallback, ok := l.defaultContent[sectionName]; ok {
		return fallback
	}
	return "待补充内容"
}

// applyAnnotations inserts formatting annotations under the fallback title.
// Each matched rule re-replaces the bare title line, so later matches land
// closest to the heading and duplicate rules produce duplicate annotations.
// Drafts with a generated title have no anchor and stay unannotated.
func (l *Layout) applyAnnotations(document string, formattingRules []string) string {
	for _, rule := range formattingRules {
		for _, annotation := range l.annotationRules {
			if !strings.Contains(rule, annotation.Keyword) {
				continue
			}
			matched := false
			for _, variant := range annotation.Variants {
				if strings.Contains(rule, variant) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
			document = strings.ReplaceAll(document, "# 技术交底书", "# 技术交底书\n"+annotation.Annotation)
			break
		}
	}
	return document
}
