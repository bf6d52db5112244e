// Package collection defines the information questionnaire for disclosure
// writeups and validates collected answers against it. The questionnaire is
// an immutable value constructed once at startup and passed to each caller;
// five required fields carry length thresholds, three optional ones always
// pass.
package collection

import (
	"github.com/go-playground/validator/v10"

	"github.com/wenhao/disclosure-assistant/internal/types"
)

// Questionnaire field IDs, also the keys of the persisted answer record
const (
	FieldTechnicalField      = "technical_field"
	FieldBackground          = "background_technology"
	FieldProblem             = "technical_problem"
	FieldSolution            = "technical_solution"
	FieldEffects             = "beneficial_effects"
	FieldEmbodiment          = "embodiment_description"
	FieldDrawings            = "drawings_description"
	FieldImplementationCases = "implementation_examples"
)

// Questionnaire is the fixed field table plus the validator that enforces it.
// Construct it once with NewQuestionnaire and share it; it is never mutated.
type Questionnaire struct {
	fields   []types.FieldSpec
	validate *validator.Validate
}

// NewQuestionnaire builds the questionnaire. Length rules count runes of the
// trimmed value and are strict inequalities: a ten-character technical field
// is still incomplete.
func NewQuestionnaire() *Questionnaire {
	return &Questionnaire{
		validate: validator.New(),
		fields: []types.FieldSpec{
			{
				ID:       FieldTechnicalField,
				Label:    "技术领域",
				Prompt:   "请描述本专利所属的技术领域",
				Required: true,
				Rule:     "gt=10",
			},
			{
				ID:       FieldBackground,
				Label:    "背景技术",
				Prompt:   "请描述现有技术的现状、存在的问题或不足",
				Required: true,
				Rule:     "gt=20",
			},
			{
				ID:       FieldProblem,
				Label:    "技术问题",
				Prompt:   "本专利要解决的技术问题是什么？",
				Required: true,
				Rule:     "gt=10",
			},
			{
				ID:       FieldSolution,
				Label:    "技术方案",
				Prompt:   "详细描述本专利的技术方案，包括核心创新点",
				Required: true,
				Rule:     "gt=50",
			},
			{
				ID:       FieldEffects,
				Label:    "有益效果",
				Prompt:   "本专利带来的有益效果或优势是什么？",
				Required: true,
				Rule:     "gt=20",
			},
			{
				ID:       FieldEmbodiment,
				Label:    "实施例描述",
				Prompt:   "请提供具体的实施例描述（可选）",
				Required: false,
			},
			{
				ID:       FieldDrawings,
				Label:    "附图说明",
				Prompt:   "请描述附图内容（如有）",
				Required: false,
			},
			{
				ID:       FieldImplementationCases,
				Label:    "具体实施方式",
				Prompt:   "请描述具体实施方式（可选）",
				Required: false,
			},
		},
	}
}

// Fields returns a copy of the ordered field table
func (q *Questionnaire) Fields() []types.FieldSpec {
	fields := make([]types.FieldSpec, len(q.fields))
	copy(fields, q.fields)
	return fields
}
