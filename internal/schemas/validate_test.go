package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Specification_Valid(t *testing.T) {
	document := []byte(`{
		"writing_requirements": {
			"structure": ["技术领域、背景技术"],
			"formatting": ["字体：宋体"],
			"content": [],
			"terminology": [],
			"sections": ["技术领域"]
		},
		"sample_analysis": {
			"title": "示例技术交底书",
			"sections": ["技术领域", "背景技术"],
			"subsections": [],
			"formatting": {"tables": 1, "lists": 4, "code_blocks": 0}
		},
		"comprehensive_specs": {
			"document_structure": [
				{"section": "技术领域", "required": true, "description": "标准章节：技术领域"}
			],
			"required_sections": ["技术领域", "背景技术"],
			"formatting_rules": ["字体：宋体"],
			"content_guidelines": []
		}
	}`)

	err := Validate(SpecificationSchema, document)
	assert.NoError(t, err)
}

func TestValidate_Specification_MissingBlock(t *testing.T) {
	document := []byte(`{"writing_requirements": {"structure": [], "formatting": [], "content": [], "terminology": [], "sections": []}}`)

	err := Validate(SpecificationSchema, document)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidate_Specification_WrongType(t *testing.T) {
	document := []byte(`{
		"writing_requirements": {"structure": "not-an-array", "formatting": [], "content": [], "terminology": [], "sections": []},
		"sample_analysis": {"title": "", "sections": [], "formatting": {"tables": 0, "lists": 0, "code_blocks": 0}},
		"comprehensive_specs": {"document_structure": [], "required_sections": [], "formatting_rules": [], "content_guidelines": []}
	}`)

	err := Validate(SpecificationSchema, document)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidate_CollectedInfo_Valid(t *testing.T) {
	document := []byte(`{
		"technical_field": "人工智能自然语言处理领域",
		"technical_solution": "采用分层注意力机制和上下文压缩技术"
	}`)

	err := Validate(CollectedInfoSchema, document)
	assert.NoError(t, err)
}

func TestValidate_CollectedInfo_NonStringValue(t *testing.T) {
	document := []byte(`{"technical_field": 42}`)

	err := Validate(CollectedInfoSchema, document)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidate_DocumentIndex_Valid(t *testing.T) {
	document := []byte(`[
		{
			"filename": "技术交底书_人工智能_20260825_v1.0.md",
			"technical_field": "人工智能",
			"save_date": "2026-08-25 10:30:00",
			"file_path": "outputs/final_documents/2026/08/技术交底书_人工智能_20260825_v1.0.md",
			"backup_path": "outputs/final_documents/backups/2026/08/技术交底书_人工智能_20260825_v1.0.md",
			"version": "1.0"
		}
	]`)

	err := Validate(DocumentIndexSchema, document)
	assert.NoError(t, err)
}

func TestValidate_DocumentIndex_MissingRequired(t *testing.T) {
	document := []byte(`[{"filename": "only-name.md"}]`)

	err := Validate(DocumentIndexSchema, document)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("no_such.schema.json", []byte(`{}`))
	require.Error(t, err)

	loadErr, ok := err.(*SchemaLoadError)
	require.True(t, ok, "error should be SchemaLoadError type")
	assert.Equal(t, "no_such.schema.json", loadErr.Name)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "sample_analysis", Message: "is required"},
			{Field: "comprehensive_specs.required_sections", Message: "Invalid type"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "sample_analysis")
	assert.Contains(t, errorMsg, "comprehensive_specs.required_sections")
}
