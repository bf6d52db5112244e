package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/wenhao/disclosure-assistant/internal/schemas"
	"github.com/wenhao/disclosure-assistant/internal/types"
)

// Artifact filenames shared across stages
const (
	SpecificationFile = "specification.json"
	SummaryFile       = "specification_summary.md"
	CollectedInfoFile = "collected_information.json"
	CollectionReport  = "collection_report.md"
	IndexFile         = "document_index.json"
)

// LoadSpecification reads the persisted specification artifact. Every failure
// mode degrades to the zero value plus a warning; synthesis falls back to the
// default section skeleton in that case. A parsed document that merely fails
// schema validation is still used.
func LoadSpecification(path string) (types.Specification, []types.Warning) {
	var spec types.Specification

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return spec, []types.Warning{{
				Code:    types.WarnMissingInput,
				Path:    path,
				Message: "specification not found, using default document structure",
			}}
		}
		return spec, []types.Warning{{
			Code:    types.WarnUnreadable,
			Path:    path,
			Message: fmt.Sprintf("failed to read specification: %v", err),
		}}
	}

	if err := json.Unmarshal(data, &spec); err != nil {
		return types.Specification{}, []types.Warning{{
			Code:    types.WarnInvalidJSON,
			Path:    path,
			Message: fmt.Sprintf("specification did not parse, using default document structure: %v", err),
		}}
	}

	if err := schemas.Validate(schemas.SpecificationSchema, data); err != nil {
		return spec, []types.Warning{{
			Code:    types.WarnSchemaMismatch,
			Path:    path,
			Message: fmt.Sprintf("specification does not conform to schema: %v", err),
		}}
	}

	return spec, nil
}

// LoadAnswers reads the collected answer record. Missing or malformed files
// degrade to an empty record plus a warning; callers treat an empty record as
// "collection has not run".
func LoadAnswers(path string) (types.AnswerRecord, []types.Warning) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.AnswerRecord{}, []types.Warning{{
				Code:    types.WarnMissingInput,
				Path:    path,
				Message: "collected information not found",
			}}
		}
		return types.AnswerRecord{}, []types.Warning{{
			Code:    types.WarnUnreadable,
			Path:    path,
			Message: fmt.Sprintf("failed to read collected information: %v", err),
		}}
	}

	var record types.AnswerRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return types.AnswerRecord{}, []types.Warning{{
			Code:    types.WarnInvalidJSON,
			Path:    path,
			Message: fmt.Sprintf("collected information did not parse: %v", err),
		}}
	}

	if err := schemas.Validate(schemas.CollectedInfoSchema, data); err != nil {
		return record, []types.Warning{{
			Code:    types.WarnSchemaMismatch,
			Path:    path,
			Message: fmt.Sprintf("collected information does not conform to schema: %v", err),
		}}
	}

	return record, nil
}

// LoadIndex reads the document index. An absent index is the normal initial
// state and returns empty without a warning; a malformed index resets to empty
// with a warning so the subsequent append rebuilds the file.
func LoadIndex(path string) ([]types.IndexEntry, []types.Warning) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []types.IndexEntry{}, nil
		}
		return []types.IndexEntry{}, []types.Warning{{
			Code:    types.WarnIndexReset,
			Path:    path,
			Message: fmt.Sprintf("failed to read document index, rebuilding from empty: %v", err),
		}}
	}

	var entries []types.IndexEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return []types.IndexEntry{}, []types.Warning{{
			Code:    types.WarnIndexReset,
			Path:    path,
			Message: fmt.Sprintf("document index was malformed, rebuilding from empty: %v", err),
		}}
	}

	if err := schemas.Validate(schemas.DocumentIndexSchema, data); err != nil {
		return entries, []types.Warning{{
			Code:    types.WarnSchemaMismatch,
			Path:    path,
			Message: fmt.Sprintf("document index does not conform to schema: %v", err),
		}}
	}

	return entries, nil
}
