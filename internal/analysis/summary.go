package analysis

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wenhao/disclosure-assistant/internal/storage"
	"github.com/wenhao/disclosure-assistant/internal/types"
)

// Summary renders the human-readable digest saved next to the JSON artifact
func Summary(spec types.Specification) string {
	var sb strings.Builder

	sb.WriteString("# 技术交底书撰写规范摘要\n\n")

	sb.WriteString("## 文档结构要求\n")
	for _, item := range spec.ComprehensiveSpecs.DocumentStructure {
		requirement := "可选"
		if item.Required {
			requirement = "必需"
		}
		sb.WriteString(fmt.Sprintf("- %s: %s\n", item.Section, requirement))
	}

	sb.WriteString("\n## 格式要求\n")
	for _, rule := range spec.ComprehensiveSpecs.FormattingRules {
		sb.WriteString(fmt.Sprintf("- %s\n", rule))
	}

	sb.WriteString("\n## 内容要求\n")
	for _, req := range spec.WritingRequirements.Content {
		sb.WriteString(fmt.Sprintf("- %s\n", req))
	}

	sb.WriteString("\n## 样本分析\n")
	sb.WriteString(fmt.Sprintf("- 标题: %s\n", spec.SampleAnalysis.Title))
	sb.WriteString(fmt.Sprintf("- 章节数量: %d\n", len(spec.SampleAnalysis.Sections)))
	sb.WriteString(fmt.Sprintf("- 表格数量: %d\n", spec.SampleAnalysis.Formatting.Tables))
	sb.WriteString(fmt.Sprintf("- 列表数量: %d\n", spec.SampleAnalysis.Formatting.Lists))

	return sb.String()
}

// SaveSpecification persists the JSON artifact and its markdown summary into
// the references directory. Returns both written paths.
func SaveSpecification(spec types.Specification, referencesDir string) (string, string, error) {
	jsonPath := filepath.Join(referencesDir, storage.SpecificationFile)
	if err := storage.WriteJSON(jsonPath, spec); err != nil {
		return "", "", err
	}

	mdPath := filepath.Join(referencesDir, storage.SummaryFile)
	if err := storage.WriteText(mdPath, Summary(spec)); err != nil {
		return "", "", err
	}

	return jsonPath, mdPath, nil
}
