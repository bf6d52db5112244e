package collection

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wenhao/disclosure-assistant/internal/storage"
	"github.com/wenhao/disclosure-assistant/internal/types"
)

// Guide renders the operator-facing collection guide: one prompt per
// questionnaire field plus the validation standards.
func (q *Questionnaire) Guide() string {
	var sb strings.Builder

	sb.WriteString("# 技术交底书信息收集指南\n\n")
	sb.WriteString("请根据以下提示提供相关信息：\n\n")

	for _, field := range q.fields {
		requiredMark := "（可选）"
		if field.Required {
			requiredMark = "（必需）"
		}
		sb.WriteString(fmt.Sprintf("## %s%s\n", field.Label, requiredMark))
		sb.WriteString(field.Prompt + "\n\n")
	}

	sb.WriteString("## 信息验证标准\n")
	sb.WriteString("1. 技术领域：至少10个字符，明确技术范畴\n")
	sb.WriteString("2. 背景技术：至少20个字符，描述现有技术问题\n")
	sb.WriteString("3. 技术问题：至少10个字符，明确要解决的问题\n")
	sb.WriteString("4. 技术方案：至少50个字符，详细描述创新点\n")
	sb.WriteString("5. 有益效果：至少20个字符，说明技术优势\n\n")

	sb.WriteString("请确保信息准确、完整，这将直接影响技术交底书的质量。")

	return sb.String()
}

// Report renders the collection status report for an answer record and its
// validation result.
func (q *Questionnaire) Report(record types.AnswerRecord, result types.ValidationResult) string {
	var sb strings.Builder

	sb.WriteString("# 信息收集状态报告\n\n")

	sb.WriteString("## 收集状态\n")
	for _, field := range q.fields {
		status := "❌ 未收集"
		if record.Has(field.ID) {
			status = "✅ 已收集"
		}
		requiredMark := "（可选）"
		if field.Required {
			requiredMark = "（必需）"
		}
		sb.WriteString(fmt.Sprintf("- %s%s: %s\n", field.Label, requiredMark, status))
	}

	sb.WriteString("\n## 验证结果\n")
	if result.Valid {
		sb.WriteString("✅ 信息收集完整，可以生成技术交底书草稿\n")
	} else {
		sb.WriteString("⚠️ 信息收集不完整，需要补充以下内容：\n")
		if len(result.MissingFields) > 0 {
			sb.WriteString(fmt.Sprintf("- 缺失字段: %s\n", strings.Join(result.MissingFields, ", ")))
		}
		if len(result.IncompleteFields) > 0 {
			sb.WriteString(fmt.Sprintf("- 不完整字段: %s\n", strings.Join(result.IncompleteFields, ", ")))
		}
	}

	sb.WriteString("\n## 建议\n")
	if len(result.Suggestions) > 0 {
		for _, suggestion := range result.Suggestions {
			sb.WriteString(fmt.Sprintf("- %s\n", suggestion))
		}
	} else {
		sb.WriteString("- 所有必需信息已收集完整，可以继续下一步\n")
	}

	return sb.String()
}

// SaveCollected persists the answer record as JSON in the references directory
func SaveCollected(record types.AnswerRecord, referencesDir string) (string, error) {
	path := filepath.Join(referencesDir, storage.CollectedInfoFile)
	if err := storage.WriteJSON(path, record); err != nil {
		return "", err
	}
	return path, nil
}

// SaveReport persists the collection status report in the references directory
func SaveReport(report string, referencesDir string) (string, error) {
	path := filepath.Join(referencesDir, storage.CollectionReport)
	if err := storage.WriteText(path, report); err != nil {
		return "", err
	}
	return path, nil
}
