package review

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wenhao/disclosure-assistant/internal/storage"
	"github.com/wenhao/disclosure-assistant/internal/types"
)

// Report renders the review result as the Markdown audit report.
func Report(result types.ReviewResult) string {
	var sb strings.Builder

	name := result.DocumentName
	if name == "" {
		name = "未知文件"
	}
	sb.WriteString("# 技术交底书审核报告\n\n")
	sb.WriteString("**审核文件**: " + name + "\n")
	sb.WriteString("**审核时间**: " + result.ReviewTime + "\n")
	fmt.Fprintf(&sb, "**总体评分**: %.1f%% (%d/%d)\n\n", result.OverallScore, result.PassedChecks, result.TotalChecks)

	totalSections := len(result.PresentSections) + len(result.MissingSections)
	sb.WriteString("## 1. 章节完整性检查\n")
	if len(result.PresentSections) > 0 {
		fmt.Fprintf(&sb, "✅ 已包含章节 (%d/%d):\n", len(result.PresentSections), totalSections)
		for _, section := range result.PresentSections {
			sb.WriteString("  - " + section + "\n")
		}
	} else {
		sb.WriteString("❌ 未识别到任何章节\n")
	}
	if len(result.MissingSections) > 0 {
		fmt.Fprintf(&sb, "\n❌ 缺失章节 (%d):\n", len(result.MissingSections))
		for _, section := range result.MissingSections {
			sb.WriteString("  - " + section + "\n")
		}
	} else {
		sb.WriteString("\n✅ 所有必需章节完整\n")
	}

	sb.WriteString("\n## 2. 内容质量检查\n")
	if len(result.ContentIssues) > 0 {
		fmt.Fprintf(&sb, "⚠️ 发现 %d 个内容问题:\n", len(result.ContentIssues))
		for _, issue := range result.ContentIssues {
			sb.WriteString("  - " + issue.Description + "\n")
		}
	} else {
		sb.WriteString("✅ 内容质量良好\n")
	}

	sb.WriteString("\n## 3. 格式规范检查\n")
	if len(result.FormatIssues) > 0 {
		fmt.Fprintf(&sb, "⚠️ 发现 %d 个格式问题:\n", len(result.FormatIssues))
		for _, violation := range result.FormatIssues {
			sb.WriteString("  - " + violation + "\n")
		}
	} else {
		sb.WriteString("✅ 格式规范符合要求\n")
	}

	sb.WriteString("\n## 4. 改进建议\n")
	if len(result.MissingSections) > 0 {
		sb.WriteString("1. 补充缺失章节: " + strings.Join(result.MissingSections, ", ") + "\n")
	}
	for _, issue := range result.ContentIssues {
		if issue.Type == IssuePlaceholder {
			sb.WriteString("2. 替换所有'待补充'占位符为具体内容\n")
			break
		}
	}
	if len(result.FormatIssues) > 0 {
		sb.WriteString("3. 根据格式要求调整文档格式\n")
	}
	if len(result.MissingSections) == 0 && len(result.ContentIssues) == 0 && len(result.FormatIssues) == 0 {
		sb.WriteString("✅ 文档质量良好，可以直接使用或进行最终润色\n")
	}

	sb.WriteString("\n## 5. 详细检查项\n")
	sb.WriteString("- [ ] 所有必需章节完整\n")
	sb.WriteString("- [ ] 技术内容准确无误\n")
	sb.WriteString("- [ ] 无占位符内容\n")
	sb.WriteString("- [ ] 格式符合规范\n")
	sb.WriteString("- [ ] 术语使用一致\n")
	sb.WriteString("- [ ] 段落长度适中\n")

	return sb.String()
}

// SaveReport writes the report under reviewsDir, named after the draft stem.
func SaveReport(report, reviewsDir, draftPath string) (string, error) {
	base := filepath.Base(draftPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	path := filepath.Join(reviewsDir, fmt.Sprintf("review_report_%s.md", stem))
	if err := storage.WriteText(path, report); err != nil {
		return "", err
	}
	return path, nil
}
