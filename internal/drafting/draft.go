package drafting

import (
	"fmt"
	"strings"
	"time"

	"github.com/wenhao/disclosure-assistant/internal/collection"
	"github.com/wenhao/disclosure-assistant/internal/types"
)

// Synthesize assembles the complete draft document: title and metadata block,
// one numbered section per required section, and the fixed document notes
// footer, with formatting annotations applied last. The first section renders
// at heading level two and the rest at level three.
func (l *Layout) Synthesize(record types.AnswerRecord, rules types.RuleSet, now time.Time) string {
	title := Title(record)

	var sb strings.Builder
	sb.WriteString("# " + title + "\n\n")
	sb.WriteString("**文档生成日期**: " + now.Format("2006年01月02日") + "\n")
	techField, ok := record[collection.FieldTechnicalField]
	if !ok {
		techField = "待补充"
	}
	sb.WriteString("**技术领域**: " + techField + "\n")
	sb.WriteString("**状态**: 草稿\n\n")
	sb.WriteString("---\n\n")

	sections := rules.RequiredSections
	if len(sections) == 0 {
		sections = types.DefaultSections()
	}
	for i, name := range sections {
		level := "###"
		if i == 0 {
			level = "##"
		}
		fmt.Fprintf(&sb, "%s %d. %s\n\n", level, i+1, name)
		content := l.SectionContent(name, record)
		sb.WriteString(content + "\n\n")
		if strings.HasPrefix(content, "待补充") {
			fmt.Fprintf(&sb, "<!-- 需要补充%s的具体内容 -->\n\n", name)
		}
	}

	sb.WriteString("---\n\n")
	sb.WriteString("## 文档说明\n\n")
	sb.WriteString("1. 本文件为技术交底书草稿，基于收集的信息生成\n")
	sb.WriteString("2. 请仔细核对技术内容的准确性和完整性\n")
	sb.WriteString("3. 标记为'待补充'的部分需要进一步完善\n")
	sb.WriteString("4. 建议进行技术审核和格式检查\n\n")
	sb.WriteString("**生成工具**: Patent Disclosure Assistant\n")
	sb.WriteString("**版本**: 1.0\n")

	return l.applyAnnotations(sb.String(), rules.FormattingRules)
}
