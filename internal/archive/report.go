package archive

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/wenhao/disclosure-assistant/internal/storage"
	"github.com/wenhao/disclosure-assistant/internal/types"
)

// SaveRecord carries the metadata describing one completed save operation.
type SaveRecord struct {
	Filename       string
	TechnicalField string
	SaveDate       string
	FilePath       string
	BackupPath     string
	Version        string
	FileSize       int
	SectionCount   int
}

// IndexEntry converts the record to its persisted index form.
func (r SaveRecord) IndexEntry() types.IndexEntry {
	return types.IndexEntry{
		Filename:       r.Filename,
		TechnicalField: r.TechnicalField,
		SaveDate:       r.SaveDate,
		FilePath:       r.FilePath,
		BackupPath:     r.BackupPath,
		Version:        r.Version,
	}
}

var sectionHeadingPattern = regexp.MustCompile(`(?m)^#+\s+\d+\.`)

// SectionCount counts numbered section headings in the document.
func SectionCount(content string) int {
	return len(sectionHeadingPattern.FindAllString(content, -1))
}

// Report renders the save-operation report: save details, file information,
// the resulting directory layout, and follow-up suggestions.
func Report(record SaveRecord) string {
	var sb strings.Builder

	sb.WriteString("# 文档保存报告\n\n")
	sb.WriteString("## 保存详情\n")
	sb.WriteString("- **文档名称**: " + record.Filename + "\n")
	sb.WriteString("- **技术领域**: " + record.TechnicalField + "\n")
	sb.WriteString("- **保存时间**: " + record.SaveDate + "\n")
	sb.WriteString("- **文档版本**: " + record.Version + "\n")
	sb.WriteString("- **主文件路径**: " + record.FilePath + "\n")
	sb.WriteString("- **备份文件路径**: " + record.BackupPath + "\n")

	sb.WriteString("\n## 文件信息\n")
	fmt.Fprintf(&sb, "- **文件大小**: %d 字符\n", record.FileSize)
	fmt.Fprintf(&sb, "- **章节数量**: %d\n", record.SectionCount)
	sb.WriteString("- **保存状态**: ✅ 成功\n")

	sb.WriteString("\n## 目录结构\n")
	sb.WriteString("文档已按照以下结构保存:\n")
	sb.WriteString("```\n")
	sb.WriteString(filepath.Dir(record.FilePath) + "\n")
	sb.WriteString("├── " + record.Filename + " (主文件)\n")
	sb.WriteString("└── backups/\n")
	sb.WriteString("    └── " + filepath.Base(filepath.Dir(record.BackupPath)) + "/\n")
	sb.WriteString("        └── " + record.Filename + " (备份文件)\n")
	sb.WriteString("```\n")

	sb.WriteString("\n## 后续操作建议\n")
	sb.WriteString("1. 验证文档内容的准确性和完整性\n")
	sb.WriteString("2. 根据需要打印或分享文档\n")
	sb.WriteString("3. 定期检查备份文件的完整性\n")
	sb.WriteString("4. 更新相关专利申报记录\n")

	return sb.String()
}

// SaveReport writes the report under <base>/reports/ with a timestamped name
// and returns the report path.
func SaveReport(report, baseDir string, now time.Time) (string, error) {
	path := filepath.Join(baseDir, "reports", fmt.Sprintf("save_report_%s.md", now.Format("20060102_150405")))
	if err := storage.WriteText(path, report); err != nil {
		return "", err
	}
	return path, nil
}
