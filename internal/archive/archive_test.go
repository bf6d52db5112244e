package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenhao/disclosure-assistant/internal/storage"
	"github.com/wenhao/disclosure-assistant/internal/types"
)

func saveTime() time.Time {
	return time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
}

func TestFinalize(t *testing.T) {
	t.Run("one trigger marker removes every comment block", func(t *testing.T) {
		draft := "# 技术交底书\n<!-- 字体: 宋体 -->\n\n正文\n\n<!-- 完全无关的注释 -->\n"

		final := Finalize(draft, saveTime())

		assert.NotContains(t, final, "<!-- 字体: 宋体 -->")
		assert.NotContains(t, final, "<!-- 完全无关的注释 -->")
		assert.NotContains(t, final, "<!--")
	})

	t.Run("without a trigger comments survive", func(t *testing.T) {
		doc := "# 文档\n\n<!-- 无关注释 -->\n\n正文内容\n"

		final := Finalize(doc, saveTime())

		assert.Contains(t, final, "<!-- 无关注释 -->")
	})

	t.Run("status and description flip to finalized wording", func(t *testing.T) {
		draft := "# 标题\n\n**状态**: 草稿\n\n1. 本文件为技术交底书草稿，基于收集的信息生成\n"

		final := Finalize(draft, saveTime())

		assert.Contains(t, final, "**状态**: 终稿")
		assert.NotContains(t, final, "**状态**: 草稿")
		assert.Contains(t, final, "本文件为技术交底书终稿，已完成审核和确认")
	})

	t.Run("metadata header lands right after the title line", func(t *testing.T) {
		final := Finalize("# 标题\n\n正文\n", saveTime())

		want := "# 标题\n" +
			"---\n" +
			"文档类型: 技术交底书\n" +
			"文档状态: 终稿\n" +
			"生成时间: 2024-03-15 12:00:00\n" +
			"版本: 1.0\n" +
			"---\n" +
			"\n\n正文\n"
		assert.Equal(t, want, final)
	})

	t.Run("documents not starting with a title get no header", func(t *testing.T) {
		final := Finalize("正文开头没有标题\n", saveTime())

		assert.NotContains(t, final, "文档类型: 技术交底书")
	})
}

func TestTechnicalField(t *testing.T) {
	t.Run("labeled line with full-width colon", func(t *testing.T) {
		assert.Equal(t, "人工智能", TechnicalField("技术领域：人工智能\n后续内容\n"))
	})

	t.Run("labeled line with ascii colon", func(t *testing.T) {
		assert.Equal(t, "机器学习系统", TechnicalField("技术领域: 机器学习系统\n"))
	})

	t.Run("bold metadata label does not match", func(t *testing.T) {
		assert.Equal(t, "未指定技术领域", TechnicalField("**技术领域**: 人工智能\n"))
	})

	t.Run("value is trimmed and stops at line end", func(t *testing.T) {
		assert.Equal(t, "语音识别", TechnicalField("技术领域：  语音识别  \n下一行\n"))
	})

	t.Run("label followed by newline captures the next line", func(t *testing.T) {
		assert.Equal(t, "语音识别领域", TechnicalField("技术领域：\n语音识别领域\n"))
	})
}

func TestFilename(t *testing.T) {
	t.Run("filesystem-unsafe characters are stripped", func(t *testing.T) {
		name := Filename(`AI/ML 领域？研究`, saveTime())

		assert.Equal(t, "技术交底书_AIML_领域？研究_20240315_v1.0.md", name)
		for _, c := range `\/*?:"<>|` {
			assert.NotContains(t, name, string(c))
		}
	})

	t.Run("field truncates to thirty characters", func(t *testing.T) {
		name := Filename(strings.Repeat("智能处理", 10), saveTime())

		field := strings.Repeat("智能处理", 7) + "智能"
		assert.Equal(t, "技术交底书_"+field+"_20240315_v1.0.md", name)
	})

	t.Run("spaces and commas become underscores", func(t *testing.T) {
		name := Filename("机器学习，深度学习, 神经网络", saveTime())

		assert.Equal(t, "技术交底书_机器学习_深度学习__神经网络_20240315_v1.0.md", name)
	})
}

func TestSaveFinal(t *testing.T) {
	t.Run("writes document and identical backup under dated dirs", func(t *testing.T) {
		base := t.TempDir()

		outputPath, backupPath, err := SaveFinal("# 终稿内容\n", "final.md", base, saveTime())
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(base, "2024", "03", "final.md"), outputPath)
		assert.Equal(t, filepath.Join(base, "backups", "2024", "03", "final.md"), backupPath)

		main, err := os.ReadFile(outputPath)
		require.NoError(t, err)
		backup, err := os.ReadFile(backupPath)
		require.NoError(t, err)
		assert.Equal(t, "# 终稿内容\n", string(main))
		assert.Equal(t, string(main), string(backup))
	})
}

func TestUpdateIndex(t *testing.T) {
	entry := types.IndexEntry{
		Filename:       "技术交底书_人工智能_20240315_v1.0.md",
		TechnicalField: "人工智能",
		SaveDate:       "2024-03-15 12:00:00",
		FilePath:       "/final/2024/03/doc.md",
		BackupPath:     "/final/backups/2024/03/doc.md",
		Version:        "1.0",
	}

	t.Run("first entry creates the index", func(t *testing.T) {
		base := t.TempDir()

		indexPath, warnings, err := UpdateIndex(entry, base)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(base, storage.IndexFile), indexPath)
		assert.Empty(t, warnings)
		index, loadWarnings := storage.LoadIndex(indexPath)
		assert.Empty(t, loadWarnings)
		require.Len(t, index, 1)
		assert.Equal(t, entry, index[0])
	})

	t.Run("appends after existing entries", func(t *testing.T) {
		base := t.TempDir()
		first := entry
		first.Filename = "技术交底书_语音识别_20240301_v1.0.md"
		indexPath := filepath.Join(base, storage.IndexFile)
		require.NoError(t, storage.WriteJSON(indexPath, []types.IndexEntry{first}))

		_, warnings, err := UpdateIndex(entry, base)
		require.NoError(t, err)

		assert.Empty(t, warnings)
		index, _ := storage.LoadIndex(indexPath)
		require.Len(t, index, 2)
		assert.Equal(t, first.Filename, index[0].Filename)
		assert.Equal(t, entry.Filename, index[1].Filename)
	})

	t.Run("malformed index resets with a warning", func(t *testing.T) {
		base := t.TempDir()
		indexPath := filepath.Join(base, storage.IndexFile)
		require.NoError(t, os.WriteFile(indexPath, []byte("not json"), 0644))

		_, warnings, err := UpdateIndex(entry, base)
		require.NoError(t, err)

		require.Len(t, warnings, 1)
		assert.Equal(t, types.WarnIndexReset, warnings[0].Code)
		index, _ := storage.LoadIndex(indexPath)
		require.Len(t, index, 1)
		assert.Equal(t, entry, index[0])
	})
}

func TestSectionCount(t *testing.T) {
	content := "# 标题\n\n## 1. 技术领域\n\n正文\n\n### 2. 背景技术\n\n正文\n\n## 文档说明\n\n1. 列表项不算章节\n"

	assert.Equal(t, 2, SectionCount(content))
}

func TestReport(t *testing.T) {
	name := "技术交底书_人工智能_20240315_v1.0.md"
	base := filepath.Join("/data", "final_documents")
	record := SaveRecord{
		Filename:       name,
		TechnicalField: "人工智能",
		SaveDate:       "2024-03-15 12:00:00",
		FilePath:       filepath.Join(base, "2024", "03", name),
		BackupPath:     filepath.Join(base, "backups", "2024", "03", name),
		Version:        "1.0",
		FileSize:       1024,
		SectionCount:   7,
	}

	report := Report(record)

	assert.Contains(t, report, "# 文档保存报告\n\n## 保存详情\n")
	assert.Contains(t, report, "- **文档名称**: "+name+"\n")
	assert.Contains(t, report, "- **技术领域**: 人工智能\n")
	assert.Contains(t, report, "- **保存时间**: 2024-03-15 12:00:00\n")
	assert.Contains(t, report, "- **文件大小**: 1024 字符\n")
	assert.Contains(t, report, "- **章节数量**: 7\n")
	assert.Contains(t, report, "- **保存状态**: ✅ 成功\n")

	tree := "```\n" +
		filepath.Join(base, "2024", "03") + "\n" +
		"├── " + name + " (主文件)\n" +
		"└── backups/\n" +
		"    └── 03/\n" +
		"        └── " + name + " (备份文件)\n" +
		"```\n"
	assert.Contains(t, report, tree)
	assert.Contains(t, report, "## 后续操作建议\n1. 验证文档内容的准确性和完整性\n")
	assert.Contains(t, report, "4. 更新相关专利申报记录\n")
}

func TestSaveReport(t *testing.T) {
	t.Run("writes timestamped report under reports dir", func(t *testing.T) {
		base := t.TempDir()

		path, err := SaveReport("# 文档保存报告\n", base, saveTime())
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(base, "reports", "save_report_20240315_120000.md"), path)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# 文档保存报告\n", string(content))
	})
}
