package drafting

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenhao/disclosure-assistant/internal/collection"
	"github.com/wenhao/disclosure-assistant/internal/types"
)

func fullRecord() types.AnswerRecord {
	return types.AnswerRecord{
		collection.FieldTechnicalField: "人工智能自然语言处理领域",
		collection.FieldBackground:     "现有技术采用单一模型处理长文本，存在上下文丢失问题",
		collection.FieldProblem:        "长文本处理时上下文信息丢失严重",
		collection.FieldSolution:       "采用分层注意力机制和上下文压缩技术，结合深度学习模型优化处理流程",
		collection.FieldEffects:        "处理速度提升百分之五十，上下文保留率显著提高",
	}
}

func testTime() time.Time {
	return time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)
}

func TestTitle(t *testing.T) {
	t.Run("derives title from field and solution keywords", func(t *testing.T) {
		title := Title(fullRecord())

		assert.Equal(t, "人工智能自然语言技术领域的采用分层注意力机制和上下方法及系统", title)
	})

	t.Run("falls back when solution is missing", func(t *testing.T) {
		record := types.AnswerRecord{
			collection.FieldTechnicalField: "人工智能领域",
		}

		assert.Equal(t, FallbackTitle, Title(record))
	})

	t.Run("falls back when answers carry no chinese text", func(t *testing.T) {
		record := types.AnswerRecord{
			collection.FieldTechnicalField: "AI and NLP",
			collection.FieldSolution:       "transformer pipeline v2",
		}

		assert.Equal(t, FallbackTitle, Title(record))
	})
}

func TestSectionContent(t *testing.T) {
	layout := DefaultLayout()

	t.Run("uses trimmed collected answer", func(t *testing.T) {
		record := types.AnswerRecord{collection.FieldBackground: "  现有技术存在明显缺陷  "}

		assert.Equal(t, "现有技术存在明显缺陷", layout.SectionContent("背景技术", record))
	})

	t.Run("whitespace-only answer falls back to placeholder", func(t *testing.T) {
		record := types.AnswerRecord{collection.FieldBackground: "   "}

		assert.Equal(t, "待补充背景技术描述", layout.SectionContent("背景技术", record))
	})

	t.Run("drawings section defaults to no-figure note", func(t *testing.T) {
		assert.Equal(t, "无附图", layout.SectionContent("附图说明", types.AnswerRecord{}))
	})

	t.Run("unknown section gets generic placeholder", func(t *testing.T) {
		assert.Equal(t, "待补充内容", layout.SectionContent("发明人信息", types.AnswerRecord{}))
	})
}

func TestSynthesizeMetadata(t *testing.T) {
	layout := DefaultLayout()

	t.Run("renders generation date and draft status", func(t *testing.T) {
		doc := layout.Synthesize(fullRecord(), types.RuleSet{}, testTime())

		assert.Contains(t, doc, "**文档生成日期**: 2024年03月15日\n")
		assert.Contains(t, doc, "**技术领域**: 人工智能自然语言处理领域\n")
		assert.Contains(t, doc, "**状态**: 草稿\n")
	})

	t.Run("missing field answer renders pending marker", func(t *testing.T) {
		doc := layout.Synthesize(types.AnswerRecord{}, types.RuleSet{}, testTime())

		assert.Contains(t, doc, "**技术领域**: 待补充\n")
	})

	t.Run("empty field answer renders empty value", func(t *testing.T) {
		record := types.AnswerRecord{collection.FieldTechnicalField: ""}
		doc := layout.Synthesize(record, types.RuleSet{}, testTime())

		assert.Contains(t, doc, "**技术领域**: \n")
	})
}

func TestSynthesizeSections(t *testing.T) {
	layout := DefaultLayout()
	headingPattern := regexp.MustCompile(`(?m)^(#{2,3}) (\d+)\. (.+)$`)

	t.Run("renders every default section numbered in order", func(t *testing.T) {
		doc := layout.Synthesize(fullRecord(), types.RuleSet{}, testTime())

		matches := headingPattern.FindAllStringSubmatch(doc, -1)
		require.Len(t, matches, 7)
		for i, want := range types.DefaultSections() {
			assert.Equal(t, want, matches[i][3])
		}
		assert.Equal(t, "##", matches[0][1])
		for _, m := range matches[1:] {
			assert.Equal(t, "###", m[1])
		}
	})

	t.Run("custom section list drives headings", func(t *testing.T) {
		rules := types.RuleSet{RequiredSections: []string{"技术领域", "技术方案", "发明人信息"}}
		doc := layout.Synthesize(fullRecord(), rules, testTime())

		matches := headingPattern.FindAllStringSubmatch(doc, -1)
		require.Len(t, matches, 3)
		assert.Equal(t, "## 1. 技术领域", matches[0][0])
		assert.Equal(t, "### 2. 技术方案", matches[1][0])
		assert.Equal(t, "### 3. 发明人信息", matches[2][0])
	})

	t.Run("placeholder sections carry completion comments", func(t *testing.T) {
		doc := layout.Synthesize(types.AnswerRecord{}, types.RuleSet{}, testTime())

		assert.Contains(t, doc, "待补充技术方案描述\n\n<!-- 需要补充技术方案的具体内容 -->\n")
		assert.NotContains(t, doc, "<!-- 需要补充附图说明的具体内容 -->")
	})

	t.Run("collected answer starting with pending marker is still flagged", func(t *testing.T) {
		record := fullRecord()
		record[collection.FieldBackground] = "待补充相关背景资料"
		doc := layout.Synthesize(record, types.RuleSet{}, testTime())

		assert.Contains(t, doc, "待补充相关背景资料\n\n<!-- 需要补充背景技术的具体内容 -->\n")
	})

	t.Run("footer lists document notes and tool stamp", func(t *testing.T) {
		doc := layout.Synthesize(fullRecord(), types.RuleSet{}, testTime())

		assert.Contains(t, doc, "## 文档说明\n\n1. 本文件为技术交底书草稿，基于收集的信息生成\n")
		assert.Contains(t, doc, "3. 标记为'待补充'的部分需要进一步完善\n")
		assert.True(t, strings.HasSuffix(doc, "**生成工具**: Patent Disclosure Assistant\n**版本**: 1.0\n"))
	})
}

func TestSynthesizeAnnotations(t *testing.T) {
	layout := DefaultLayout()
	// Only the fallback title anchors annotations, so keep the record empty.
	record := types.AnswerRecord{}

	t.Run("later rules land closest to the heading", func(t *testing.T) {
		rules := types.RuleSet{FormattingRules: []string{"字体要求：宋体", "字号要求：小四", "行间距：1.5倍"}}
		doc := layout.Synthesize(record, rules, testTime())

		want := "# 技术交底书\n<!-- 行距: 1.5倍 -->\n<!-- 字号: 小四 -->\n<!-- 字体: 宋体 -->\n\n"
		assert.True(t, strings.HasPrefix(doc, want))
	})

	t.Run("duplicate rules duplicate annotations", func(t *testing.T) {
		rules := types.RuleSet{FormattingRules: []string{"字体：宋体", "字体：宋体"}}
		doc := layout.Synthesize(record, rules, testTime())

		assert.Equal(t, 2, strings.Count(doc, "<!-- 字体: 宋体 -->"))
	})

	t.Run("keyword without a known variant is ignored", func(t *testing.T) {
		rules := types.RuleSet{FormattingRules: []string{"字体要求：楷体"}}
		doc := layout.Synthesize(record, rules, testTime())

		assert.NotContains(t, doc, "<!-- 字体")
	})

	t.Run("generated title leaves rules unannotated", func(t *testing.T) {
		rules := types.RuleSet{FormattingRules: []string{"字体要求：宋体"}}
		doc := layout.Synthesize(fullRecord(), rules, testTime())

		assert.NotContains(t, doc, "<!-- 字体: 宋体 -->")
	})
}

func TestSaveDraft(t *testing.T) {
	t.Run("writes timestamped draft file", func(t *testing.T) {
		dir := t.TempDir()
		draftsDir := filepath.Join(dir, "drafts")

		path, err := SaveDraft("# 技术交底书\n", draftsDir, testTime())
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(draftsDir, "technical_disclosure_draft_20240315_103000.md"), path)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# 技术交底书\n", string(content))
	})
}
