package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/wenhao/disclosure-assistant/internal/analysis"
)

const testGuidelines = `# 技术交底书撰写指南

请按下列顺序组织文档内容。

一、技术领域
二、背景技术
三、技术问题
四、技术方案
五、有益效果
六、附图说明
七、具体实施方式

格式要求：字体宋体，字号小四
`

const testSample = `# 智能检索系统技术交底书

## 1. 技术领域

本发明属于人工智能技术领域。
`

const testInput = `技术领域: 人工智能自然语言处理领域
背景技术: 现有的专利检索系统主要依靠关键词匹配，无法理解技术方案的语义信息，检索效率低。
技术问题: 如何提升专利检索的语义理解能力
技术方案: 采用分层注意力机制和上下文压缩技术，对专利文献进行语义编码，结合向量检索与重排序模型，实现高精度的语义检索能力。
有益效果: 显著提升检索准确率，降低人工筛选成本，提高审查效率。
`

// cmdWorkspace holds the per-test directory layout the commands operate on
type cmdWorkspace struct {
	refs   string
	output string
	input  string
}

func (ws cmdWorkspace) draftsDir() string { return filepath.Join(ws.output, "drafts") }
func (ws cmdWorkspace) finalDir() string  { return filepath.Join(ws.output, "final_documents") }

func setupWorkspace(t *testing.T) cmdWorkspace {
	t.Helper()

	tmp := t.TempDir()
	ws := cmdWorkspace{
		refs:   filepath.Join(tmp, "references"),
		output: filepath.Join(tmp, "outputs"),
		input:  filepath.Join(tmp, "input.txt"),
	}
	require.NoError(t, os.MkdirAll(ws.refs, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(ws.refs, analysis.GuidelinesFile), []byte(testGuidelines), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(ws.refs, analysis.SampleFile), []byte(testSample), 0644))
	require.NoError(t, os.WriteFile(ws.input, []byte(testInput), 0644))
	return ws
}

// resetFlags restores every command flag to its default so values set by one
// test do not leak into the next. Slice flags need Replace because their Set
// appends.
func resetFlags() {
	commands := append([]*cobra.Command{rootCmd}, rootCmd.Commands()...)
	for _, c := range commands {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				_ = sv.Replace([]string{})
			} else {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		})
	}
}

// execute runs the CLI in-process with the given arguments
func execute(t *testing.T, args ...string) error {
	t.Helper()

	resetFlags()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// captureStdout redirects os.Stdout for the duration of fn and returns what was written
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	require.NoError(t, w.Close())
	os.Stdout = old
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}
