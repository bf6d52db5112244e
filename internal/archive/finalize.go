// Package archive finalizes reviewed drafts: strips draft-only annotations,
// relocates the document into the dated final-document tree with a backup
// copy, and maintains the append-only document index.
package archive

import (
	"regexp"
	"strings"
	"time"
)

// Version is the fixed document version tag.
const Version = "1.0"

// triggerMarkers are the substrings that identify a document as still carrying
// draft annotations. Any one of them present anywhere triggers removal of
// every comment block in the document, not just the triggering one.
var triggerMarkers = []string{
	"<!-- 需要补充",
	"<!-- 字体:",
	"<!-- 字号:",
	"<!-- 行距:",
	"**状态**: 草稿",
	"本文件为技术交底书草稿",
	"标记为'待补充'的部分",
}

var commentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)

// Finalize strips draft comment blocks, rewrites the status marker and draft
// description to their finalized forms, and splices the final metadata header
// in right after the title line when the document starts with one.
func Finalize(content string, now time.Time) string {
	for _, marker := range triggerMarkers {
		if strings.Contains(content, marker) {
			content = commentPattern.ReplaceAllString(content, "")
			break
		}
	}

	content = strings.ReplaceAll(content, "**状态**: 草稿", "**状态**: 终稿")
	content = strings.ReplaceAll(content,
		"本文件为技术交底书草稿，基于收集的信息生成",
		"本文件为技术交底书终稿，已完成审核和确认")

	header := "---\n" +
		"文档类型: 技术交底书\n" +
		"文档状态: 终稿\n" +
		"生成时间: " + now.Format("2006-01-02 15:04:05") + "\n" +
		"版本: " + Version + "\n" +
		"---\n"
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && strings.HasPrefix(lines[0], "# ") {
		spliced := make([]string, 0, len(lines)+1)
		spliced = append(spliced, lines[0], header)
		spliced = append(spliced, lines[1:]...)
		content = strings.Join(spliced, "\n")
	}

	return content
}
