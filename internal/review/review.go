// Package review checks a synthesized draft against the extracted rule set:
// section presence, placeholder residue, section length, terminology reuse,
// and formatting-annotation compliance. The overall score is a coarse
// four-check pass count, not a per-issue weighting.
package review

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/wenhao/disclosure-assistant/internal/cjk"
	"github.com/wenhao/disclosure-assistant/internal/types"
)

// Issue type identifiers carried on ReviewIssue records.
const (
	IssuePlaceholder     = "placeholder_content"
	IssueShortSection    = "short_section"
	IssueTermConsistency = "term_consistency"
)

// placeholderPatterns are the marker tokens that flag unfinished content.
// Matching is case-insensitive so lowercase todo/fixme notes count too.
var placeholderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)待补充`),
	regexp.MustCompile(`(?i)待完善`),
	regexp.MustCompile(`(?i)TODO`),
	regexp.MustCompile(`(?i)FIXME`),
	regexp.MustCompile(`(?is)<!--.*?需要补充.*?-->`),
}

var (
	chunkHeaderPattern  = regexp.MustCompile(`(?s)#+\s+.*?\n\n`)
	chunkMarkerPattern  = regexp.MustCompile(`#+\s+`)
	termPattern         = regexp.MustCompile(`[\x{4e00}-\x{9fa5}]{2,6}技术|[\x{4e00}-\x{9fa5}]{2,6}方法|[\x{4e00}-\x{9fa5}]{2,6}系统`)
	headingLevelPattern = regexp.MustCompile(`(?m)^(#+)\s`)
	blankRunPattern     = regexp.MustCompile(`\n\s*\n\s*\n`)
)

// shortSectionThreshold is the minimum CJK character count per section chunk.
const shortSectionThreshold = 20

// totalChecks is the number of coarse pass/fail buckets in the score.
const totalChecks = 4

// CheckSections reports which required sections have a heading in the draft.
// A section counts as present with either a numbered heading ("## 1. 技术领域")
// or a bare one ("## 技术领域") at level two or three. Both returned lists
// follow rule-set order, not document order.
func CheckSections(content string, requiredSections []string) (present, missing []string) {
	for _, section := range requiredSections {
		numbered := regexp.MustCompile(`#{2,3}\s+\d+\.\s*` + regexp.QuoteMeta(section))
		bare := regexp.MustCompile(`#{2,3}\s+` + regexp.QuoteMeta(section))
		if numbered.MatchString(content) || bare.MatchString(content) {
			present = append(present, section)
		} else {
			missing = append(missing, section)
		}
	}
	return present, missing
}

// sectionChunks splits the draft into per-heading content chunks: the text
// between one heading block (heading line plus its trailing blank line) and
// the start of the next heading. The metadata block under the title heading
// counts as the first chunk, and adjacent headings yield an empty chunk.
func sectionChunks(content string) []string {
	var chunks []string
	pos := 0
	for pos < len(content) {
		header := chunkHeaderPattern.FindStringIndex(content[pos:])
		if header == nil {
			break
		}
		start := pos + header[1]
		end := len(content)
		if marker := chunkMarkerPattern.FindStringIndex(content[start:]); marker != nil {
			end = start + marker[0]
		}
		chunks = append(chunks, content[start:end])
		pos = end
	}
	return chunks
}

// ContentIssues runs the three content-quality sub-checks. They are
// independent and additive: a draft can trigger all of them at once.
func ContentIssues(content string) []types.ReviewIssue {
	var issues []types.ReviewIssue

	total := 0
	for _, pattern := range placeholderPatterns {
		total += len(pattern.FindAllString(content, -1))
	}
	if total > 0 {
		count := total
		issues = append(issues, types.ReviewIssue{
			Type:        IssuePlaceholder,
			Description: fmt.Sprintf("发现 %d 处占位符内容需要补充", total),
			Count:       &count,
		})
	}

	for i, chunk := range sectionChunks(content) {
		words := cjk.Count(chunk)
		if words < shortSectionThreshold {
			index, count := i, words
			issues = append(issues, types.ReviewIssue{
				Type:         IssueShortSection,
				Description:  fmt.Sprintf("第 %d 个章节内容过短 (%d 字)", i+1, words),
				SectionIndex: &index,
				WordCount:    &count,
			})
		}
	}

	terms := termPattern.FindAllString(content, -1)
	distinct := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		distinct[term] = struct{}{}
	}
	if len(distinct) < 3 && len(terms) > 5 {
		issues = append(issues, types.ReviewIssue{
			Type:        IssueTermConsistency,
			Description: "技术术语使用不一致或重复",
		})
	}

	return issues
}

// FormatIssues checks formatting compliance: presence of the font and size
// annotations when the rule set mentions them, heading-level spread, and
// consecutive blank lines. Rule text is matched as a whole, so a keyword in
// one rule and its value in another still activate the check.
func FormatIssues(content string, formattingRules []string) []string {
	var violations []string

	rulesText := strings.Join(formattingRules, "\n")
	if strings.Contains(rulesText, "字体") && strings.Contains(rulesText, "宋体") {
		if !strings.Contains(content, "<!-- 字体: 宋体 -->") {
			violations = append(violations, "未指定字体为宋体")
		}
	}
	if strings.Contains(rulesText, "字号") && (strings.Contains(rulesText, "小四") || strings.Contains(rulesText, "12pt")) {
		if !strings.Contains(content, "<!-- 字号: 小四 -->") && !strings.Contains(content, "<!-- 字号: 12pt -->") {
			violations = append(violations, "未指定字号")
		}
	}

	if matches := headingLevelPattern.FindAllStringSubmatch(content, -1); len(matches) > 0 {
		minLevel, maxLevel := len(matches[0][1]), len(matches[0][1])
		for _, m := range matches[1:] {
			level := len(m[1])
			if level < minLevel {
				minLevel = level
			}
			if level > maxLevel {
				maxLevel = level
			}
		}
		if maxLevel-minLevel > 2 {
			violations = append(violations, "标题层级跳跃过大")
		}
	}

	if runs := len(blankRunPattern.FindAllString(content, -1)); runs > 0 {
		violations = append(violations, fmt.Sprintf("发现 %d 处连续空行", runs))
	}

	return violations
}

// Review runs every check against the draft and scores it. The four score
// buckets are: no missing sections, no content issues, no format issues, and
// a non-empty document.
func Review(content, documentName string, rules types.RuleSet, now time.Time) types.ReviewResult {
	present, missing := CheckSections(content, rules.RequiredSections)
	contentIssues := ContentIssues(content)
	formatIssues := FormatIssues(content, rules.FormattingRules)

	passed := 0
	if len(missing) == 0 {
		passed++
	}
	if len(contentIssues) == 0 {
		passed++
	}
	if len(formatIssues) == 0 {
		passed++
	}
	if content != "" {
		passed++
	}

	return types.ReviewResult{
		DocumentName:    documentName,
		ReviewTime:      now.Format("2006-01-02 15:04:05"),
		PresentSections: present,
		MissingSections: missing,
		ContentIssues:   contentIssues,
		FormatIssues:    formatIssues,
		TotalChecks:     totalChecks,
		PassedChecks:    passed,
		OverallScore:    float64(passed) / float64(totalChecks) * 100,
	}
}
