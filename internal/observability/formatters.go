// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/wenhao/disclosure-assistant/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens a string to at most max runes. Rune-based so CJK text is
// never cut mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// padLine pads or truncates a line to the inner box width. CJK glyphs render
// wider than one terminal column, so borders are approximate for Chinese text.
func padLine(line string, width int) string {
	runes := []rune(line)
	if len(runes) > width {
		return string(runes[:width-3]) + "..."
	}
	return line + strings.Repeat(" ", width-len(runes))
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", padLine(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", padLine(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRuleSet outputs a human-readable summary of the extracted rule set.
func (p *Printer) PrintRuleSet(rules *types.RuleSet) {
	if rules == nil {
		return
	}

	var sb strings.Builder

	if len(rules.RequiredSections) > 0 {
		sb.WriteString(fmt.Sprintf("Required sections (%d):\n", len(rules.RequiredSections)))
		count := min(len(rules.RequiredSections), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", rules.RequiredSections[i]))
		}
		if len(rules.RequiredSections) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(rules.RequiredSections)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(rules.FormattingRules) > 0 {
		sb.WriteString("Formatting rules:\n")
		count := min(len(rules.FormattingRules), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", truncate(rules.FormattingRules[i], 50)))
		}
		if len(rules.FormattingRules) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(rules.FormattingRules)-3))
		}
		sb.WriteString("\n")
	}

	if len(rules.ContentRequirements) > 0 {
		sb.WriteString(fmt.Sprintf("Content requirements: %d\n", len(rules.ContentRequirements)))
	}

	p.printBox("EXTRACTED RULE SET", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidationResult outputs missing and incomplete fields found while
// validating collected answers.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationResult(result *types.ValidationResult) {
	if result == nil {
		return
	}

	if result.Valid && len(result.IncompleteFields) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %s │\n", padLine("✅ ALL REQUIRED FIELDS ANSWERED", boxWidth-4))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder

	if len(result.MissingFields) > 0 {
		sb.WriteString(fmt.Sprintf("Missing fields (%d):\n", len(result.MissingFields)))
		count := min(len(result.MissingFields), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", result.MissingFields[i]))
		}
		if len(result.MissingFields) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MissingFields)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.IncompleteFields) > 0 {
		sb.WriteString(fmt.Sprintf("Incomplete fields (%d):\n", len(result.IncompleteFields)))
		count := min(len(result.IncompleteFields), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", result.IncompleteFields[i]))
		}
		if len(result.IncompleteFields) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.IncompleteFields)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.Suggestions) > 0 {
		sb.WriteString("Suggestions:\n")
		count := min(len(result.Suggestions), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", truncate(result.Suggestions[i], 50)))
		}
		if len(result.Suggestions) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Suggestions)-3))
		}
	}

	p.printBox("ANSWER VALIDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReviewResult outputs the review score with section and issue summaries.
func (p *Printer) PrintReviewResult(result *types.ReviewResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %.1f%% (%d/%d checks)\n", result.OverallScore, result.PassedChecks, result.TotalChecks))
	sb.WriteString(fmt.Sprintf("Sections: %d present, %d missing\n", len(result.PresentSections), len(result.MissingSections)))

	if len(result.MissingSections) > 0 {
		sb.WriteString("\nMissing sections:\n")
		count := min(len(result.MissingSections), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", result.MissingSections[i]))
		}
		if len(result.MissingSections) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MissingSections)-maxItemsToShow))
		}
	}

	if len(result.ContentIssues) > 0 {
		sb.WriteString("\nContent issues:\n")
		count := min(len(result.ContentIssues), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", truncate(result.ContentIssues[i].Description, 50)))
		}
		if len(result.ContentIssues) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.ContentIssues)-maxItemsToShow))
		}
	}

	if len(result.FormatIssues) > 0 {
		sb.WriteString("\nFormat issues:\n")
		count := min(len(result.FormatIssues), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", truncate(result.FormatIssues[i], 50)))
		}
		if len(result.FormatIssues) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.FormatIssues)-maxItemsToShow))
		}
	}

	p.printBox("DRAFT REVIEW", sb.String())
}

// PrintWarnings outputs tolerated fallbacks accumulated during a stage.
func (p *Printer) PrintWarnings(warnings []types.Warning) {
	if len(warnings) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d fallbacks taken:\n\n", len(warnings)))

	for i, w := range warnings {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", w.Code))
		sb.WriteString(fmt.Sprintf("  %s\n", truncate(w.Message, 45)))
		if i < len(warnings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("WARNINGS", sb.String())
}
