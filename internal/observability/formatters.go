// Package observability provides formatted output utilities for verbose mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Koushiik20/ResuMate/internal/types"
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

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of a resume analysis
func (p *Printer) PrintAnalysis(analysis *types.ResumeAnalysis, role string) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:     %s\n", role))
	sb.WriteString(fmt.Sprintf("Overall:  %d/100\n", analysis.Scores.Overall))
	sb.WriteString(fmt.Sprintf("Keywords: %d  Content: %d  Format: %d  Skills: %d\n",
		analysis.Scores.Keywords, analysis.Scores.Content,
		analysis.Scores.Format, analysis.Scores.Skills))
	sb.WriteString("\n")

	if len(analysis.Keywords.Missing) > 0 {
		sb.WriteString("Missing Keywords:\n")
		count := min(len(analysis.Keywords.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.Keywords.Missing[i]))
		}
		if len(analysis.Keywords.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.Keywords.Missing)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(analysis.Improvements.Critical) > 0 {
		sb.WriteString("Critical Improvements:\n")
		for _, item := range analysis.Improvements.Critical {
			sb.WriteString(fmt.Sprintf("  • %s\n", item))
		}
	}

	p.printBox("RESUME ANALYSIS", strings.TrimRight(sb.String(), "\n"))
}

// PrintCandidates outputs the screening pool ranked by skill match
func (p *Printer) PrintCandidates(candidates []types.Candidate) {
	if len(candidates) == 0 {
		return
	}

	var sb strings.Builder
	for _, c := range candidates {
		sb.WriteString(fmt.Sprintf("%3d%%  %-18s %-12s %s\n",
			c.SkillMatch, c.Name, c.LastCompany, c.Status))
	}

	p.printBox("CANDIDATE SCREENING", strings.TrimRight(sb.String(), "\n"))
}

// PrintSuggestion outputs the generated suggestion, flagging fallback content
func (p *Printer) PrintSuggestion(text string, fallback bool) {
	title := "AI SUGGESTION"
	if fallback {
		title = "AI SUGGESTION (SAMPLE CONTENT)"
	}
	p.printBox(title, wrapText(text, boxWidth-4))
}

// wrapText folds text at word boundaries to the given width
func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var sb strings.Builder
	lineLen := 0
	for i, word := range words {
		if lineLen > 0 && lineLen+1+len(word) > width {
			sb.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			sb.WriteString(" ")
			lineLen++
		}
		sb.WriteString(word)
		lineLen += len(word)
	}
	return sb.String()
}
