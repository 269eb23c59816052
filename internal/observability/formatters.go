// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/ats-tracker/internal/types"
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeTermList appends up to limit terms as bullet lines.
func writeTermList(sb *strings.Builder, terms []string, limit int) {
	count := min(len(terms), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", terms[i]))
	}
	if len(terms) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(terms)-limit))
	}
}

// PrintJobModel outputs a human-readable summary of an extracted job.
func (p *Printer) PrintJobModel(job *types.JobModel) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Terms:    %d\n", len(job.Terms)))
	sb.WriteString("\n")

	if len(job.RequiredTerms) > 0 {
		sb.WriteString("Required Terms:\n")
		writeTermList(&sb, job.RequiredTerms, maxItemsToShow)
		sb.WriteString("\n")
	}

	if len(job.PreferredTerms) > 0 {
		sb.WriteString("Preferred Terms:\n")
		writeTermList(&sb, job.PreferredTerms, 3)
	}

	p.printBox("EXTRACTED JOB", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResumeModel outputs a human-readable summary of an extracted resume.
func (p *Printer) PrintResumeModel(resume *types.ResumeModel) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Terms:    %d\n", len(resume.Terms)))
	if len(resume.Titles) > 0 {
		sb.WriteString("Titles:\n")
		writeTermList(&sb, resume.Titles, 3)
	}
	sb.WriteString("\n")

	sb.WriteString("Sections:\n")
	names := make([]string, 0, len(resume.Sections))
	for name := range resume.Sections {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("  • %-16s %d terms\n", name, len(resume.SectionTerms[name])))
	}

	p.printBox("EXTRACTED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs the score breakdown for one resume/job pair.
func (p *Printer) PrintMatchResult(resumeName string, result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resume:   %s\n", resumeName))
	sb.WriteString(fmt.Sprintf("Final:    %.3f\n", result.Scores.Final))
	sb.WriteString("\n")

	sb.WriteString("Factors:\n")
	sb.WriteString(fmt.Sprintf("  must-have coverage     %.3f\n", result.Scores.MustHave))
	sb.WriteString(fmt.Sprintf("  nice-to-have coverage  %.3f\n", result.Scores.NiceToHave))
	sb.WriteString(fmt.Sprintf("  title alignment        %.3f\n", result.Scores.TitleAlignment))
	sb.WriteString(fmt.Sprintf("  evidence strength      %.3f\n", result.Scores.EvidenceStrength))
	sb.WriteString(fmt.Sprintf("  recency               %.3f\n", result.Scores.Recency))
	sb.WriteString(fmt.Sprintf("  discoverability       %.3f\n", result.Scores.SearchDiscoverability))
	sb.WriteString("\n")

	if len(result.MatchedTerms) > 0 {
		sb.WriteString(fmt.Sprintf("Matched (%d):\n", len(result.MatchedTerms)))
		writeTermList(&sb, result.MatchedTerms, maxItemsToShow)
	}
	if len(result.MissingTerms) > 0 {
		sb.WriteString(fmt.Sprintf("Missing (%d):\n", len(result.MissingTerms)))
		writeTermList(&sb, result.MissingTerms, maxItemsToShow)
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKnockout outputs knockout failures, or a pass marker when clean.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintKnockout(knockout types.Knockout) {
	if knockout.Passed {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ KNOCKOUT CHECKS PASSED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d failures:\n\n", len(knockout.Failures)))
	for i, reason := range knockout.Failures {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", reason))
		if i < len(knockout.Failures)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("KNOCKOUT FAILURES", sb.String())
}
