// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobfit/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSkillsToShow is the default number of skills to display in lists
	maxSkillsToShow = 5
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

// PrintResult outputs the full human-readable breakdown of a score.
func (p *Printer) PrintResult(result *types.ScoreResult) {
	if result == nil {
		return
	}

	p.printOverall(result)
	p.printSide("JOB → USER FIT", result.JobToUserFit)
	p.printSide("USER → JOB FIT", result.UserToJobFit)
	p.printInterpretation(&result.Interpretation)
}

func (p *Printer) printOverall(result *types.ScoreResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:  %d / 100  (%s)\n", result.OverallScore, result.OverallLabel))
	sb.WriteString(fmt.Sprintf("Job→User: %d / 50   (%s)\n", result.JobToUserFit.Score, result.JobToUserFit.Label))
	sb.WriteString(fmt.Sprintf("User→Job: %d / 50   (%s)", result.UserToJobFit.Score, result.UserToJobFit.Label))

	if result.DealBreakerTriggered != "" {
		sb.WriteString(fmt.Sprintf("\n\nDeal-breaker: %s", result.DealBreakerTriggered))
	}

	p.printBox("FIT SCORE", sb.String())
}

func (p *Printer) printSide(title string, fit types.FitResult) {
	if len(fit.Breakdown) == 0 {
		return
	}

	var sb strings.Builder
	for i, c := range fit.Breakdown {
		sb.WriteString(fmt.Sprintf("%-20s %2d / 50", c.Criteria, c.Score))
		if c.MissingData {
			sb.WriteString("  (missing data)")
		}
		sb.WriteString("\n")

		rationale := c.Rationale
		if len(rationale) > boxWidth-8 {
			rationale = rationale[:boxWidth-11] + "..."
		}
		sb.WriteString(fmt.Sprintf("    %s\n", rationale))

		if len(c.MatchedSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    matched: %s\n", joinCapped(c.MatchedSkills)))
		}
		if len(c.MissingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    missing: %s\n", joinCapped(c.MissingSkills)))
		}
		if i < len(fit.Breakdown)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printInterpretation(interp *types.Interpretation) {
	var sb strings.Builder

	sb.WriteString(interp.Summary)
	sb.WriteString(fmt.Sprintf("\n\nAction: %s", interp.Action))

	if len(interp.Questions) > 0 {
		sb.WriteString("\n\nQuestions to ask:\n")
		for _, q := range interp.Questions {
			sb.WriteString(fmt.Sprintf("  • %s\n", q))
		}
	}

	p.printBox("INTERPRETATION", strings.TrimSuffix(sb.String(), "\n"))
}

// joinCapped joins a skill list, truncating past maxSkillsToShow.
func joinCapped(skills []string) string {
	if len(skills) <= maxSkillsToShow {
		return strings.Join(skills, ", ")
	}
	shown := strings.Join(skills[:maxSkillsToShow], ", ")
	return fmt.Sprintf("%s ... and %d more", shown, len(skills)-maxSkillsToShow)
}
