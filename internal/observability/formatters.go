// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jonathan/resume-generator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// maxLineWidth is the longest content line printed inside a box
	maxLineWidth = boxWidth - 4
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out   io.Writer
	box   lipgloss.Style
	title lipgloss.Style
}

// NewPrinter creates a new Printer that writes to the given writer.
// Styles are bound to out so colour is dropped when it is not a terminal.
func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out: out,
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1).
			Width(boxWidth - 2),
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")),
	}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = truncate(line, maxLineWidth)
	}

	body := p.title.Render(title) + "\n\n" + strings.Join(lines, "\n")
	fmt.Fprintln(p.out, p.box.Render(body))
}

// PrintProfile outputs a human-readable summary of the loaded profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	personal := profile.Personal

	sb.WriteString(fmt.Sprintf("Name:     %s %s\n", personal.FirstName, personal.LastName))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", personal.Title))
	if profile.Personal.HasWebsite() {
		sb.WriteString(fmt.Sprintf("Website:  %s\n", personal.WebsiteURL))
	} else {
		sb.WriteString("Website:  (none, QR code skipped)\n")
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Skills:   %d technical, %d leadership\n",
		len(profile.Skills.Technical), len(profile.Skills.Leadership)))
	sb.WriteString(fmt.Sprintf("Degree:   %s\n", profile.Education.Degree))
	sb.WriteString("\n")

	if len(profile.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("Experience (%d companies, %d positions):\n",
			len(profile.Experience), profile.PositionCount()))
		count := min(len(profile.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			company := profile.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", company.Company))
			if n := len(company.Positions); n != 1 {
				sb.WriteString(fmt.Sprintf(" (%d positions)", n))
			}
			sb.WriteString("\n")
		}
		if len(profile.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Experience)-maxItemsToShow))
		}
	}

	p.printBox("PROFILE SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// StepStatus is one row of the run summary
type StepStatus struct {
	Step   string
	Status string
}

// PrintRunSummary outputs the run ID and the final status of each step.
func (p *Printer) PrintRunSummary(runID string, steps []StepStatus) {
	if len(steps) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run: %s\n\n", runID))
	for i, s := range steps {
		mark := "✓"
		if s.Status != "completed" {
			mark = "-"
		}
		sb.WriteString(fmt.Sprintf("%s %-18s %s", mark, s.Step, s.Status))
		if i < len(steps)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RUN SUMMARY", sb.String())
}

// PrintWarnings outputs the warnings collected during a run.
func (p *Printer) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		p.printBox("WARNINGS", "✅ NO WARNINGS")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d warnings:\n\n", len(warnings)))
	for i, w := range warnings {
		sb.WriteString(fmt.Sprintf("⚠ %s", w))
		if i < len(warnings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("WARNINGS", sb.String())
}

func truncate(line string, width int) string {
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	return string(runes[:width-3]) + "..."
}
