// Package observability provides the run report and verbose-mode output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skill-cleaner/internal/cleaning"
	"github.com/jonathan/skill-cleaner/internal/keywords"
	"github.com/jonathan/skill-cleaner/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the report and verbose mode
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
		if runes := []rune(line); len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSummary prints the completion banner and the counts of a cleaning run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSummary(s cleaning.Summary) {
	fmt.Fprintln(p.out, "\n🎉 Cleaning Complete!")
	fmt.Fprintf(p.out, "Roles cleaned → %s\n", s.RolesOutput)
	fmt.Fprintf(p.out, "Skills cleaned → %s\n", s.SkillsOutput)
	fmt.Fprintf(p.out, "Mainstream roles kept: %d\n", s.RolesKept)
	fmt.Fprintf(p.out, "Empty roles: %d\n", s.RolesEmpty)
	fmt.Fprintf(p.out, "Skills kept: %d\n", s.SkillsKept)
}

// PrintRoleBreakdown outputs how many skills each role kept, for the first few roles.
func (p *Printer) PrintRoleBreakdown(original, cleaned types.RoleSkills) {
	if len(cleaned) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Roles: %d\n\n", len(cleaned)))

	count := min(len(cleaned), maxItemsToShow)
	for i := 0; i < count; i++ {
		role := cleaned[i]
		total := len(role.Skills)
		if skills, ok := original.Get(role.Name); ok {
			total = len(skills)
		}
		sb.WriteString(fmt.Sprintf("  • %s: %d/%d kept\n", role.Name, len(role.Skills), total))
	}
	if len(cleaned) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(cleaned)-maxItemsToShow))
	}

	p.printBox("ROLE BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintClassification prints one tab-separated line per skill: the skill, whether it is
// mainstream, and the keyword that matched.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintClassification(skills []string) {
	for _, skill := range skills {
		key, ok := keywords.Match(skill)
		fmt.Fprintf(p.out, "%s\t%t\t%s\n", skill, ok, key)
	}
}

// PrintKeywords prints the keyword table, one keyword per line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintKeywords() {
	for _, key := range keywords.All() {
		fmt.Fprintln(p.out, key)
	}
}
