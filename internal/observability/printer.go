// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/calebrw/tablemend/internal/types"
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

// PrintViolations outputs a human-readable summary of detected violations.
func (p *Printer) PrintViolations(tableName string, violations []types.Violation) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Table:      %s\n", tableName))
	sb.WriteString(fmt.Sprintf("Violations: %d\n", len(violations)))

	shown := len(violations)
	if shown > maxItemsToShow {
		shown = maxItemsToShow
	}
	for _, v := range violations[:shown] {
		sb.WriteString(fmt.Sprintf("  row %d, %s [%s]: %s\n", v.Row, v.Column, v.Kind, v.Message))
	}
	if len(violations) > shown {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(violations)-shown))
	}

	p.printBox("Constraint Check", sb.String())
}

// PrintCandidates outputs a human-readable summary of generated candidate repairs.
func (p *Printer) PrintCandidates(candidates []types.CandidateRepair) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Candidates: %d\n", len(candidates)))
	for _, c := range candidates {
		flags := ""
		if c.IsPartialRepair {
			flags = fmt.Sprintf(" (partial, %d rows to edit)", len(c.EditableRows))
		}
		if c.Truncated {
			flags += " (truncated)"
		}
		sb.WriteString(fmt.Sprintf("  %s: %d rows%s\n", c.Name, len(c.Rows), flags))
	}

	p.printBox("Repair Candidates", sb.String())
}

// PrintHighlights outputs the violated columns and rows used for highlighting.
func (p *Printer) PrintHighlights(columns []string, rows []int) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Columns: %s\n", strings.Join(columns, ", ")))

	rowLabels := make([]string, len(rows))
	for i, row := range rows {
		rowLabels[i] = fmt.Sprintf("%d", row+1)
	}
	sb.WriteString(fmt.Sprintf("Rows:    %s\n", strings.Join(rowLabels, ", ")))

	p.printBox("Highlights", sb.String())
}
