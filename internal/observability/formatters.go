// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jonathan/roster-reconciler/internal/registry"
	"github.com/jonathan/roster-reconciler/internal/report"
	"github.com/jonathan/roster-reconciler/internal/types"
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

// printBox prints a formatted box with a title and content. Long lines are
// truncated by rune, never mid-character.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		if runes := []rune(line); len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRoster outputs a summary of the extracted master roster.
func (p *Printer) PrintRoster(path string, records []types.RosterRecord) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Source:   %s\n", filepath.Base(path)))
	sb.WriteString(fmt.Sprintf("Students: %d\n", len(records)))

	if len(records) > 0 {
		sb.WriteString("\n")
		count := min(len(records), maxItemsToShow)
		for i := 0; i < count; i++ {
			record := records[i]
			sb.WriteString(fmt.Sprintf("  • %s  %s\n", record.Name, record.ID))
		}
		if len(records) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(records)-maxItemsToShow))
		}
	}

	p.printBox("MASTER ROSTER", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSchemaTable outputs the active category layouts, external overrides
// included.
func (p *Printer) PrintSchemaTable(table *registry.Table) {
	if table == nil {
		return
	}

	var sb strings.Builder
	tags := table.Tags()
	for i, tag := range tags {
		schema, err := table.SchemaFor(tag)
		if err != nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s\n", tag.Label()))
		sb.WriteString(fmt.Sprintf("  sheets %v  ids %v  skip %d%s", schema.Sheets, schema.IDColumns, schema.SkipRows, schemaFlags(schema)))
		if i < len(tags)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CATEGORY SCHEMA TABLE", sb.String())
}

func schemaFlags(schema registry.CategorySchema) string {
	var flags []string
	if schema.Header != nil {
		flags = append(flags, "header")
	}
	if schema.CaptureAux {
		flags = append(flags, "aux")
	}
	if schema.StripGPrefix {
		flags = append(flags, "G-prefix")
	}
	if len(flags) == 0 {
		return ""
	}
	return "  [" + strings.Join(flags, " ") + "]"
}

// PrintMatches outputs the matched students with their categories.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintMatches(results []types.MatchResult) {
	if len(results) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO MATCHES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		sb.WriteString(fmt.Sprintf("• %s  %s\n", result.Student.Name, result.Category.Tag.Label()))
	}
	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(results)-maxItemsToShow))
	}

	p.printBox("MATCHED STUDENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCategoryCounts outputs the per-category tally in deployment order.
func (p *Printer) PrintCategoryCounts(counts map[types.CategoryTag]int) {
	var sb strings.Builder
	for _, tag := range registry.AllTags() {
		if n := counts[tag]; n > 0 {
			sb.WriteString(fmt.Sprintf("%-4d %s\n", n, tag.Label()))
		}
	}
	if sb.Len() == 0 {
		sb.WriteString("(no matches)")
	}

	p.printBox("MATCHES BY CATEGORY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFailures outputs the category sources that were skipped.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFailures(failures []report.SourceFailure) {
	if len(failures) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL SOURCES READ")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skipped %d sources:\n\n", len(failures)))

	for i, failure := range failures {
		detail := failure.Error
		if runes := []rune(detail); len(runes) > 45 {
			detail = string(runes[:42]) + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s (%s)\n", failure.Tag.Label(), filepath.Base(failure.Path)))
		sb.WriteString(fmt.Sprintf("  %s\n", detail))
		if i < len(failures)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SKIPPED SOURCES", sb.String())
}
