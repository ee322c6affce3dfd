// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/doccheck/internal/types"
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
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRunSummary outputs a human-readable summary of a checker run:
// totals per violation type and the documents with the most violations.
func (p *Printer) PrintRunSummary(report *types.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Root:             %s\n", report.Root))
	sb.WriteString(fmt.Sprintf("Documents:        %d\n", report.DocumentsScanned))
	sb.WriteString(fmt.Sprintf("Missing sections: %d\n", len(report.MissingSections)))
	sb.WriteString(fmt.Sprintf("Banned tokens:    %d\n", len(report.BannedTokens)))
	sb.WriteString(fmt.Sprintf("Missing files:    %d", len(report.MissingFiles)))
	if !report.PlaceholdersChecked {
		sb.WriteString("\nBanned-token check: skipped")
	}

	offenders := worstDocuments(report)
	if len(offenders) > 0 {
		sb.WriteString("\n\nMost violations:\n")
		count := min(len(offenders), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (%d)", offenders[i].path, offenders[i].count))
			if i < count-1 {
				sb.WriteString("\n")
			}
		}
		if len(offenders) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("\n  ... and %d more", len(offenders)-maxItemsToShow))
		}
	}

	p.printBox("RUN SUMMARY", sb.String())
}

type documentCount struct {
	path  string
	count int
}

// worstDocuments ranks documents by violation count, highest first, ties by path.
func worstDocuments(report *types.Report) []documentCount {
	counts := make(map[string]int)
	for _, v := range report.All() {
		if v.Type == types.ViolationMissingFile {
			continue
		}
		counts[v.Path]++
	}

	ranked := make([]documentCount, 0, len(counts))
	for path, n := range counts {
		ranked = append(ranked, documentCount{path: path, count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].path < ranked[j].path
	})
	return ranked
}
