// Package reporting renders checker reports as text or JSON.
package reporting

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/jonathan/doccheck/internal/schemas"
	"github.com/jonathan/doccheck/internal/types"
	schemafiles "github.com/jonathan/doccheck/schemas"
)

// Report lines
const (
	FailureHeader  = "Doc completeness check failed:"
	SuccessMessage = "Doc completeness check passed."
)

// reportNamespace seeds the name-based report IDs
var reportNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/jonathan/doccheck/report"))

// Printer writes reports to out. Schema warnings for JSON output go to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	color  bool
}

// NewPrinter creates a Printer. When useColor is false the output is plain bytes
// regardless of the terminal.
func NewPrinter(out, errOut io.Writer, useColor bool) *Printer {
	if errOut == nil {
		errOut = io.Discard
	}
	return &Printer{out: out, errOut: errOut, color: useColor}
}

// Print renders r in the given format ("text" or "json").
func (p *Printer) Print(format string, r *types.Report) error {
	switch format {
	case "", "text":
		return p.PrintText(r)
	case "json":
		return p.PrintJSON(r)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// PrintText writes the human-readable report.
func (p *Printer) PrintText(r *types.Report) error {
	if r.Passed() {
		_, err := fmt.Fprintln(p.out, p.paint(SuccessMessage, color.FgGreen))
		return err
	}

	var sb strings.Builder
	sb.WriteString(p.paint(FailureHeader, color.FgRed, color.Bold))
	sb.WriteString("\n")
	writeViolationLines(&sb, r)

	_, err := io.WriteString(p.out, sb.String())
	return err
}

// PrintJSON writes the machine-readable report. The rendered document is checked
// against the report schema; a mismatch is reported on errOut and does not fail the call.
func (p *Printer) PrintJSON(r *types.Report) error {
	data, err := MarshalJSON(r)
	if err != nil {
		return err
	}

	if schemaContent, err := schemas.Embedded(schemafiles.Report); err != nil {
		_, _ = fmt.Fprintf(p.errOut, "Warning: Could not validate report against schema: %v\n", err)
	} else if err := schemas.ValidateJSONString(schemaContent, string(data)); err != nil {
		_, _ = fmt.Fprintf(p.errOut, "Warning: Generated report does not validate against schema: %v\n", err)
	}

	_, err = p.out.Write(append(data, '\n'))
	return err
}

// jsonReport is the JSON layout of a report
type jsonReport struct {
	ReportID string `json:"report_id"`
	*types.Report
	Passed bool `json:"passed"`
}

// MarshalJSON renders r as indented JSON with its report ID and verdict.
func MarshalJSON(r *types.Report) ([]byte, error) {
	data, err := json.MarshalIndent(jsonReport{
		ReportID: ReportID(r).String(),
		Report:   r,
		Passed:   r.Passed(),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report to JSON: %w", err)
	}
	return data, nil
}

// Text returns the uncolored text report.
func Text(r *types.Report) string {
	if r.Passed() {
		return SuccessMessage + "\n"
	}
	var sb strings.Builder
	sb.WriteString(FailureHeader + "\n")
	writeViolationLines(&sb, r)
	return sb.String()
}

// ReportID derives a version 5 UUID from the root and the text report, so two
// runs over an unchanged tree produce the same ID.
func ReportID(r *types.Report) uuid.UUID {
	return uuid.NewSHA1(reportNamespace, []byte(r.Root+"\n"+Text(r)))
}

func writeViolationLines(sb *strings.Builder, r *types.Report) {
	for _, v := range r.MissingSections {
		sb.WriteString(fmt.Sprintf(" - Missing section %s in %s\n", v.Target, v.Path))
	}
	for _, v := range r.BannedTokens {
		sb.WriteString(fmt.Sprintf(" - Banned token '%s' found in %s\n", v.Target, v.Path))
	}
	for _, v := range r.MissingFiles {
		sb.WriteString(fmt.Sprintf(" - Missing required file %s\n", v.Path))
	}
}

func (p *Printer) paint(s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if p.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}
