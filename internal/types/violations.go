// Package types provides type definitions for structured data used throughout the doccheck system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Violation types
const (
	ViolationMissingSection = "missing_section"
	ViolationBannedToken    = "banned_token"
	ViolationMissingFile    = "missing_file"
)

// SeverityError is the only severity the checker emits; every violation fails the run.
const SeverityError = "error"

// Violation represents a single failed (document, rule) check
type Violation struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Target   string `json:"target"` // section marker, banned token or required file
	Details  string `json:"details"`

	// LineNumber is the first line containing a banned token (1-based)
	LineNumber *int `json:"line_number,omitempty"`

	// Excerpt is that line, trimmed and cut to MaxExcerptRunes
	Excerpt string `json:"excerpt,omitempty"`
}

// MaxExcerptRunes caps the length of Violation.Excerpt
const MaxExcerptRunes = 240
