package validation

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/doccheck/internal/types"
)

// ValidateDocument runs the section check and then the banned-token check
// against one document's text. It has no side effects.
func ValidateDocument(path, text string, sections, tokens []string) []types.Violation {
	var allViolations []types.Violation

	// 1. Required sections
	allViolations = append(allViolations, CheckSections(path, text, sections)...)

	// 2. Banned tokens
	allViolations = append(allViolations, CheckBannedTokens(path, text, tokens)...)

	return allViolations
}

// lineEndings turns CRLF and lone CR into LF
var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ReadDocument reads the whole file at path. The handle is closed before returning.
// Content that is not valid UTF-8 is rejected. Line endings are normalised to "\n".
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileReadError{
			Message: fmt.Sprintf("failed to read document: %s", path),
			Cause:   err,
		}
	}

	if !utf8.Valid(data) {
		return "", &FileReadError{
			Message: fmt.Sprintf("document is not valid UTF-8: %s", path),
		}
	}

	return lineEndings.Replace(string(data)), nil
}

// ValidateFile reads path and validates its content.
func ValidateFile(path string, sections, tokens []string) ([]types.Violation, error) {
	text, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}
	return ValidateDocument(path, text, sections, tokens), nil
}
