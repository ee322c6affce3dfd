package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/doccheck/internal/types"
)

// RequiredSections lists the heading markers every document must contain.
var RequiredSections = []string{
	"## What",
	"## Why",
	"## How",
	"## Verify",
	"## Troubleshoot",
	"## Acceptance Criteria",
}

// CheckSections reports each marker in sections that does not appear in text.
// A marker counts as present wherever it occurs, including code blocks and prose;
// heading level, line position and section order are not inspected.
func CheckSections(path, text string, sections []string) []types.Violation {
	violations := []types.Violation{}

	for _, marker := range sections {
		if strings.Contains(text, marker) {
			continue
		}
		violations = append(violations, types.Violation{
			Type:     types.ViolationMissingSection,
			Severity: types.SeverityError,
			Path:     path,
			Target:   marker,
			Details:  fmt.Sprintf("Missing section %s in %s", marker, path),
		})
	}

	return violations
}
