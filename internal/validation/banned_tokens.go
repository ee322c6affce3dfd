// Package validation checks documentation files for required sections and banned tokens.
package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/doccheck/internal/types"
)

// CheckBannedTokens reports each token that occurs anywhere in text.
// Matching is a literal, case-sensitive substring test with no word boundaries,
// so a token repeated many times still yields one violation per (document, token).
func CheckBannedTokens(path, text string, tokens []string) []types.Violation {
	violations := []types.Violation{}

	for _, token := range tokens {
		idx := strings.Index(text, token)
		if idx < 0 {
			continue
		}
		line := lineAt(text, idx)
		violations = append(violations, types.Violation{
			Type:       types.ViolationBannedToken,
			Severity:   types.SeverityError,
			Path:       path,
			Target:     token,
			Details:    fmt.Sprintf("Banned token '%s' found in %s", token, path),
			LineNumber: intPtr(line),
			Excerpt:    excerptAt(text, idx),
		})
	}

	return violations
}

// lineAt returns the 1-based line number of byte offset idx
func lineAt(text string, idx int) int {
	return strings.Count(text[:idx], "\n") + 1
}

// excerptAt returns the trimmed line holding byte offset idx, cut to types.MaxExcerptRunes
func excerptAt(text string, idx int) string {
	start := strings.LastIndex(text[:idx], "\n") + 1
	end := len(text)
	if n := strings.Index(text[idx:], "\n"); n >= 0 {
		end = idx + n
	}

	excerpt := []rune(strings.TrimSpace(text[start:end]))
	if len(excerpt) > types.MaxExcerptRunes {
		excerpt = excerpt[:types.MaxExcerptRunes]
	}
	return string(excerpt)
}

func intPtr(i int) *int {
	return &i
}
