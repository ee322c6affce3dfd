package validation

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/doccheck/internal/types"
)

func TestCheckBannedTokens_NoTokens(t *testing.T) {
	violations := CheckBannedTokens("docs/a.md", "TODO everywhere", []string{})
	assert.Empty(t, violations)
}

func TestCheckBannedTokens_Found(t *testing.T) {
	text := "# Setup\n## What\nTODO: fill in\nFIXME later\n"

	violations := CheckBannedTokens("docs/a.md", text, []string{"TODO", "FIXME", "TBD"})
	require.Len(t, violations, 2)

	assert.Equal(t, types.ViolationBannedToken, violations[0].Type)
	assert.Equal(t, types.SeverityError, violations[0].Severity)
	assert.Equal(t, "docs/a.md", violations[0].Path)
	assert.Equal(t, "TODO", violations[0].Target)
	assert.Equal(t, "Banned token 'TODO' found in docs/a.md", violations[0].Details)
	require.NotNil(t, violations[0].LineNumber)
	assert.Equal(t, 3, *violations[0].LineNumber)
	assert.Equal(t, "TODO: fill in", violations[0].Excerpt)

	assert.Equal(t, "FIXME", violations[1].Target)
	assert.Equal(t, 4, *violations[1].LineNumber)
	assert.Equal(t, "FIXME later", violations[1].Excerpt)
}

func TestCheckBannedTokens_OnePerTokenRegardlessOfOccurrences(t *testing.T) {
	text := "TODO one\nTODO two\nand a third TODO\n"

	violations := CheckBannedTokens("docs/a.md", text, []string{"TODO"})
	require.Len(t, violations, 1)
	assert.Equal(t, 1, *violations[0].LineNumber)
}

func TestCheckBannedTokens_CaseSensitive(t *testing.T) {
	violations := CheckBannedTokens("docs/a.md", "todo: lowercase is fine", []string{"TODO"})
	assert.Empty(t, violations)
}

func TestCheckBannedTokens_SubstringMatches(t *testing.T) {
	// No word boundaries: TBD inside a longer word still matches.
	violations := CheckBannedTokens("docs/a.md", "see TBDATA table", []string{"TBD"})
	require.Len(t, violations, 1)
	assert.Equal(t, "TBD", violations[0].Target)
}

func TestCheckBannedTokens_MultiLineToken(t *testing.T) {
	text := "intro\nlorem\nipsum dolor\n"

	violations := CheckBannedTokens("docs/a.md", text, []string{"lorem\nipsum"})
	require.Len(t, violations, 1)
	assert.Equal(t, 2, *violations[0].LineNumber)
}

func TestCheckBannedTokens_Excerpt(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "trims surrounding space", text: "intro\n   - TODO add steps\t\noutro", expected: "- TODO add steps"},
		{name: "last line without newline", text: "intro\nTODO", expected: "TODO"},
		{name: "first line", text: "TODO first\nsecond", expected: "TODO first"},
		{name: "multi-byte text", text: "résumé TODO ✓\n", expected: "résumé TODO ✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := CheckBannedTokens("docs/a.md", tt.text, []string{"TODO"})
			require.Len(t, violations, 1)
			assert.Equal(t, tt.expected, violations[0].Excerpt)
		})
	}
}

func TestCheckBannedTokens_ExcerptIsCapped(t *testing.T) {
	text := "TODO " + strings.Repeat("é", 400)

	violations := CheckBannedTokens("docs/a.md", text, []string{"TODO"})
	require.Len(t, violations, 1)
	assert.Equal(t, types.MaxExcerptRunes, utf8.RuneCountInString(violations[0].Excerpt))
	assert.True(t, strings.HasPrefix(violations[0].Excerpt, "TODO "))
}
