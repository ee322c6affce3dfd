package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/doccheck/internal/types"
)

func TestValidateDocument_Clean(t *testing.T) {
	violations := ValidateDocument("docs/a.md", completeDoc(), RequiredSections, []string{"TODO", "FIXME"})
	assert.Empty(t, violations)
}

func TestValidateDocument_SectionsBeforeTokens(t *testing.T) {
	text := "## What\n## Why\n## How\n## Verify\n## Acceptance Criteria\nFIXME TODO\n"

	violations := ValidateDocument("docs/a.md", text, RequiredSections, []string{"TODO", "FIXME"})
	require.Len(t, violations, 3)

	assert.Equal(t, types.ViolationMissingSection, violations[0].Type)
	assert.Equal(t, "## Troubleshoot", violations[0].Target)
	assert.Equal(t, types.ViolationBannedToken, violations[1].Type)
	assert.Equal(t, "TODO", violations[1].Target)
	assert.Equal(t, "FIXME", violations[2].Target)
}

func TestValidateDocument_DoesNotModifyInputs(t *testing.T) {
	sections := []string{"## What"}
	tokens := []string{"TODO"}

	_ = ValidateDocument("docs/a.md", "TODO", sections, tokens)
	assert.Equal(t, []string{"## What"}, sections)
	assert.Equal(t, []string{"TODO"}, tokens)
}

func TestReadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.md")
	require.NoError(t, os.WriteFile(path, []byte("## What\nhéllo\n"), 0644))

	text, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "## What\nhéllo\n", text)
}

func TestReadDocument_NormalisesLineEndings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "windows.md")
	require.NoError(t, os.WriteFile(path, []byte("## What\r\n## Why\r\nfoo\r\nbar\rbaz"), 0644))

	text, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "## What\n## Why\nfoo\nbar\nbaz", text)
}

func TestValidateFile_CRLFDocumentMatchesNewlineRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "windows.md")
	require.NoError(t, os.WriteFile(path, []byte("## What\r\n## Why\r\nfoo\r\nbar"), 0644))

	violations, err := ValidateFile(path, []string{"## What\n## Why"}, []string{"foo\nbar"})
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, types.ViolationBannedToken, violations[0].Type)
	assert.Equal(t, 3, *violations[0].LineNumber)
}

func TestReadDocument_FileNotFound(t *testing.T) {
	_, err := ReadDocument("/nonexistent/file.md")
	require.Error(t, err)

	var fileErr *FileReadError
	assert.ErrorAs(t, err, &fileErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadDocument_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.md")
	require.NoError(t, os.WriteFile(path, []byte{'#', ' ', 0xff, 0xfe, '\n'}, 0644))

	_, err := ReadDocument(path)
	var fileErr *FileReadError
	require.ErrorAs(t, err, &fileErr)
	assert.Contains(t, err.Error(), "not valid UTF-8")
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.md")
	require.NoError(t, os.WriteFile(path, []byte(completeDoc()+"TODO: fill in\n"), 0644))

	violations, err := ValidateFile(path, RequiredSections, []string{"TODO"})
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, path, violations[0].Path)
}
