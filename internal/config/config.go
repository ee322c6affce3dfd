// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/doccheck/internal/schemas"
	schemafiles "github.com/jonathan/doccheck/schemas"
)

// Guard is the banned-token configuration for one run. It is never mutated after LoadGuard returns.
type Guard struct {
	// BannedTokens holds each configured token once, in first-seen order
	BannedTokens []string

	// RequiredFiles are repository-relative paths that must exist
	RequiredFiles []string
}

// guardFile mirrors the on-disk layout of placeholder_guard.json (or .yaml)
type guardFile struct {
	BannedTokens  []string `json:"banned_tokens" yaml:"banned_tokens"`
	RequiredFiles []string `json:"required_files" yaml:"required_files"`
}

// LoadError represents a guard configuration that could not be read or decoded
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("config error: %s %s: %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("config error: %s %s", e.Message, e.Path)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// LoadGuard loads the banned-token configuration from a JSON or YAML file.
// The format is picked by extension; anything other than .yaml/.yml is read as JSON.
// A missing banned_tokens field yields an empty token set. An unreadable file,
// a parse error or a document that does not match the guard schema is returned as an error.
func LoadGuard(path string) (*Guard, error) {
	if path == "" {
		return nil, &LoadError{Message: "config path is empty"}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read config file", Cause: err}
	}

	decode := json.Unmarshal
	if isYAML(path) {
		decode = yaml.Unmarshal
	}

	var raw any
	if err := decode(data, &raw); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse config file", Cause: err}
	}

	if err := schemas.ValidateValue(schemafiles.PlaceholderGuard, raw); err != nil {
		return nil, fmt.Errorf("invalid guard config %s: %w", path, err)
	}

	var file guardFile
	if err := decode(data, &file); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to decode config file", Cause: err}
	}

	return &Guard{
		BannedTokens:  uniqueStrings(file.BannedTokens),
		RequiredFiles: uniqueStrings(file.RequiredFiles),
	}, nil
}

// RequiredAll merges the configured required files with extra, dropping
// empty entries and duplicates. Configured files come first.
func (g *Guard) RequiredAll(extra []string) []string {
	all := make([]string, 0, len(g.RequiredFiles)+len(extra))
	for _, rel := range append(slices.Clone(g.RequiredFiles), extra...) {
		if rel != "" {
			all = append(all, rel)
		}
	}
	return uniqueStrings(all)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// uniqueStrings collapses duplicates, keeping the first occurrence of each value.
func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
