package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Environment variables that override the default paths.
const (
	EnvRoot   = "DOCCHECK_ROOT"
	EnvDocs   = "DOCCHECK_DOCS"
	EnvConfig = "DOCCHECK_CONFIG"
)

// Default locations, relative to the repository root.
var (
	DefaultDocsDir    = "docs"
	DefaultConfigPath = filepath.Join("configs", "quality", "placeholder_guard.json")
)

// Report formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options holds everything a checker run needs. Paths are absolute once Resolve has run.
type Options struct {
	Root       string `validate:"required"`
	DocsDir    string `validate:"required"`
	ConfigPath string `validate:"required"`
	Format     string `validate:"required,oneof=text json"`
	Color      bool
	Verbose    bool

	// Require lists extra required files on top of the guard's required_files
	Require []string

	// AllowPlaceholders switches the banned-token check off
	AllowPlaceholders bool
}

// ExecutableRoot returns the repository root implied by the running binary's
// location: the parent of the directory holding the executable
// (e.g. <repo>/bin/doccheck or <repo>/ci/doccheck).
func ExecutableRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}

// MergeWithDefaults returns a new Options with empty string fields filled from defaults.
// Bool fields and Require are taken from o as-is.
func (o Options) MergeWithDefaults(defaults Options) Options {
	result := o

	if result.Root == "" {
		result.Root = defaults.Root
	}
	if result.DocsDir == "" {
		result.DocsDir = defaults.DocsDir
	}
	if result.ConfigPath == "" {
		result.ConfigPath = defaults.ConfigPath
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}

	return result
}

// FromEnv returns Options populated from the DOCCHECK_* variables visible through lookup.
func FromEnv(lookup func(string) (string, bool)) Options {
	var o Options
	if v, ok := lookup(EnvRoot); ok {
		o.Root = v
	}
	if v, ok := lookup(EnvDocs); ok {
		o.DocsDir = v
	}
	if v, ok := lookup(EnvConfig); ok {
		o.ConfigPath = v
	}
	return o
}

// Resolve makes Root absolute and derives DocsDir and ConfigPath from it.
// Empty DocsDir/ConfigPath take the defaults; relative ones are joined onto Root.
func (o Options) Resolve() (Options, error) {
	result := o

	if result.Root == "" {
		return result, fmt.Errorf("config error: repository root is empty")
	}
	root, err := filepath.Abs(result.Root)
	if err != nil {
		return result, fmt.Errorf("config error: invalid root %q: %w", result.Root, err)
	}
	result.Root = root

	if result.DocsDir == "" {
		result.DocsDir = DefaultDocsDir
	}
	if !filepath.IsAbs(result.DocsDir) {
		result.DocsDir = filepath.Join(root, result.DocsDir)
	}

	if result.ConfigPath == "" {
		result.ConfigPath = DefaultConfigPath
	}
	if !filepath.IsAbs(result.ConfigPath) {
		result.ConfigPath = filepath.Join(root, result.ConfigPath)
	}

	if result.Format == "" {
		result.Format = FormatText
	}

	return result, nil
}

// Validate checks that the options are complete and the format is known.
func (o *Options) Validate() error {
	validate := validator.New()
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
