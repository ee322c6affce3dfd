// Package checker provides the high-level orchestration for a documentation completeness run.
package checker

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/jonathan/doccheck/internal/config"
	"github.com/jonathan/doccheck/internal/doctree"
	"github.com/jonathan/doccheck/internal/types"
	"github.com/jonathan/doccheck/internal/validation"
)

// ErrViolations is returned by Verdict when a report contains at least one violation.
var ErrViolations = errors.New("doc completeness check failed")

// Run loads the guard configuration, walks the documentation tree and validates
// every document, returning all violations found. Required files are the guard's
// required_files plus opts.Require. Documents are processed one at a
// time in walk order. Any configuration or filesystem error aborts the run and no
// report is returned.
func Run(opts config.Options, logger *log.Logger) (*types.Report, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	guard, err := config.LoadGuard(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load guard config: %w", err)
	}
	logger.Printf("Loaded %d banned token(s) from %s", len(guard.BannedTokens), opts.ConfigPath)

	report := types.NewReport(opts.Root)

	tokens := guard.BannedTokens
	if opts.AllowPlaceholders {
		tokens = nil
		report.PlaceholdersChecked = false
		logger.Printf("Banned-token check disabled")
	}

	for path, err := range doctree.Walk(opts.DocsDir) {
		if err != nil {
			return nil, fmt.Errorf("failed to walk documentation tree: %w", err)
		}

		violations, err := validation.ValidateFile(path, validation.RequiredSections, tokens)
		if err != nil {
			return nil, fmt.Errorf("failed to validate %s: %w", path, err)
		}

		report.DocumentsScanned++
		for _, v := range violations {
			report.Add(v)
		}
		logger.Printf("Checked %s (%d violation(s))", path, len(violations))
	}

	for _, rel := range guard.RequiredAll(opts.Require) {
		missing, err := requiredFileMissing(opts.Root, rel)
		if err != nil {
			return nil, err
		}
		if missing {
			report.Add(types.Violation{
				Type:     types.ViolationMissingFile,
				Severity: types.SeverityError,
				Path:     rel,
				Target:   rel,
				Details:  fmt.Sprintf("Missing required file %s", rel),
			})
		}
	}

	logger.Printf("Scanned %d document(s), found %d violation(s)", report.DocumentsScanned, report.Count())
	return report, nil
}

// requiredFileMissing reports whether rel, taken relative to root, does not exist.
func requiredFileMissing(root, rel string) (bool, error) {
	path := rel
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, filepath.FromSlash(rel))
	}

	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	return false, fmt.Errorf("failed to check required file %s: %w", rel, err)
}

// Verdict converts a report into the run's outcome: nil when it passed,
// an error wrapping ErrViolations otherwise.
func Verdict(report *types.Report) error {
	if report.Passed() {
		return nil
	}
	return fmt.Errorf("%w: %d violation(s)", ErrViolations, report.Count())
}
