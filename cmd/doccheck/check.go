package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jonathan/doccheck/internal/checker"
	"github.com/jonathan/doccheck/internal/config"
	"github.com/jonathan/doccheck/internal/observability"
	"github.com/jonathan/doccheck/internal/reporting"
	"github.com/jonathan/doccheck/internal/validation"
)

type checkFlags struct {
	root       string
	docs       string
	configPath string
	format     string
	list       bool
	noColor    bool
	verbose    bool

	require           []string
	allowPlaceholders bool
}

func newRootCmd() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "doccheck",
		Short: "Check documentation files for required sections and banned tokens",
		Long: `Scans every .md file under the docs directory and verifies that each contains
the required section headings and none of the banned tokens listed in the guard config.

With no arguments the repository root is the parent of the directory holding
the doccheck binary, docs are read from <root>/docs and banned tokens from
<root>/configs/quality/placeholder_guard.json.

Settings are taken from flags first, then the DOCCHECK_ROOT, DOCCHECK_DOCS and
DOCCHECK_CONFIG environment variables, then the defaults above. A .env file in
the default root is loaded into the environment at startup; variables already
set win over it. A .env in the working directory is not read.

Exit codes:
  0  no violations
  1  violations found (report printed on stdout)
  2  configuration or filesystem error`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.root, "root", "", "Repository root (default: parent of the binary's directory, or $"+config.EnvRoot+")")
	cmd.Flags().StringVar(&flags.docs, "docs", "", "Documentation directory, relative to root (default: docs, or $"+config.EnvDocs+")")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "Guard config (.json or .yaml), relative to root (default: configs/quality/placeholder_guard.json, or $"+config.EnvConfig+")")
	cmd.Flags().StringVar(&flags.format, "format", config.FormatText, "Report format: text or json")
	cmd.Flags().BoolVar(&flags.list, "list", false, "Print the required section markers and exit")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log progress and a run summary to stderr")
	cmd.Flags().StringArrayVar(&flags.require, "require", nil, "Additional required file, relative to root (repeatable)")
	cmd.Flags().BoolVar(&flags.allowPlaceholders, "allow-placeholders", false, "Skip the banned-token check")

	return cmd
}

func runCheck(cmd *cobra.Command, flags *checkFlags) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	if flags.list {
		for _, marker := range validation.RequiredSections {
			_, _ = fmt.Fprintln(out, marker)
		}
		return nil
	}

	opts, err := resolveOptions(flags)
	if err != nil {
		return err
	}

	var logger *log.Logger
	if opts.Verbose {
		logger = log.New(errOut, "doccheck: ", 0)
	}

	report, err := checker.Run(opts, logger)
	if err != nil {
		return err
	}

	useColor := opts.Color && out == os.Stdout && !color.NoColor
	printer := reporting.NewPrinter(out, errOut, useColor)
	if err := printer.Print(opts.Format, report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if opts.Verbose {
		observability.NewPrinter(errOut).PrintRunSummary(report)
	}

	return checker.Verdict(report)
}

// resolveOptions merges flags over DOCCHECK_* environment variables over the
// binary-relative defaults, then resolves and validates the result.
func resolveOptions(flags *checkFlags) (config.Options, error) {
	fromFlags := config.Options{
		Root:       flags.root,
		DocsDir:    flags.docs,
		ConfigPath: flags.configPath,
		Format:     flags.format,
		Color:      !flags.noColor,
		Verbose:    flags.verbose,

		Require:           flags.require,
		AllowPlaceholders: flags.allowPlaceholders,
	}
	merged := fromFlags.MergeWithDefaults(config.FromEnv(os.LookupEnv))

	if merged.Root == "" {
		root, err := config.ExecutableRoot()
		if err != nil {
			return config.Options{}, err
		}
		merged.Root = root
	}

	opts, err := merged.Resolve()
	if err != nil {
		return config.Options{}, err
	}
	if err := opts.Validate(); err != nil {
		return config.Options{}, err
	}
	return opts, nil
}
