// Package main provides the entry point for the doccheck documentation completeness linter.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/jonathan/doccheck/internal/checker"
	"github.com/jonathan/doccheck/internal/config"
)

// Process exit codes
const (
	exitOK         = 0
	exitViolations = 1
	exitFatal      = 2
)

func main() {
	if root, err := config.ExecutableRoot(); err == nil {
		_ = loadDotEnv(root)
	}

	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// loadDotEnv loads <root>/.env if it exists. Variables already in the
// environment are left untouched.
func loadDotEnv(root string) error {
	path := filepath.Join(root, ".env")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return godotenv.Load(path)
}

// execute runs the root command and maps its outcome to a process exit code.
// Violations have already been reported on stdout, so only other errors are printed.
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, checker.ErrViolations) {
			return exitViolations
		}
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFatal
	}
	return exitOK
}
