// Purpose: Provide CLI error formatting, hints, and version output.
// Exports: none (package-private helpers).
// Role: Shared error/exit utilities for the cmd package.
// Invariants: exitErr always exits with code 1 after printing.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sandover/unreachable/internal/probe"
)

func printVersion() {
	fmt.Println("probe " + version)
}

func usageError(msg string) error {
	return errors.New(msg)
}

func exitErr(err error, opts *probe.GlobalOptions) {
	fmt.Fprintln(os.Stderr, "error:", err)
	if opts == nil || !opts.Quiet {
		if strings.HasPrefix(err.Error(), "usage:") || strings.Contains(err.Error(), "unknown") {
			fmt.Fprintln(os.Stderr, "hint: run `probe --help`")
		} else if errors.Is(err, probe.ErrInvalidNumber) {
			fmt.Fprintln(os.Stderr, "hint: demo takes base-10 integers, e.g. `probe demo -- -3 0 7`")
		} else if errors.Is(err, probe.ErrInvalidColor) {
			fmt.Fprintln(os.Stderr, "hint: --color takes auto, always or never")
		}
	}
	os.Exit(1)
}
