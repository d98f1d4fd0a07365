// Purpose: Render help and explain text with ANSI marker substitution.
// Exports: UsageText, ExplainMarkdown.
// Role: Documentation rendering for CLI output.
// Invariants: Marker substitution is deterministic and idempotent.
// Notes: Neither text may quote the verified-build diagnostic; release
// binaries must not carry it.
package probe

import (
	_ "embed"
	"strings"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiGreen = "\x1b[32m"
	ansiCyan  = "\x1b[36m"
)

//go:embed help.txt
var helpTextRaw string

//go:embed explain.md
var explainMarkdown string

// UsageText returns the help text, colorized if color is true.
func UsageText(color bool) string {
	return applyMarkers(helpTextRaw, color)
}

// ExplainMarkdown returns the marker contract as markdown.
func ExplainMarkdown() string {
	return explainMarkdown
}

// applyMarkers replaces {{MARKER}} tokens with ANSI codes or strips them.
func applyMarkers(text string, color bool) string {
	replacements := []struct {
		marker  string
		colored string
		plain   string
	}{
		{"{{BOLD}}", ansiBold, ""},
		{"{{CYAN}}", ansiCyan, ""},
		{"{{DIM}}", ansiDim, ""},
		{"{{GREEN}}", ansiGreen, ""},
		{"{{RESET}}", ansiReset, ""},
		{"{{HEADER}}", ansiBold + ansiCyan, ""},
		{"{{CMD}}", "  " + ansiGreen + "$" + ansiReset + " ", "  $ "},
		{"{{COMMENT}}", "    " + ansiDim + "# ", "    # "},
	}

	for _, r := range replacements {
		if color {
			text = strings.ReplaceAll(text, r.marker, r.colored)
		} else {
			text = strings.ReplaceAll(text, r.marker, r.plain)
		}
	}
	return text
}
