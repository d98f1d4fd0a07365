// Purpose: Implement the mode, demo and explain commands.
// Exports: RunMode, RunDemo, RunExplain, DemoOptions.
// Role: Business logic behind the cobra wiring in cmd/probe.
// Invariants: Output goes to the supplied writer; RunDemo with Reach set never returns.
package probe

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/sandover/unreachable"
)

func currentMode() modeOutput {
	if unreachable.Checked {
		return modeOutput{Mode: "verified", Checked: true, OnReach: "panic"}
	}
	return modeOutput{Mode: "optimized", Checked: false, OnReach: "trap"}
}

// RunMode prints the build mode of this binary.
func RunMode(opts GlobalOptions, w io.Writer) error {
	m := currentMode()
	if opts.JSON {
		return writeJSON(w, m)
	}
	return writeTable(w, []row{
		{"mode", m.Mode},
		{"checked", strconv.FormatBool(m.Checked)},
		{"on reach", m.OnReach},
	}, opts.useColor())
}

// DemoOptions are the flags of the demo command.
type DemoOptions struct {
	Reach bool
	Bare  bool
}

// RunDemo classifies each argument. With Reach or Bare set it runs the marked
// arm instead and does not return.
func RunDemo(args []string, demo DemoOptions, opts GlobalOptions, w io.Writer) error {
	if demo.Reach || demo.Bare {
		debugf(opts, "entering marked arm (mode=%s, message=%t)", currentMode().Mode, !demo.Bare)
		Reach(demo.Bare)
		return nil
	}

	nums, err := ParseInputs(args)
	if err != nil {
		return err
	}
	debugf(opts, "classifying %d inputs", len(nums))

	if opts.JSON {
		items := make([]demoItem, 0, len(nums))
		for _, n := range nums {
			items = append(items, demoItem{Input: n, Sign: Classify(n).String()})
		}
		return writeJSON(w, items)
	}
	rows := make([]row, 0, len(nums))
	for _, n := range nums {
		rows = append(rows, row{strconv.Itoa(n), Classify(n).String()})
	}
	return writeTable(w, rows, opts.useColor())
}

// RunExplain prints the marker contract, rendered with glamour when color is on.
func RunExplain(opts GlobalOptions, w io.Writer) error {
	md := ExplainMarkdown()
	if !opts.useColor() {
		_, err := io.WriteString(w, md)
		return err
	}

	out, err := renderMarkdown(md, opts.Style, min(terminalWidth(), 100))
	if err != nil {
		debugf(opts, "glamour render failed: %v", err)
		// Fallback if rendering fails
		_, err = io.WriteString(w, md)
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}

func renderMarkdown(md, style string, width int) (string, error) {
	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("glamour: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("glamour: %w", err)
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}
