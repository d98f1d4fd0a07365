// CLI option types and verbose diagnostics.
package probe

import (
	"fmt"
	"os"
)

// ColorMode selects when output is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// GlobalOptions carries the persistent flags shared by every command.
type GlobalOptions struct {
	Quiet   bool
	Verbose bool
	JSON    bool
	Color   ColorMode
	// Style names a glamour standard style; empty means detect from the terminal.
	Style string
}

// ParseColorMode validates a --color value.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case ColorAuto, ColorAlways, ColorNever:
		return ColorMode(s), nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("%w: %q (want auto, always or never)", ErrInvalidColor, s)
	}
}

// useColor resolves the color mode against the current stdout.
func (o GlobalOptions) useColor() bool {
	switch o.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return stdoutIsTTY()
	}
}

func debugf(opts GlobalOptions, format string, args ...any) {
	if !opts.Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...)
}
