// JSON output shapes and aligned table formatting.
package probe

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type modeOutput struct {
	Mode    string `json:"mode"`
	Checked bool   `json:"checked"`
	OnReach string `json:"on_reach"`
}

type demoItem struct {
	Input int    `json:"input"`
	Sign  string `json:"sign"`
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

// row is one key/value line of a table.
type row struct {
	key   string
	value string
}

// writeTable left-aligns values after the widest key, by display width.
func writeTable(w io.Writer, rows []row, color bool) error {
	keyWidth := 0
	for _, r := range rows {
		keyWidth = max(keyWidth, runewidth.StringWidth(r.key))
	}
	for _, r := range rows {
		pad := strings.Repeat(" ", keyWidth-runewidth.StringWidth(r.key)+2)
		key := r.key
		if color {
			key = ansiBold + key + ansiReset
		}
		if _, err := fmt.Fprintln(w, key+pad+r.value); err != nil {
			return err
		}
	}
	return nil
}

func stripANSICodes(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
