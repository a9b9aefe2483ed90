// Package textutil shapes text for single-line TUI rows.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SingleLine collapses whitespace runs, newlines included, into single
// spaces.
func SingleLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Fit flattens text to one line and clips it to width, marking the cut
// with an ellipsis. Non-positive widths yield an empty string.
func Fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(SingleLine(text), width, "…")
}
