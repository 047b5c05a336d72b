package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour. The
// rules reference shown by `espalier rules` goes through it when stdout is a
// terminal.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)

	return func(markdown string) (string, error) {
		if err != nil {
			// Fall back to the raw markdown when no renderer is available.
			return markdown, nil
		}
		return r.Render(markdown)
	}
}
