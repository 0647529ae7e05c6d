package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// Summary reports are written as markdown; this turns them into styled
// terminal output.
func NewRenderer() func(string) (string, error) {
	// Automatically detect light/dark background.
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
