package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewInfoRenderer returns a function that renders algorithm notes
// (complexity, stability) using glamour.
func NewInfoRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
