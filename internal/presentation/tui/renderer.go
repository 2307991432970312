package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders the demo walkthrough markdown
// using glamour. Falls back to the raw markdown if the renderer cannot be
// constructed (e.g. no usable terminal).
func NewRenderer() func(string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Detect light/dark background
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return func(markdown string) string { return markdown }
	}

	return func(markdown string) string {
		out, err := r.Render(markdown)
		if err != nil {
			return markdown
		}
		return out
	}
}
