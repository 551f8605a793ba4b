package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/snowin/snowin/internal/ui/theme"
)

// ContentWidth returns the uniform width used for every card on a screen so
// stacked sections align.
func ContentWidth(frameWidth int) int {
	return max(min(frameWidth-4, 96), 30)
}

// Card wraps body in a rounded-border card of the given total width, with
// an optional bold title line.
func Card(title, body string, width int) string {
	content := body
	if title != "" {
		content = theme.Section.Render(title) + "\n" + body
	}
	return theme.Card.Width(width).Render(content)
}

// InnerWidth is the text width available inside a Card of width w.
func InnerWidth(w int) int {
	return max(w-4, 1)
}

// SpaceBetween lays out left and right on one line of the given width,
// pushing right to the far edge.
func SpaceBetween(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
