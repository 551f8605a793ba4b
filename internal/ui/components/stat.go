package components

import (
	"charm.land/lipgloss/v2"

	"github.com/snowin/snowin/internal/ui/theme"
)

// StatBox is a small caption-over-value block used in the session summary.
type StatBox struct {
	Title string
	Value string
	Unit  string
}

// View renders the box centred in width cells.
func (s StatBox) View(width int) string {
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.Value)
	if s.Unit != "" {
		value += " " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.Unit)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Subtitle.Render(s.Title) + "\n" + value)
}

// StatCard is an icon, value and caption tile used in the profile overview.
type StatCard struct {
	Title string
	Value string
	Icon  string
}

// View renders the tile as a bordered box of the given total width.
func (s StatCard) View(width int) string {
	body := lipgloss.NewStyle().Foreground(theme.Secondary).Render(s.Icon) + "\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.Value) + "\n" +
		theme.Subtitle.Render(s.Title)
	return theme.Card.
		Width(width).
		Align(lipgloss.Center).
		Render(body)
}

// StatGrid lays cards out cols per row inside width.
func StatGrid(cards []StatCard, cols, width int) string {
	if cols < 1 {
		cols = 1
	}
	cellWidth := max(width/cols, 8)
	var rows []string
	for i := 0; i < len(cards); i += cols {
		end := min(i+cols, len(cards))
		cells := make([]string, 0, cols)
		for _, c := range cards[i:end] {
			cells = append(cells, c.View(cellWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
