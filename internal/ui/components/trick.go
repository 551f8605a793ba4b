package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/snowin/snowin/internal/snowdata"
	"github.com/snowin/snowin/internal/ui/theme"
)

// TrickLine is the display form of one trick event.
type TrickLine struct {
	Name    string
	Time    string
	XPLabel string
	Class   theme.Class
}

// OutcomeClass maps a trick outcome to its colour class.
func OutcomeClass(o snowdata.Outcome) theme.Class {
	switch o {
	case snowdata.OutcomePerfect:
		return theme.ClassSuccess
	case snowdata.OutcomePartial:
		return theme.ClassWarning
	case snowdata.OutcomeFailed:
		return theme.ClassFailure
	default:
		return theme.ClassNeutral
	}
}

// NewTrickLine converts a trick event for display.
func NewTrickLine(t snowdata.TrickEvent) TrickLine {
	return TrickLine{
		Name:    t.Name,
		Time:    t.Time.String(),
		XPLabel: snowdata.XPAward(t.XP),
		Class:   OutcomeClass(t.Outcome),
	}
}

// TrickLines converts tricks, keeping their recorded order.
func TrickLines(tricks []snowdata.TrickEvent) []TrickLine {
	lines := make([]TrickLine, 0, len(tricks))
	for _, t := range tricks {
		lines = append(lines, NewTrickLine(t))
	}
	return lines
}

// View renders the row: a coloured dot, name and time on the left, the XP
// award on the right.
func (t TrickLine) View(width int) string {
	dot := t.Class.Style().Render("●")
	left := dot + " " +
		lipgloss.NewStyle().Foreground(theme.Text).Render(t.Name) + "  " +
		theme.Subtitle.Render(t.Time)
	return SpaceBetween(left, t.Class.Style().Render(t.XPLabel), width)
}

// TrickLog renders tricks one per line in the order given.
func TrickLog(tricks []snowdata.TrickEvent, width int) string {
	if len(tricks) == 0 {
		return theme.Hint.Render("No tricks recorded")
	}
	rows := make([]string, 0, len(tricks))
	for _, l := range TrickLines(tricks) {
		rows = append(rows, l.View(width))
	}
	return strings.Join(rows, "\n")
}
