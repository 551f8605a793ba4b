package components

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/snowin/snowin/internal/ui/theme"
)

// DatePicker is a month calendar with a day cursor. After Update, either
// Confirmed or Dismissed is set once the user is done.
type DatePicker struct {
	Cursor    time.Time
	Today     time.Time
	Confirmed bool
	Dismissed bool
}

// NewDatePicker opens a calendar on current.
func NewDatePicker(current, today time.Time) DatePicker {
	return DatePicker{Cursor: current, Today: today}
}

// Done reports whether the picker has been confirmed or dismissed.
func (d DatePicker) Done() bool {
	return d.Confirmed || d.Dismissed
}

// Update moves the cursor: arrows by day and week, [ and ] by month,
// t back to today.
func (d DatePicker) Update(msg tea.Msg) (DatePicker, tea.Cmd) {
	if d.Done() {
		return d, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d, nil
	}

	switch kmsg.String() {
	case "left", "h":
		d.Cursor = d.Cursor.AddDate(0, 0, -1)
	case "right", "l":
		d.Cursor = d.Cursor.AddDate(0, 0, 1)
	case "up", "k":
		d.Cursor = d.Cursor.AddDate(0, 0, -7)
	case "down", "j":
		d.Cursor = d.Cursor.AddDate(0, 0, 7)
	case "[":
		d.Cursor = addMonths(d.Cursor, -1)
	case "]":
		d.Cursor = addMonths(d.Cursor, 1)
	case "t":
		d.Cursor = d.Today
	case "enter":
		d.Confirmed = true
	case "esc":
		d.Dismissed = true
	}
	return d, nil
}

// addMonths moves by whole months, clamping the day to the target month's
// length (31 Jan + 1 month = 28/29 Feb).
func addMonths(t time.Time, n int) time.Time {
	y, m, day := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1).Day()
	return first.AddDate(0, 0, min(day, last)-1)
}

// View renders the month containing the cursor, weeks starting on Monday.
func (d DatePicker) View() string {
	y, m, _ := d.Cursor.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, d.Cursor.Location())
	days := first.AddDate(0, 1, -1).Day()
	lead := (int(first.Weekday()) + 6) % 7

	var b strings.Builder
	b.WriteString(theme.Section.Render(fmt.Sprintf("%s %d", m, y)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Mo Tu We Th Fr Sa Su"))
	b.WriteString("\n")

	cells := make([]string, 0, 42)
	for range lead {
		cells = append(cells, "  ")
	}
	for day := 1; day <= days; day++ {
		label := fmt.Sprintf("%2d", day)
		date := time.Date(y, m, day, 0, 0, 0, 0, d.Cursor.Location())
		switch {
		case day == d.Cursor.Day():
			label = theme.ChipSelected.Padding(0).Render(label)
		case sameDay(date, d.Today):
			label = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(label)
		default:
			label = theme.Body.Render(label)
		}
		cells = append(cells, label)
	}
	for i := 0; i < len(cells); i += 7 {
		end := min(i+7, len(cells))
		b.WriteString(strings.Join(cells[i:end], " "))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("←→↑↓ move · [ ] month · t today"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("enter confirm · esc cancel"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 2).
		Render(b.String())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
