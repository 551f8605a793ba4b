package components

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/snowin/snowin/internal/ui/theme"
)

// RunPicker is a single-choice list. After Update, Chosen holds the picked
// option or Dismissed is set; the owner reads either and closes the picker.
type RunPicker struct {
	Title     string
	Options   []string
	Cursor    int
	Chosen    string
	Dismissed bool
}

// NewRunPicker opens a picker with the cursor on current.
func NewRunPicker(title string, options []string, current string) RunPicker {
	return RunPicker{
		Title:   title,
		Options: options,
		Cursor:  max(slices.Index(options, current), 0),
	}
}

// Done reports whether the picker has been confirmed or dismissed.
func (p RunPicker) Done() bool {
	return p.Chosen != "" || p.Dismissed
}

// Update handles keyboard navigation and selection.
func (p RunPicker) Update(msg tea.Msg) (RunPicker, tea.Cmd) {
	if p.Done() {
		return p, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.Cursor > 0 {
			p.Cursor--
		}
	case "down", "j":
		if p.Cursor < len(p.Options)-1 {
			p.Cursor++
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(kmsg.String()[0] - '1')
		if i < len(p.Options) {
			p.Cursor = i
			p.Chosen = p.Options[i]
		}
	case "enter":
		if p.Cursor < len(p.Options) {
			p.Chosen = p.Options[p.Cursor]
		}
	case "esc":
		p.Dismissed = true
	}

	return p, nil
}

// View renders the picker as a bordered popup.
func (p RunPicker) View(width int) string {
	var b strings.Builder
	b.WriteString(theme.Section.Render(p.Title))
	b.WriteString("\n\n")
	for i, opt := range p.Options {
		line := "  " + opt
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == p.Cursor {
			line = "▸ " + opt
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("enter select · esc cancel"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 2).
		Width(width).
		Render(b.String())
}
