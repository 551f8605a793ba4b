package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: glacier blues on a night-slope background
var (
	Primary   = lipgloss.Color("#3B82F6") // Piste Blue
	Secondary = lipgloss.Color("#38BDF8") // Ice
	Accent    = lipgloss.Color("#F59E0B") // Sunrise
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#F97316") // Orange
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F8FAFC") // Snow
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0B1220") // Night
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
	Gold      = lipgloss.Color("#FACC15")
	Silver    = lipgloss.Color("#CBD5E1")
	Bronze    = lipgloss.Color("#D97706")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	Chip = lipgloss.NewStyle().
		Foreground(Text).
		Background(BgCard).
		Padding(0, 1)

	ChipSelected = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Primary).
			Bold(true).
			Padding(0, 1)
)

// Class is the semantic colouring of a value: how well a trick went, or
// whether a reading needs attention.
type Class int

const (
	ClassNeutral Class = iota
	ClassSuccess
	ClassWarning
	ClassFailure
)

// Color returns the palette colour for c.
func (c Class) Color() color.Color {
	switch c {
	case ClassSuccess:
		return Success
	case ClassWarning:
		return Warning
	case ClassFailure:
		return Error
	default:
		return Text
	}
}

// Style returns a bold foreground style in c's colour.
func (c Class) Style() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c.Color()).Bold(c != ClassNeutral)
}

// MedalColor returns the podium colour for rank 1..3.
func MedalColor(rank int) color.Color {
	switch rank {
	case 1:
		return Gold
	case 2:
		return Silver
	case 3:
		return Bronze
	default:
		return TextDim
	}
}
