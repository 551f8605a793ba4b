package components

import (
	"charm.land/lipgloss/v2"

	"github.com/snowin/snowin/internal/snowdata"
	"github.com/snowin/snowin/internal/ui/theme"
)

// ConditionRow renders a weather condition as "icon title ... value".
func ConditionRow(c snowdata.Condition, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Secondary).Render(c.Icon) + " " +
		theme.Subtitle.Render(c.Title)
	return SpaceBetween(left, theme.Body.Bold(true).Render(c.Value), width)
}

// StatusClass colours an equipment status: connected is fine, anything
// else needs attention.
func StatusClass(status string) theme.Class {
	if status == snowdata.StatusConnected {
		return theme.ClassSuccess
	}
	return theme.ClassWarning
}

// EquipmentRow renders one piece of equipment. Items without a battery
// reading show no gauge.
func EquipmentRow(e snowdata.Equipment, width int) string {
	left := theme.Body.Render(e.Name) + "  " + StatusClass(e.Status).Style().Render(e.Status)
	right := ""
	if e.Battery != nil {
		right = NewBatteryIndicator(*e.Battery, 10).View()
	}
	return SpaceBetween(left, right, width)
}

// ResortStatusClass colours a resort's lift status.
func ResortStatusClass(status string) theme.Class {
	switch status {
	case snowdata.ResortOpen:
		return theme.ClassSuccess
	case snowdata.ResortClosed:
		return theme.ClassFailure
	default:
		return theme.ClassWarning
	}
}

// ResortChip renders a selectable resort name followed by its status, if
// one is known.
func ResortChip(r snowdata.Resort, selected bool) string {
	label := r.Name
	if r.Status != "" {
		label += " " + ResortStatusClass(r.Status).Style().Render(r.Status)
	}
	if selected {
		return theme.ChipSelected.Render("● " + label)
	}
	return theme.Chip.Render("○ " + label)
}

// NewsCard renders a news item with its icon, headline, summary and age.
func NewsCard(n snowdata.NewsItem, width int) string {
	head := lipgloss.NewStyle().Foreground(theme.Accent).Render(n.Icon) + " " +
		theme.Section.Render(n.Title)
	body := SpaceBetween(head, theme.Hint.Render(n.Age), InnerWidth(width)) + "\n" +
		theme.Subtitle.Width(InnerWidth(width)).Render(n.Description)
	return Card("", body, width)
}
