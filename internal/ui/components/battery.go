package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/snowin/snowin/internal/snowdata"
	"github.com/snowin/snowin/internal/ui/theme"
)

// BatteryClass flags levels below snowdata.LowBattery as failures.
func BatteryClass(level int) theme.Class {
	if level < snowdata.LowBattery {
		return theme.ClassFailure
	}
	return theme.ClassSuccess
}

// BatteryIndicator is a compact horizontal battery gauge.
type BatteryIndicator struct {
	Level int
	Width int // bar cells, excluding the percentage label
}

// NewBatteryIndicator creates a gauge with a bar of barWidth cells.
func NewBatteryIndicator(level, barWidth int) BatteryIndicator {
	return BatteryIndicator{Level: level, Width: barWidth}
}

// View renders the gauge followed by the percentage.
func (b BatteryIndicator) View() string {
	barWidth := max(b.Width, 4)
	level := max(min(b.Level, 100), 0)

	filled := barWidth * level / 100
	empty := barWidth - filled

	color := BatteryClass(level).Color()
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", empty))

	return bar + " " + lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("%d%%", level))
}
