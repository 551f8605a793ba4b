package snowdata

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatXP renders an XP total with thousands separators: 2450 -> "2,450".
func FormatXP(xp int) string {
	return humanize.Comma(int64(xp))
}

// XPAward renders a trick award: 110 -> "+110 XP".
func XPAward(xp int) string {
	return fmt.Sprintf("+%d XP", xp)
}

// FormatDuration renders seconds as hours and minutes: 6600 -> "01:50".
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/3600, (seconds%3600)/60)
}

// FormatDistance renders kilometres with one decimal: 5 -> "5.0".
func FormatDistance(km float64) string {
	return strconv.FormatFloat(km, 'f', 1, 64)
}

// FormatSpeed renders a speed rounded to whole km/h.
func FormatSpeed(kmh float64) string {
	return strconv.FormatFloat(kmh, 'f', 0, 64)
}

// FormatTemperature renders whole degrees Celsius: -2 -> "-2°C".
func FormatTemperature(c int) string {
	return fmt.Sprintf("%d°C", c)
}

// FormatDate renders a calendar date as "17 Oct 2026".
func FormatDate(t time.Time) string {
	return t.Format("2 Jan 2006")
}

// LowBattery is the level below which a battery reading is flagged.
const LowBattery = 20
