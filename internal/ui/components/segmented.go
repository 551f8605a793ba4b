package components

import (
	"strings"

	"github.com/snowin/snowin/internal/ui/theme"
)

// SegmentedControl renders a row of mutually exclusive options.
func SegmentedControl(options []string, selected string) string {
	parts := make([]string, 0, len(options))
	for _, o := range options {
		if o == selected {
			parts = append(parts, theme.ChipSelected.Render(o))
		} else {
			parts = append(parts, theme.Chip.Render(o))
		}
	}
	return strings.Join(parts, " ")
}
