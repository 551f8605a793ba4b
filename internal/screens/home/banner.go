package home

import (
	"charm.land/lipgloss/v2"

	"github.com/snowin/snowin/internal/ui/theme"
)

const bannerFull = `███████╗███╗   ██╗ ██████╗ ██╗    ██╗██╗███╗   ██╗
██╔════╝████╗  ██║██╔═══██╗██║    ██║██║████╗  ██║
███████╗██╔██╗ ██║██║   ██║██║ █╗ ██║██║██╔██╗ ██║
╚════██║██║╚██╗██║██║   ██║██║███╗██║██║██║╚██╗██║
███████║██║ ╚████║╚██████╔╝╚███╔███╔╝██║██║ ╚████║
╚══════╝╚═╝  ╚═══╝ ╚═════╝  ╚══╝╚══╝ ╚═╝╚═╝  ╚═══╝`

const bannerCompact = "S · N · O · W · I · N"

// renderBanner returns the block-letter title, or the compact fallback when
// it does not fit in cw.
func renderBanner(cw int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center)

	if cw < lipgloss.Width(bannerFull) {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerFull)
}
