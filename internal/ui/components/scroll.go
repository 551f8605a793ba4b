package components

import (
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	"charm.land/lipgloss/v2"

	"github.com/snowin/snowin/internal/ui/theme"
)

// ScrollKeyMap is the viewport keymap shared by the scrolling screens. Half
// pages and horizontal scrolling are off so screens keep d, u, h and l.
func ScrollKeyMap() viewport.KeyMap {
	off := key.NewBinding(key.WithDisabled())
	return viewport.KeyMap{
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "scroll")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
		PageUp:       key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup/pgdn", "page")),
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		HalfPageUp:   off,
		HalfPageDown: off,
		Left:         off,
		Right:        off,
	}
}

// NewViewport returns a viewport bound to ScrollKeyMap.
func NewViewport() viewport.Model {
	vp := viewport.New()
	vp.KeyMap = ScrollKeyMap()
	return vp
}

// ScrollView loads content into vp and renders a width x height window of
// it. Content that fits is returned unchanged. Otherwise the last row shows
// whether more content lies below.
func ScrollView(vp *viewport.Model, content string, width, height int) string {
	if height <= 0 {
		return ""
	}
	vp.SetWidth(width)
	if lipgloss.Height(content) <= height {
		vp.SetHeight(height)
		vp.SetContent(content)
		vp.SetYOffset(0)
		return content
	}

	vp.SetHeight(height - 1)
	vp.SetContent(content)
	indicator := theme.Hint.Render("▼ more")
	if vp.AtBottom() {
		indicator = theme.Hint.Render("▲ end")
	}
	return vp.View() + "\n" + indicator
}
