package layout

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(79, 24))
	assert.True(t, IsTooSmall(80, 23))
	assert.False(t, IsTooSmall(80, 24))
}

func TestContentHeight(t *testing.T) {
	header := RenderHeader("Home", "1 Home", 80)
	footer := RenderFooter([]KeyHint{{Key: "q", Description: "quit"}}, 80)
	assert.Equal(t, 18, ContentHeight(header, footer, 24))
	assert.Equal(t, 0, ContentHeight(header, footer, 4))
}

func TestHintsFromBindingsSkipsDisabled(t *testing.T) {
	hints := HintsFromBindings(
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "date")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"), key.WithDisabled()),
	)
	assert.Equal(t, []KeyHint{{Key: "d", Description: "date"}}, hints)
}

func TestRenderTabBarNumbersTabs(t *testing.T) {
	bar := RenderTabBar([]string{"Home", "Session", "Profile"}, 1)
	assert.Contains(t, bar, "1 Home")
	assert.Contains(t, bar, "2 Session")
	assert.Contains(t, bar, "3 Profile")
}

func TestRenderFrameHeight(t *testing.T) {
	header := RenderHeader("Home", RenderTabBar([]string{"Home"}, 0), 80)
	footer := RenderFooter([]KeyHint{{Key: "q", Description: "quit"}}, 80)
	frame := RenderFrame(header, strings.Repeat("line\n", 100), footer, 80, 24)

	assert.Equal(t, 24, lipgloss.Height(frame))
	assert.Contains(t, frame, "SnoWin")
	assert.Contains(t, frame, "quit")
}

func TestRenderMinSizeMessage(t *testing.T) {
	msg := RenderMinSizeMessage(40, 10)
	assert.Contains(t, msg, "Terminal too small!")
	assert.Contains(t, msg, "40 x 10")
}
