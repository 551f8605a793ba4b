package leaderboard

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snowin/snowin/internal/snowdata"
	"github.com/snowin/snowin/internal/viewstate"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestDefaultsToWeekly(t *testing.T) {
	l := New(snowdata.Default().Leaderboard)
	assert.Equal(t, viewstate.PeriodWeekly, l.State().Period.Get())
	assert.Equal(t, "Leaderboard", l.Title())
}

func TestArrowKeysChangePeriod(t *testing.T) {
	l := New(snowdata.Default().Leaderboard)

	l.Update(specialKey(tea.KeyRight))
	assert.Equal(t, viewstate.PeriodMonthly, l.State().Period.Get())

	l.Update(specialKey(tea.KeyLeft))
	l.Update(specialKey(tea.KeyLeft))
	assert.Equal(t, viewstate.PeriodDaily, l.State().Period.Get())
}

func TestPeriodIsCosmetic(t *testing.T) {
	l := New(snowdata.Default().Leaderboard)
	before := ansi.Strip(l.View(100, 200))

	l.Update(specialKey(tea.KeyRight))
	after := ansi.Strip(l.View(100, 200))

	assert.Equal(t, before, after)
	for _, name := range []string{"Sarah Chen", "Chris Wong", "Lisa Park"} {
		assert.Contains(t, after, name)
	}
}

func TestViewShowsFriendsInOrder(t *testing.T) {
	l := New(snowdata.Default().Leaderboard)
	out := ansi.Strip(l.View(100, 200))

	prev := -1
	for _, name := range []string{"You", "Chris Wong", "Emma Davis", "Tom Wilson", "Lisa Park"} {
		i := strings.Index(out, name)
		require.Greater(t, i, prev, name)
		prev = i
	}
	assert.Contains(t, out, "Friends Ranking")
	assert.Contains(t, out, "All Time")
}

func TestEmptyBoard(t *testing.T) {
	l := New(snowdata.Leaderboard{})
	out := ansi.Strip(l.View(100, 200))
	assert.Contains(t, out, "No friends yet")
	assert.NotContains(t, out, "Categories")
}

func TestKeyHints(t *testing.T) {
	hints := New(snowdata.Leaderboard{}).KeyHints()
	require.Len(t, hints, 2)
	assert.Equal(t, "←/→", hints[0].Key)
}
