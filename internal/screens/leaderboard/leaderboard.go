package leaderboard

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/snowin/snowin/internal/screen"
	"github.com/snowin/snowin/internal/snowdata"
	"github.com/snowin/snowin/internal/ui/components"
	"github.com/snowin/snowin/internal/ui/layout"
	"github.com/snowin/snowin/internal/ui/theme"
	"github.com/snowin/snowin/internal/viewstate"
)

// selfName marks the current rider in the friends ranking.
const selfName = "You"

type keyMap struct {
	Prev key.Binding
	Next key.Binding
}

var keys = keyMap{
	Prev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "period")),
	Next: key.NewBinding(key.WithKeys("right", "l")),
}

// LeaderboardScreen shows the podium, category leaders and the friends
// ranking. The period selector is cosmetic.
type LeaderboardScreen struct {
	board    snowdata.Leaderboard
	state    *viewstate.LeaderboardState
	viewport viewport.Model
	cache    screen.BodyCache
}

var _ screen.Screen = (*LeaderboardScreen)(nil)

// New creates a leaderboard over board, starting on the weekly period.
func New(board snowdata.Leaderboard) *LeaderboardScreen {
	l := &LeaderboardScreen{
		board:    board,
		state:    viewstate.NewLeaderboardState(),
		viewport: components.NewViewport(),
	}
	l.state.OnChange(l.cache.Invalidate)
	return l
}

// State exposes the screen's period selection.
func (l *LeaderboardScreen) State() *viewstate.LeaderboardState {
	return l.state
}

func (l *LeaderboardScreen) Init() tea.Cmd {
	return nil
}

func (l *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return l, nil
	}
	switch {
	case key.Matches(kmsg, keys.Prev):
		l.state.SelectPrev()
	case key.Matches(kmsg, keys.Next):
		l.state.SelectNext()
	default:
		var cmd tea.Cmd
		l.viewport, cmd = l.viewport.Update(kmsg)
		return l, cmd
	}
	return l, nil
}

func (l *LeaderboardScreen) View(width, height int) string {
	return components.ScrollView(&l.viewport, l.cache.Render(width, l.compose), width, height)
}

func (l *LeaderboardScreen) compose(width int) string {
	cw := components.ContentWidth(width)
	inner := components.InnerWidth(cw)

	periods := make([]string, 0, 4)
	for _, p := range viewstate.Periods() {
		periods = append(periods, string(p))
	}

	sections := []string{
		components.SegmentedControl(periods, string(l.state.Period.Get())),
		components.Card("Top Riders", components.Podium(l.board.Podium, inner, 5), cw),
	}

	if len(l.board.Categories) > 0 {
		rows := make([]string, 0, len(l.board.Categories))
		for _, c := range l.board.Categories {
			rows = append(rows, components.CategoryRow(c, inner))
		}
		sections = append(sections, components.Card("Categories", strings.Join(rows, "\n"), cw))
	}

	friends := theme.Hint.Render("No friends yet")
	if len(l.board.Friends) > 0 {
		rows := make([]string, 0, len(l.board.Friends))
		for _, r := range l.board.Friends {
			rows = append(rows, components.RankingRow(r, r.Name == selfName, inner))
		}
		friends = strings.Join(rows, "\n")
	}
	sections = append(sections, components.Card("Friends Ranking", friends, cw))

	return strings.Join(sections, "\n")
}

func (l *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (l *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFromBindings(keys.Prev, l.viewport.KeyMap.Up)
}
