package home

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/snowin/snowin/internal/router"
	"github.com/snowin/snowin/internal/screen"
	"github.com/snowin/snowin/internal/screens/leaderboard"
	"github.com/snowin/snowin/internal/snowdata"
	"github.com/snowin/snowin/internal/ui/components"
	"github.com/snowin/snowin/internal/ui/layout"
	"github.com/snowin/snowin/internal/ui/theme"
	"github.com/snowin/snowin/internal/viewstate"
)

type keyMap struct {
	PrevResort  key.Binding
	NextResort  key.Binding
	Leaderboard key.Binding
}

var keys = keyMap{
	PrevResort:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "resort")),
	NextResort:  key.NewBinding(key.WithKeys("right", "l")),
	Leaderboard: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "leaderboard")),
}

// HomeScreen is the dashboard: weather, resort selection, equipment and
// news.
type HomeScreen struct {
	snap     *snowdata.Snapshot
	state    *viewstate.HomeState
	viewport viewport.Model
	cache    screen.BodyCache
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen over snap.
func New(snap *snowdata.Snapshot) *HomeScreen {
	h := &HomeScreen{
		snap:     snap,
		state:    viewstate.NewHomeState(snap.ResortNames()),
		viewport: components.NewViewport(),
	}
	h.state.OnChange(h.cache.Invalidate)
	return h
}

// State exposes the screen's resort selection.
func (h *HomeScreen) State() *viewstate.HomeState {
	return h.state
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return h, nil
	}
	switch {
	case key.Matches(kmsg, keys.PrevResort):
		h.state.SelectPrev()
	case key.Matches(kmsg, keys.NextResort):
		h.state.SelectNext()
	case key.Matches(kmsg, keys.Leaderboard):
		board := leaderboard.New(h.snap.Leaderboard)
		return h, func() tea.Msg {
			return router.PushScreenMsg{Screen: board}
		}
	default:
		var cmd tea.Cmd
		h.viewport, cmd = h.viewport.Update(kmsg)
		return h, cmd
	}
	return h, nil
}

func (h *HomeScreen) View(width, height int) string {
	return components.ScrollView(&h.viewport, h.cache.Render(width, h.compose), width, height)
}

func (h *HomeScreen) compose(width int) string {
	cw := components.ContentWidth(width)
	inner := components.InnerWidth(cw)

	sections := []string{
		renderBanner(cw),
		h.renderGreeting(cw),
		components.Card("Weather", h.renderWeather(inner), cw),
		components.Card("Resort", h.renderResorts(inner), cw),
		components.Card("Equipment Status", h.renderEquipment(inner), cw),
	}
	if len(h.snap.News) > 0 {
		sections = append(sections, theme.Section.Render("Latest News"))
		for _, n := range h.snap.News {
			sections = append(sections, components.NewsCard(n, cw))
		}
	}
	sections = append(sections, components.NewButton("Leaderboard", "L", false).View())

	return strings.Join(sections, "\n")
}

func (h *HomeScreen) renderGreeting(cw int) string {
	r := h.snap.Rider
	left := theme.Subtitle.Render("Welcome back,") + " " + theme.Section.Render(r.Name)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("Level %d · %s XP", r.Level, snowdata.FormatXP(r.TotalXP)))
	return components.SpaceBetween(left, right, cw)
}

func (h *HomeScreen) renderWeather(inner int) string {
	w := h.snap.Weather
	top := components.SpaceBetween(
		theme.Body.Render("⌖ "+w.Location),
		lipgloss.NewStyle().Foreground(theme.Accent).Render(w.Icon)+" "+
			theme.Section.Render(snowdata.FormatTemperature(w.TemperatureC))+" "+
			theme.Subtitle.Render(w.Sky),
		inner,
	)
	rows := []string{top}
	for _, c := range w.Conditions {
		rows = append(rows, components.ConditionRow(c, inner))
	}
	return strings.Join(rows, "\n")
}

func (h *HomeScreen) renderResorts(inner int) string {
	chips := make([]string, 0, len(h.snap.Resorts))
	for _, r := range h.snap.Resorts {
		chips = append(chips, components.ResortChip(r, h.state.IsSelected(r.Name)))
	}
	return lipgloss.NewStyle().Width(inner).Render(strings.Join(chips, " "))
}

func (h *HomeScreen) renderEquipment(inner int) string {
	if len(h.snap.Equipment) == 0 {
		return theme.Hint.Render("No equipment paired")
	}
	rows := make([]string, 0, len(h.snap.Equipment))
	for _, e := range h.snap.Equipment {
		rows = append(rows, components.EquipmentRow(e, inner))
	}
	return strings.Join(rows, "\n")
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFromBindings(keys.PrevResort, keys.Leaderboard, h.viewport.KeyMap.Up)
}
