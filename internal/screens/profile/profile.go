package profile

import (
	"log/slog"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/snowin/snowin/internal/router"
	"github.com/snowin/snowin/internal/screen"
	"github.com/snowin/snowin/internal/screens/placeholder"
	"github.com/snowin/snowin/internal/snowdata"
	"github.com/snowin/snowin/internal/ui/components"
	"github.com/snowin/snowin/internal/ui/layout"
	"github.com/snowin/snowin/internal/viewstate"
)

// settingIcons decorates the known settings entries.
var settingIcons = map[string]string{
	"Profile Settings": "☺",
	"Notifications":    "♪",
	"Privacy":          "⚿",
	"Help & Support":   "?",
}

type keyMap struct {
	Connect   key.Binding
	Instagram key.Binding
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
}

var keys = keyMap{
	Connect:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "connect")),
	Instagram: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "instagram")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "settings")),
	Down:      key.NewBinding(key.WithKeys("down", "j")),
	Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
}

// ProfileScreen shows the rider, the paired device, stats, settings and
// social links.
type ProfileScreen struct {
	snap     *snowdata.Snapshot
	state    *viewstate.ProfileState
	settings components.Menu
	viewport viewport.Model
	cache    screen.BodyCache
}

var _ screen.Screen = (*ProfileScreen)(nil)

// New creates a ProfileScreen over snap with the device disconnected.
func New(snap *snowdata.Snapshot) *ProfileScreen {
	p := &ProfileScreen{
		snap:     snap,
		state:    viewstate.NewProfileState(),
		viewport: components.NewViewport(),
	}
	// Arrow keys move the settings cursor; only paging scrolls.
	p.viewport.KeyMap.Up.SetEnabled(false)
	p.viewport.KeyMap.Down.SetEnabled(false)

	items := make([]components.MenuItem, 0, len(snap.Profile.Settings))
	for _, name := range snap.Profile.Settings {
		items = append(items, components.MenuItem{
			Label: name,
			Icon:  settingIcons[name],
			Action: func() tea.Cmd {
				slog.Debug("settings page opened", "page", name)
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New(name)}
				}
			},
		})
	}
	p.settings = components.NewMenu(items)
	p.settings.Focused = true

	p.state.OnChange(p.cache.Invalidate)
	return p
}

// State exposes the screen's connection state.
func (p *ProfileScreen) State() *viewstate.ProfileState {
	return p.state
}

func (p *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return p, nil
	}
	switch {
	case key.Matches(kmsg, keys.Connect):
		p.state.ToggleConnection()
	case key.Matches(kmsg, keys.Instagram):
		slog.Debug("instagram connect requested")
	case key.Matches(kmsg, keys.Up, keys.Down, keys.Open):
		selected := p.settings.Selected
		var cmd tea.Cmd
		p.settings, cmd = p.settings.Update(kmsg)
		if p.settings.Selected != selected {
			p.cache.Invalidate()
		}
		return p, cmd
	default:
		var cmd tea.Cmd
		p.viewport, cmd = p.viewport.Update(kmsg)
		return p, cmd
	}
	return p, nil
}

func (p *ProfileScreen) View(width, height int) string {
	return components.ScrollView(&p.viewport, p.cache.Render(width, p.compose), width, height)
}

func (p *ProfileScreen) Title() string {
	return "Profile"
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFromBindings(keys.Connect, keys.Up, keys.Open, p.viewport.KeyMap.PageUp)
}
