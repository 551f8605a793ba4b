package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/snowin/snowin/internal/router"
	"github.com/snowin/snowin/internal/screen"
	"github.com/snowin/snowin/internal/screens/home"
	"github.com/snowin/snowin/internal/screens/profile"
	"github.com/snowin/snowin/internal/screens/session"
	"github.com/snowin/snowin/internal/snowdata"
	"github.com/snowin/snowin/internal/ui/layout"
	"github.com/snowin/snowin/internal/ui/theme"
	"github.com/snowin/snowin/internal/viewstate"
)

// Options configures the shell.
type Options struct {
	Provider snowdata.Provider
	StartTab viewstate.Tab
	// Now supplies the session screen's initial date. Defaults to time.Now.
	Now func() time.Time
}

// snapshotLoadedMsg carries the result of the startup snapshot load.
type snapshotLoadedMsg struct {
	snap *snowdata.Snapshot
	err  error
}

type keyMap struct {
	Home    key.Binding
	Session key.Binding
	Profile key.Binding
	Next    key.Binding
	Prev    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Home:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1-3", "tabs")),
	Session: key.NewBinding(key.WithKeys("2")),
	Profile: key.NewBinding(key.WithKeys("3")),
	Next:    key.NewBinding(key.WithKeys("tab")),
	Prev:    key.NewBinding(key.WithKeys("shift+tab")),
	Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Shell is the root Bubble Tea model: a tab bar over three screens. Each
// tab keeps its own navigation stack for as long as the app runs.
type Shell struct {
	ctx      context.Context
	provider snowdata.Provider
	now      func() time.Time

	tabs    *viewstate.TabState
	routers [viewstate.TabCount]*router.Router

	snap    *snowdata.Snapshot
	loadErr error

	width  int
	height int
}

var _ tea.Model = (*Shell)(nil)

// NewShell creates the shell. Screens are mounted once the snapshot loads.
func NewShell(ctx context.Context, opts Options) *Shell {
	provider := opts.Provider
	if provider == nil {
		provider = snowdata.NewStaticProvider()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Shell{
		ctx:      ctx,
		provider: provider,
		now:      now,
		tabs:     viewstate.NewTabState(opts.StartTab),
	}
}

func (m *Shell) Init() tea.Cmd {
	ctx, provider := m.ctx, m.provider
	return func() tea.Msg {
		snap, err := provider.Snapshot(ctx)
		return snapshotLoadedMsg{snap: snap, err: err}
	}
}

// SelectedTab returns the active tab.
func (m *Shell) SelectedTab() viewstate.Tab {
	return m.tabs.Selected.Get()
}

// SelectTab switches to t. Out-of-range tabs are ignored and reported as
// false. Selecting the active tab again returns it to its root screen.
func (m *Shell) SelectTab(t viewstate.Tab) bool {
	if t.Valid() && t == m.tabs.Selected.Get() && m.routers[t] != nil {
		m.routers[t].PopToRoot()
	}
	return m.tabs.Select(t)
}

// Active returns the screen on top of the active tab, or nil before the
// snapshot has loaded.
func (m *Shell) Active() screen.Screen {
	r := m.activeRouter()
	if r == nil {
		return nil
	}
	return r.Active()
}

func (m *Shell) activeRouter() *router.Router {
	return m.routers[m.tabs.Selected.Get()]
}

func (m *Shell) mount(snap *snowdata.Snapshot) tea.Cmd {
	m.snap = snap
	m.routers[viewstate.TabHome] = router.New(home.New(snap))
	m.routers[viewstate.TabSession] = router.New(session.New(snap, m.now()))
	m.routers[viewstate.TabProfile] = router.New(profile.New(snap))

	cmds := make([]tea.Cmd, 0, len(m.routers))
	for _, r := range m.routers {
		cmds = append(cmds, r.Init())
	}
	return tea.Batch(cmds...)
}

func (m *Shell) modalOpen() bool {
	modal, ok := m.Active().(screen.ModalScreen)
	return ok && modal.ModalOpen()
}

func (m *Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case snapshotLoadedMsg:
		if msg.err != nil {
			slog.Error("load snapshot", "source", m.provider.Name(), "error", msg.err)
			m.loadErr = msg.err
			return m, nil
		}
		slog.Info("snapshot loaded", "source", m.provider.Name())
		return m, m.mount(msg.snap)

	case router.RoutedMsg:
		return m, msg.Deliver()

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.snap == nil {
			if key.Matches(msg, keys.Quit, keys.Back) {
				return m, tea.Quit
			}
			return m, nil
		}
		if m.modalOpen() {
			return m, m.activeRouter().Update(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Home):
			m.SelectTab(viewstate.TabHome)
			return m, nil
		case key.Matches(msg, keys.Session):
			m.SelectTab(viewstate.TabSession)
			return m, nil
		case key.Matches(msg, keys.Profile):
			m.SelectTab(viewstate.TabProfile)
			return m, nil
		case key.Matches(msg, keys.Next):
			m.tabs.Next()
			return m, nil
		case key.Matches(msg, keys.Prev):
			m.tabs.Prev()
			return m, nil
		case key.Matches(msg, keys.Back):
			return m, m.activeRouter().Pop()
		}
	}

	if m.snap == nil {
		return m, nil
	}
	return m, m.activeRouter().Update(msg)
}

func (m *Shell) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = true
	return v
}

// Render returns the full frame for the current terminal size.
func (m *Shell) Render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	if m.loadErr != nil {
		return renderLoadError(m.loadErr, m.width, m.height)
	}

	tabNames := make([]string, 0, viewstate.TabCount)
	for _, t := range viewstate.Tabs() {
		tabNames = append(tabNames, t.String())
	}
	tabBar := layout.RenderTabBar(tabNames, int(m.tabs.Selected.Get()))

	active := m.Active()
	title := "Loading"
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, tabBar, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)
	contentHeight := layout.ContentHeight(header, footer, m.height)

	content := lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\nLoading snowboard data...")
	if active != nil {
		content = m.activeRouter().View(m.width, contentHeight)
	}

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m *Shell) footerHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if hp, ok := m.Active().(screen.KeyHintProvider); ok {
		hints = append(hints, hp.KeyHints()...)
	}
	if m.Active() == nil || m.modalOpen() {
		return hints
	}
	if m.activeRouter().Depth() > 1 {
		hints = append(hints, layout.HintsFromBindings(keys.Back)...)
	}
	return append(hints, layout.HintsFromBindings(keys.Home, keys.Quit)...)
}

func renderLoadError(err error, width, height int) string {
	msg := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Could not load snowboard data") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Width(min(width-4, 70)).Render(err.Error()) +
		"\n\n" +
		theme.Hint.Render("Press q to quit")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

// Run starts the Bubble Tea program.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(NewShell(ctx, opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
