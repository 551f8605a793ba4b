package session

import (
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/snowin/snowin/internal/route"
	"github.com/snowin/snowin/internal/screen"
	"github.com/snowin/snowin/internal/snowdata"
	"github.com/snowin/snowin/internal/ui/components"
	"github.com/snowin/snowin/internal/ui/layout"
	"github.com/snowin/snowin/internal/viewstate"
)

type keyMap struct {
	Date   key.Binding
	Run    key.Binding
	Play   key.Binding
	Replay key.Binding
}

var keys = keyMap{
	Date:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "date")),
	Run:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "run")),
	Play:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "play")),
	Replay: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "replay")),
}

// SessionScreen reviews one riding session: summary stats, the route
// diagram, the trick log and the playback panel. The date and run pickers
// are popups over the body.
type SessionScreen struct {
	snap  *snowdata.Snapshot
	state *viewstate.SessionState
	scene route.Scene
	today time.Time

	datePicker components.DatePicker
	runPicker  components.RunPicker

	viewport viewport.Model
	cache    screen.BodyCache
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.ModalScreen = (*SessionScreen)(nil)

// New creates a SessionScreen over snap with today's date selected.
func New(snap *snowdata.Snapshot, now time.Time) *SessionScreen {
	s := &SessionScreen{
		snap:  snap,
		state: viewstate.NewSessionState(now),
		scene:    route.DefaultScene(),
		today:    now,
		viewport: components.NewViewport(),
	}
	s.state.OnChange(s.cache.Invalidate)
	return s
}

// State exposes the screen's selection state.
func (s *SessionScreen) State() *viewstate.SessionState {
	return s.state
}

func (s *SessionScreen) Init() tea.Cmd {
	return nil
}

// ModalOpen reports whether a picker is showing.
func (s *SessionScreen) ModalOpen() bool {
	return s.state.PickerOpen()
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	if s.state.ShowingDatePicker.Get() {
		s.updateDatePicker(kmsg)
		return s, nil
	}
	if s.state.ShowingRunPicker.Get() {
		s.updateRunPicker(kmsg)
		return s, nil
	}

	switch {
	case key.Matches(kmsg, keys.Date):
		s.datePicker = components.NewDatePicker(s.state.SelectedDate.Get(), s.today)
		s.state.OpenDatePicker()
	case key.Matches(kmsg, keys.Run):
		s.runPicker = components.NewRunPicker("Select Run", viewstate.RunLabels(), s.state.SelectedRun.Get())
		s.state.OpenRunPicker()
	case key.Matches(kmsg, keys.Play):
		slog.Debug("playback requested", "run", s.state.SelectedRun.Get())
	case key.Matches(kmsg, keys.Replay):
		slog.Debug("replay requested", "run", s.state.SelectedRun.Get())
	default:
		var cmd tea.Cmd
		s.viewport, cmd = s.viewport.Update(kmsg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) updateDatePicker(msg tea.KeyPressMsg) {
	s.datePicker, _ = s.datePicker.Update(msg)
	switch {
	case s.datePicker.Confirmed:
		s.state.ConfirmDate(s.datePicker.Cursor)
	case s.datePicker.Dismissed:
		s.state.DismissDatePicker()
	}
}

func (s *SessionScreen) updateRunPicker(msg tea.KeyPressMsg) {
	s.runPicker, _ = s.runPicker.Update(msg)
	switch {
	case s.runPicker.Chosen != "":
		if err := s.state.SelectRun(s.runPicker.Chosen); err != nil {
			slog.Error("run selection rejected", "error", err)
			s.state.DismissRunPicker()
		}
	case s.runPicker.Dismissed:
		s.state.DismissRunPicker()
	}
}

func (s *SessionScreen) View(width, height int) string {
	switch {
	case s.state.ShowingDatePicker.Get():
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.datePicker.View())
	case s.state.ShowingRunPicker.Get():
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.runPicker.View(40))
	}
	return components.ScrollView(&s.viewport, s.cache.Render(width, s.compose), width, height)
}

func (s *SessionScreen) Title() string {
	return "Session"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.ModalOpen() {
		return []layout.KeyHint{
			{Key: "enter", Description: "confirm"},
			{Key: "esc", Description: "cancel"},
		}
	}
	return layout.HintsFromBindings(keys.Date, keys.Run, keys.Play, keys.Replay, s.viewport.KeyMap.Up)
}
