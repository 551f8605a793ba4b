package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/snowin/snowin/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	updates int
	// reply, when set, is returned from Update as a command.
	reply tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	if s.reply == nil {
		return s, nil
	}
	reply := s.reply
	return s, func() tea.Msg { return reply }
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPushRunsInit(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	board := &stubScreen{title: "leaderboard"}
	r.Push(board)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "leaderboard" {
		t.Errorf("expected active 'leaderboard', got %q", r.Active().Title())
	}
	if !board.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPopReturnsToPrevious(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Update(PushScreenMsg{Screen: &stubScreen{title: "leaderboard"}})
	r.Update(PopScreenMsg{})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
}

func TestPopKeepsRoot(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Pop()
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestPopToRoot(t *testing.T) {
	root := &stubScreen{title: "home"}
	r := New(root)
	r.Push(&stubScreen{title: "a"})
	r.Push(&stubScreen{title: "b"})

	r.PopToRoot()

	if r.Depth() != 1 || r.Active() != screen.Screen(root) {
		t.Errorf("expected only the root screen, got depth %d", r.Depth())
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	root := &stubScreen{title: "home"}
	top := &stubScreen{title: "leaderboard"}
	r := New(root)
	r.Push(top)

	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if top.updates != 1 || root.updates != 0 {
		t.Errorf("expected only the active screen updated, got root=%d top=%d", root.updates, top.updates)
	}
}

func TestNavigationStaysWithSendingRouter(t *testing.T) {
	home := New(&stubScreen{title: "home", reply: PushScreenMsg{Screen: &stubScreen{title: "leaderboard"}}})
	profile := New(&stubScreen{title: "profile"})

	cmd := home.Update(tea.KeyPressMsg{Code: 'L', Text: "L"})
	if cmd == nil {
		t.Fatal("expected a command from the screen")
	}
	routed, ok := cmd().(RoutedMsg)
	if !ok {
		t.Fatalf("expected RoutedMsg, got %T", cmd())
	}

	// The message is delivered after the user has moved to another stack.
	profile.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	routed.Deliver()

	if home.Depth() != 2 || home.Active().Title() != "leaderboard" {
		t.Errorf("expected leaderboard pushed on home, got depth %d", home.Depth())
	}
	if profile.Depth() != 1 {
		t.Errorf("expected profile untouched, got depth %d", profile.Depth())
	}
}

func TestBindReachesBatchedCommands(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	cmd := r.bind(tea.Batch(
		func() tea.Msg { return PopScreenMsg{} },
		func() tea.Msg { return PushScreenMsg{Screen: &stubScreen{title: "a"}} },
	))
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatalf("expected BatchMsg, got %T", cmd())
	}
	for _, c := range batch {
		if routed, ok := c().(RoutedMsg); !ok || routed.target != r {
			t.Errorf("expected message routed to its sender, got %T", c())
		}
	}
}

func TestUpdatePassesOtherMessagesThrough(t *testing.T) {
	r := New(&stubScreen{title: "home", reply: tea.QuitMsg{}})
	cmd := r.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}
