package app

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snowin/snowin/internal/router"
	"github.com/snowin/snowin/internal/screens/home"
	"github.com/snowin/snowin/internal/screens/leaderboard"
	"github.com/snowin/snowin/internal/screens/profile"
	"github.com/snowin/snowin/internal/screens/session"
	"github.com/snowin/snowin/internal/snowdata"
	"github.com/snowin/snowin/internal/viewstate"
)

var fixedNow = time.Date(2026, time.October, 17, 8, 0, 0, 0, time.UTC)

type failingProvider struct{}

func (failingProvider) Snapshot(context.Context) (*snowdata.Snapshot, error) {
	return nil, errors.New("snapshot unavailable")
}
func (failingProvider) Name() string { return "failing" }

func keyPress(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: []rune(s)[0], Text: s}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// newLoadedShell returns a shell with the built-in snapshot mounted and a
// 100x40 terminal.
func newLoadedShell(t *testing.T, opts Options) *Shell {
	t.Helper()
	if opts.Now == nil {
		opts.Now = func() time.Time { return fixedNow }
	}
	m := NewShell(context.Background(), opts)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(m.Init()())
	require.NotNil(t, m.Active())
	return m
}

// run feeds msg to the shell and then any messages its command produces,
// one level deep.
func run(m *Shell, msg tea.Msg) {
	_, cmd := m.Update(msg)
	if cmd == nil {
		return
	}
	if next := cmd(); next != nil {
		m.Update(next)
	}
}

func TestLoadingBeforeSnapshot(t *testing.T) {
	m := NewShell(context.Background(), Options{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Nil(t, m.Active())
	assert.Contains(t, ansi.Strip(m.Render()), "Loading snowboard data")
}

func TestStartsOnHome(t *testing.T) {
	m := newLoadedShell(t, Options{})
	assert.Equal(t, viewstate.TabHome, m.SelectedTab())
	assert.IsType(t, &home.HomeScreen{}, m.Active())
}

func TestStartTabOption(t *testing.T) {
	m := newLoadedShell(t, Options{StartTab: viewstate.TabProfile})
	assert.IsType(t, &profile.ProfileScreen{}, m.Active())
}

func TestSelectTabRendersMappedScreen(t *testing.T) {
	m := newLoadedShell(t, Options{})
	tests := []struct {
		tab   viewstate.Tab
		title string
		want  any
	}{
		{viewstate.TabHome, "Home", &home.HomeScreen{}},
		{viewstate.TabSession, "Session", &session.SessionScreen{}},
		{viewstate.TabProfile, "Profile", &profile.ProfileScreen{}},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			require.True(t, m.SelectTab(tt.tab))
			assert.IsType(t, tt.want, m.Active())
			assert.Equal(t, tt.title, m.Active().Title())
		})
	}
}

func TestSelectTabRejectsOutOfRange(t *testing.T) {
	m := newLoadedShell(t, Options{})
	m.SelectTab(viewstate.TabSession)

	assert.False(t, m.SelectTab(viewstate.Tab(3)))
	assert.False(t, m.SelectTab(viewstate.Tab(-1)))
	assert.Equal(t, viewstate.TabSession, m.SelectedTab())
}

func TestNumberKeysSwitchTabs(t *testing.T) {
	m := newLoadedShell(t, Options{})

	run(m, keyPress("2"))
	assert.Equal(t, viewstate.TabSession, m.SelectedTab())
	run(m, keyPress("3"))
	assert.Equal(t, viewstate.TabProfile, m.SelectedTab())
	run(m, keyPress("1"))
	assert.Equal(t, viewstate.TabHome, m.SelectedTab())
}

func TestTabKeysWrap(t *testing.T) {
	m := newLoadedShell(t, Options{})

	run(m, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, viewstate.TabProfile, m.SelectedTab())
	run(m, specialKey(tea.KeyTab))
	assert.Equal(t, viewstate.TabHome, m.SelectedTab())
}

func TestScreensKeepStateAcrossTabs(t *testing.T) {
	m := newLoadedShell(t, Options{})

	run(m, keyPress("3"))
	run(m, keyPress("c"))
	prof := m.Active().(*profile.ProfileScreen)
	require.True(t, prof.State().Connected.Get())

	run(m, keyPress("1"))
	run(m, keyPress("3"))
	assert.Same(t, prof, m.Active())
	assert.True(t, prof.State().Connected.Get())
}

func TestLeaderboardPushAndEscPop(t *testing.T) {
	m := newLoadedShell(t, Options{})

	run(m, keyPress("L"))
	require.IsType(t, &leaderboard.LeaderboardScreen{}, m.Active())
	assert.Equal(t, viewstate.TabHome, m.SelectedTab())
	assert.Contains(t, ansi.Strip(m.Render()), "esc back")

	run(m, specialKey(tea.KeyEscape))
	assert.IsType(t, &home.HomeScreen{}, m.Active())
}

func TestReselectingTabPopsToRoot(t *testing.T) {
	m := newLoadedShell(t, Options{})
	run(m, keyPress("L"))
	require.Equal(t, 2, m.activeRouter().Depth())

	run(m, keyPress("1"))
	assert.IsType(t, &home.HomeScreen{}, m.Active())
}

func TestModalGetsTabAndEscKeys(t *testing.T) {
	m := newLoadedShell(t, Options{StartTab: viewstate.TabSession})
	sess := m.Active().(*session.SessionScreen)

	run(m, keyPress("r"))
	require.True(t, sess.ModalOpen())

	run(m, keyPress("1"))
	assert.Equal(t, viewstate.TabSession, m.SelectedTab(), "tab keys go to the picker")

	run(m, specialKey(tea.KeyEscape))
	assert.False(t, sess.ModalOpen())
	assert.Equal(t, viewstate.RunBlueDiary, sess.State().SelectedRun.Get())

	run(m, keyPress("1"))
	assert.Equal(t, viewstate.TabHome, m.SelectedTab())
}

func TestQuitKeys(t *testing.T) {
	m := newLoadedShell(t, Options{})
	_, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestLoadErrorView(t *testing.T) {
	m := NewShell(context.Background(), Options{Provider: failingProvider{}})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(m.Init()())

	out := ansi.Strip(m.Render())
	assert.Contains(t, out, "Could not load snowboard data")
	assert.Contains(t, out, "snapshot unavailable")

	_, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTooSmall(t *testing.T) {
	m := newLoadedShell(t, Options{})
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Contains(t, ansi.Strip(m.Render()), "Terminal too small!")
}

func TestFrameShowsTabBarAndHints(t *testing.T) {
	m := newLoadedShell(t, Options{})
	out := ansi.Strip(m.Render())
	for _, want := range []string{"SnoWin", "1 Home", "2 Session", "3 Profile", "1-3 tabs", "q quit", "L leaderboard"} {
		assert.Contains(t, out, want)
	}
}

func TestPushFromOtherTabStaysOnItsRouter(t *testing.T) {
	m := newLoadedShell(t, Options{StartTab: viewstate.TabProfile})
	run(m, specialKey(tea.KeyEnter))
	assert.Equal(t, "Profile Settings", m.Active().Title())
	assert.Equal(t, 1, m.routers[viewstate.TabHome].Depth())

	m.Update(router.PopScreenMsg{})
	assert.IsType(t, &profile.ProfileScreen{}, m.Active())
}

func TestDelayedPushLandsOnSendingTab(t *testing.T) {
	m := newLoadedShell(t, Options{})

	_, push := m.Update(keyPress("L"))
	require.NotNil(t, push)
	run(m, keyPress("3"))
	m.Update(push())

	assert.Equal(t, viewstate.TabProfile, m.SelectedTab())
	assert.IsType(t, &profile.ProfileScreen{}, m.Active())
	assert.Equal(t, 2, m.routers[viewstate.TabHome].Depth())
	assert.Equal(t, 1, m.routers[viewstate.TabProfile].Depth())
	assert.IsType(t, &leaderboard.LeaderboardScreen{}, m.routers[viewstate.TabHome].Active())
}

func TestEscPopsOnlyTheActiveTab(t *testing.T) {
	m := newLoadedShell(t, Options{})
	run(m, keyPress("3"))
	run(m, specialKey(tea.KeyEnter))
	require.Equal(t, 2, m.routers[viewstate.TabProfile].Depth())
	run(m, keyPress("1"))
	run(m, keyPress("L"))
	require.Equal(t, 2, m.routers[viewstate.TabHome].Depth())

	_, cmd := m.Update(specialKey(tea.KeyEscape))
	run(m, keyPress("3"))
	if cmd != nil {
		m.Update(cmd())
	}

	assert.Equal(t, 1, m.routers[viewstate.TabHome].Depth())
	assert.Equal(t, 2, m.routers[viewstate.TabProfile].Depth())
	assert.Equal(t, "Profile Settings", m.Active().Title())
}
