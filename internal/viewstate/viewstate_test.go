package viewstate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 17, 15, 42, 9, 0, time.UTC)

func TestCellSetNotifiesEvenWhenUnchanged(t *testing.T) {
	c := NewCell("test", 1)
	var calls [][2]int
	c.Subscribe(func(old, new int) { calls = append(calls, [2]int{old, new}) })

	c.Set(2)
	c.Set(2)

	assert.Equal(t, 2, c.Get())
	assert.Equal(t, [][2]int{{1, 2}, {2, 2}}, calls)
	assert.Equal(t, "test", c.Name())
}

func TestNewSessionStateDefaults(t *testing.T) {
	s := NewSessionState(fixedNow)

	assert.Equal(t, time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC), s.SelectedDate.Get())
	assert.Equal(t, RunBlueDiary, s.SelectedRun.Get())
	assert.False(t, s.ShowingDatePicker.Get())
	assert.False(t, s.ShowingRunPicker.Get())
	assert.False(t, s.PickerOpen())
}

func TestConfirmDateStoresAndCloses(t *testing.T) {
	s := NewSessionState(fixedNow)
	s.OpenDatePicker()
	require.True(t, s.ShowingDatePicker.Get())

	picked := time.Date(2025, time.January, 3, 9, 0, 0, 0, time.UTC)
	s.ConfirmDate(picked)

	assert.Equal(t, time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC), s.SelectedDate.Get())
	assert.False(t, s.ShowingDatePicker.Get())
}

func TestDismissDatePickerKeepsDate(t *testing.T) {
	s := NewSessionState(fixedNow)
	before := s.SelectedDate.Get()
	s.OpenDatePicker()
	s.DismissDatePicker()

	assert.Equal(t, before, s.SelectedDate.Get())
	assert.False(t, s.ShowingDatePicker.Get())
}

func TestSelectRunEveryLabel(t *testing.T) {
	for _, label := range RunLabels() {
		t.Run(label, func(t *testing.T) {
			s := NewSessionState(fixedNow)
			s.OpenRunPicker()
			require.NoError(t, s.SelectRun(label))
			assert.Equal(t, label, s.SelectedRun.Get())
			assert.False(t, s.ShowingRunPicker.Get())
		})
	}
}

func TestSelectRunRejectsUnknownLabel(t *testing.T) {
	s := NewSessionState(fixedNow)
	s.OpenRunPicker()

	err := s.SelectRun("4th Run - Off Piste")
	require.ErrorIs(t, err, ErrUnknownRun)
	assert.Equal(t, RunBlueDiary, s.SelectedRun.Get())
	assert.True(t, s.ShowingRunPicker.Get())
}

func TestPickersAreIndependent(t *testing.T) {
	s := NewSessionState(fixedNow)
	s.OpenDatePicker()
	s.OpenRunPicker()

	assert.True(t, s.ShowingDatePicker.Get())
	assert.True(t, s.ShowingRunPicker.Get())

	s.DismissRunPicker()
	assert.True(t, s.ShowingDatePicker.Get())
	assert.True(t, s.PickerOpen())
}

func TestRunLabelsReturnsCopy(t *testing.T) {
	labels := RunLabels()
	labels[0] = "mutated"
	assert.Equal(t, RunBlueDiary, RunLabels()[0])
	assert.Len(t, RunLabels(), 3)
}

func TestSessionOnChangeFiresForEveryCell(t *testing.T) {
	s := NewSessionState(fixedNow)
	n := 0
	s.OnChange(func() { n++ })

	s.OpenDatePicker()
	s.ConfirmDate(fixedNow)
	s.OpenRunPicker()
	require.NoError(t, s.SelectRun(RunRedRoute))

	// open, date+close, open, run+close
	assert.Equal(t, 6, n)
}

func TestHomeStateDefaultsToWhistler(t *testing.T) {
	h := NewHomeState([]string{"Vail", DefaultResort, "Zermatt"})
	assert.Equal(t, DefaultResort, h.SelectedResort.Get())
	assert.True(t, h.IsSelected(DefaultResort))
	assert.False(t, h.IsSelected("Vail"))
}

func TestHomeStateFallsBackToFirstResort(t *testing.T) {
	h := NewHomeState([]string{"Vail", "Zermatt"})
	assert.Equal(t, "Vail", h.SelectedResort.Get())
}

func TestSelectResortExactlyOneSelected(t *testing.T) {
	resorts := []string{DefaultResort, "Vail", "Park City", "Zermatt"}
	h := NewHomeState(resorts)
	require.NoError(t, h.SelectResort("Park City"))

	selected := 0
	for _, r := range h.Resorts() {
		if h.IsSelected(r) {
			selected++
		}
	}
	assert.Equal(t, 1, selected)
	assert.Equal(t, "Park City", h.SelectedResort.Get())
}

func TestSelectResortUnknown(t *testing.T) {
	h := NewHomeState([]string{DefaultResort})
	require.ErrorIs(t, h.SelectResort("Aspen"), ErrUnknownResort)
	assert.Equal(t, DefaultResort, h.SelectedResort.Get())
}

func TestHomeStepClamps(t *testing.T) {
	h := NewHomeState([]string{DefaultResort, "Vail"})
	h.SelectPrev()
	assert.Equal(t, DefaultResort, h.SelectedResort.Get())
	h.SelectNext()
	h.SelectNext()
	assert.Equal(t, "Vail", h.SelectedResort.Get())
}

func TestLeaderboardPeriods(t *testing.T) {
	l := NewLeaderboardState()
	assert.Equal(t, PeriodWeekly, l.Period.Get())

	l.SelectPrev()
	l.SelectPrev()
	assert.Equal(t, PeriodDaily, l.Period.Get())

	for range 5 {
		l.SelectNext()
	}
	assert.Equal(t, PeriodAllTime, l.Period.Get())

	require.NoError(t, l.SelectPeriod(PeriodMonthly))
	assert.Equal(t, PeriodMonthly, l.Period.Get())
	require.ErrorIs(t, l.SelectPeriod("Yearly"), ErrUnknownPeriod)
	assert.Equal(t, PeriodMonthly, l.Period.Get())
}

func TestProfileToggle(t *testing.T) {
	p := NewProfileState()
	assert.False(t, p.Connected.Get())
	assert.Equal(t, "Connect", p.ConnectLabel())

	p.ToggleConnection()
	assert.True(t, p.Connected.Get())
	assert.Equal(t, "Disconnect", p.ConnectLabel())

	p.ToggleConnection()
	assert.False(t, p.Connected.Get())
}

func TestParseTab(t *testing.T) {
	tests := []struct {
		in      string
		want    Tab
		wantErr bool
	}{
		{"home", TabHome, false},
		{"Session", TabSession, false},
		{" PROFILE ", TabProfile, false},
		{"2", TabProfile, false},
		{"leaderboard", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTab(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTabStateSelectAndWrap(t *testing.T) {
	s := NewTabState(Tab(7))
	assert.Equal(t, TabHome, s.Selected.Get())

	assert.False(t, s.Select(Tab(3)))
	assert.Equal(t, TabHome, s.Selected.Get())
	assert.True(t, s.Select(TabProfile))

	s.Next()
	assert.Equal(t, TabHome, s.Selected.Get())
	s.Prev()
	assert.Equal(t, TabProfile, s.Selected.Get())
	assert.Equal(t, "Profile", TabProfile.String())
	assert.Equal(t, "tab(9)", Tab(9).String())
}

func TestTabText(t *testing.T) {
	var tab Tab
	require.NoError(t, tab.UnmarshalText([]byte("session")))
	assert.Equal(t, TabSession, tab)

	b, err := TabProfile.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "profile", string(b))

	assert.Error(t, tab.UnmarshalText([]byte("leaderboard")))
	assert.Equal(t, TabSession, tab)
	_, err = Tab(5).MarshalText()
	assert.Error(t, err)
}
