package viewstate

import (
	"errors"
	"fmt"
	"slices"
)

// Period is a leaderboard time window.
type Period string

const (
	PeriodDaily   Period = "Daily"
	PeriodWeekly  Period = "Weekly"
	PeriodMonthly Period = "Monthly"
	PeriodAllTime Period = "All Time"
)

var periods = []Period{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodAllTime}

// ErrUnknownPeriod is returned when selecting a period outside Periods.
var ErrUnknownPeriod = errors.New("unknown leaderboard period")

// Periods returns the selectable periods in segment order.
func Periods() []Period {
	return slices.Clone(periods)
}

// LeaderboardState tracks the selected period. The period is cosmetic: the
// rankings shown do not depend on it.
type LeaderboardState struct {
	Period *Cell[Period]
}

var _ Notifier = (*LeaderboardState)(nil)

// NewLeaderboardState starts on the weekly view.
func NewLeaderboardState() *LeaderboardState {
	return &LeaderboardState{Period: NewCell("leaderboard.period", PeriodWeekly)}
}

// SelectPeriod sets the period.
func (l *LeaderboardState) SelectPeriod(p Period) error {
	if !slices.Contains(periods, p) {
		return fmt.Errorf("%w: %q", ErrUnknownPeriod, p)
	}
	l.Period.Set(p)
	return nil
}

// SelectNext moves one segment right, stopping at the last.
func (l *LeaderboardState) SelectNext() {
	i := min(slices.Index(periods, l.Period.Get())+1, len(periods)-1)
	l.Period.Set(periods[i])
}

// SelectPrev moves one segment left, stopping at the first.
func (l *LeaderboardState) SelectPrev() {
	i := max(slices.Index(periods, l.Period.Get())-1, 0)
	l.Period.Set(periods[i])
}

func (l *LeaderboardState) OnChange(fn func()) {
	onAny(fn, watch(l.Period))
}
