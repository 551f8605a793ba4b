package viewstate

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// The fixed set of runs a session can be reviewed by.
const (
	RunBlueDiary    = "1st Run - Blue Diary"
	RunRedRoute     = "2nd Run - Red Route"
	RunBlackDiamond = "3rd Run - Black Diamond"
)

var runLabels = []string{RunBlueDiary, RunRedRoute, RunBlackDiamond}

// ErrUnknownRun is returned when selecting a label outside RunLabels.
var ErrUnknownRun = errors.New("unknown run label")

// RunLabels returns the selectable run labels in picker order.
func RunLabels() []string {
	return slices.Clone(runLabels)
}

// IsRunLabel reports whether label is one of RunLabels.
func IsRunLabel(label string) bool {
	return slices.Contains(runLabels, label)
}

// SessionState is the session screen's selection state. The two pickers are
// independent: opening one does not close the other.
type SessionState struct {
	SelectedDate      *Cell[time.Time]
	SelectedRun       *Cell[string]
	ShowingDatePicker *Cell[bool]
	ShowingRunPicker  *Cell[bool]
}

var _ Notifier = (*SessionState)(nil)

// NewSessionState returns the state of a freshly mounted session screen:
// today's date, the first run, both pickers closed.
func NewSessionState(now time.Time) *SessionState {
	return &SessionState{
		SelectedDate:      NewCell("session.selectedDate", startOfDay(now)),
		SelectedRun:       NewCell("session.selectedRun", RunBlueDiary),
		ShowingDatePicker: NewCell("session.showingDatePicker", false),
		ShowingRunPicker:  NewCell("session.showingRunPicker", false),
	}
}

// OpenDatePicker shows the date picker.
func (s *SessionState) OpenDatePicker() {
	s.ShowingDatePicker.Set(true)
}

// ConfirmDate stores d and closes the date picker. Any date is accepted.
func (s *SessionState) ConfirmDate(d time.Time) {
	s.SelectedDate.Set(startOfDay(d))
	s.ShowingDatePicker.Set(false)
}

// DismissDatePicker closes the date picker and keeps the selected date.
func (s *SessionState) DismissDatePicker() {
	s.ShowingDatePicker.Set(false)
}

// OpenRunPicker shows the run picker.
func (s *SessionState) OpenRunPicker() {
	s.ShowingRunPicker.Set(true)
}

// SelectRun stores label and closes the run picker. Labels outside
// RunLabels are rejected and leave the state untouched.
func (s *SessionState) SelectRun(label string) error {
	if !IsRunLabel(label) {
		return fmt.Errorf("%w: %q", ErrUnknownRun, label)
	}
	s.SelectedRun.Set(label)
	s.ShowingRunPicker.Set(false)
	return nil
}

// DismissRunPicker closes the run picker and keeps the selected run.
func (s *SessionState) DismissRunPicker() {
	s.ShowingRunPicker.Set(false)
}

// PickerOpen reports whether either picker is showing.
func (s *SessionState) PickerOpen() bool {
	return s.ShowingDatePicker.Get() || s.ShowingRunPicker.Get()
}

func (s *SessionState) OnChange(fn func()) {
	onAny(fn,
		watch(s.SelectedDate),
		watch(s.SelectedRun),
		watch(s.ShowingDatePicker),
		watch(s.ShowingRunPicker),
	)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
