package viewstate

import (
	"fmt"
	"strings"
)

// Tab is a destination of the navigation shell.
type Tab int

const (
	TabHome Tab = iota
	TabSession
	TabProfile
)

// TabCount is the number of shell destinations.
const TabCount = 3

var tabNames = [TabCount]string{"Home", "Session", "Profile"}

// Valid reports whether t is one of the shell destinations.
func (t Tab) Valid() bool {
	return t >= 0 && int(t) < TabCount
}

func (t Tab) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tab(%d)", int(t))
	}
	return tabNames[t]
}

// Tabs returns all destinations in tab-bar order.
func Tabs() []Tab {
	return []Tab{TabHome, TabSession, TabProfile}
}

// ParseTab parses a tab name ("home", "Session") or index ("0".."2").
func ParseTab(s string) (Tab, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, t := range Tabs() {
		if strings.ToLower(t.String()) == want || fmt.Sprint(int(t)) == want {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown tab %q: must be home, session or profile", s)
}

func (t Tab) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid tab %d", int(t))
	}
	return []byte(strings.ToLower(t.String())), nil
}

func (t *Tab) UnmarshalText(b []byte) error {
	parsed, err := ParseTab(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TabState is the shell's selected tab.
type TabState struct {
	Selected *Cell[Tab]
}

var _ Notifier = (*TabState)(nil)

// NewTabState selects initial, falling back to TabHome when it is invalid.
func NewTabState(initial Tab) *TabState {
	if !initial.Valid() {
		initial = TabHome
	}
	return &TabState{Selected: NewCell("shell.selectedTab", initial)}
}

// Select switches to t. Invalid tabs are ignored and reported as false.
func (s *TabState) Select(t Tab) bool {
	if !t.Valid() {
		return false
	}
	s.Selected.Set(t)
	return true
}

// Next moves to the following tab, wrapping around.
func (s *TabState) Next() {
	s.Selected.Set((s.Selected.Get() + 1) % TabCount)
}

// Prev moves to the previous tab, wrapping around.
func (s *TabState) Prev() {
	s.Selected.Set((s.Selected.Get() + TabCount - 1) % TabCount)
}

func (s *TabState) OnChange(fn func()) {
	onAny(fn, watch(s.Selected))
}
