package snowdata

import (
	"fmt"
	"strings"
)

// Outcome grades how cleanly a trick was landed.
type Outcome int

const (
	OutcomePerfect Outcome = iota
	OutcomePartial
	OutcomeFailed
)

var outcomeNames = map[Outcome]string{
	OutcomePerfect: "perfect",
	OutcomePartial: "partial",
	OutcomeFailed:  "failed",
}

// String returns the lowercase outcome name.
func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// ParseOutcome parses an outcome name, ignoring case.
func ParseOutcome(s string) (Outcome, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for o, name := range outcomeNames {
		if name == want {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown trick outcome %q", s)
}

func (o Outcome) MarshalText() ([]byte, error) {
	if _, ok := outcomeNames[o]; !ok {
		return nil, fmt.Errorf("unknown trick outcome %d", int(o))
	}
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(b []byte) error {
	parsed, err := ParseOutcome(string(b))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// TimeOfDay is a wall-clock time without a date, e.g. 10:30.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" in 24-hour form.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var t TimeOfDay
	if _, err := fmt.Sscanf(s, "%d:%d", &t.Hour, &t.Minute); err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 {
		return TimeOfDay{}, fmt.Errorf("time of day %q out of range", s)
	}
	return t, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	parsed, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TrickEvent is one recorded maneuver in a run.
type TrickEvent struct {
	Name    string    `json:"name"`
	Time    TimeOfDay `json:"time"`
	XP      int       `json:"xp"`
	Outcome Outcome   `json:"outcome"`
}

// SessionStats are the headline numbers of a reviewed run. They are stored
// as recorded and are not recomputed from the trick log.
type SessionStats struct {
	DurationSeconds int     `json:"duration_seconds"`
	DistanceKm      float64 `json:"distance_km"`
	XPEarned        int     `json:"xp_earned"`
	AvgSpeedKmh     float64 `json:"avg_speed_kmh"`
}

// Session is the reviewable content of a run.
type Session struct {
	Stats  SessionStats `json:"stats"`
	Tricks []TrickEvent `json:"tricks"`
}

// Rider is the signed-in snowboarder.
type Rider struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	TotalXP  int    `json:"total_xp"`
	Sessions int    `json:"sessions"`
	Badges   int    `json:"badges"`
}

// Condition is a labelled slope condition such as snow depth.
type Condition struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

// Weather is the current forecast for the rider's resort.
type Weather struct {
	Location     string      `json:"location"`
	TemperatureC int         `json:"temperature_c"`
	Sky          string      `json:"sky"`
	Icon         string      `json:"icon"`
	Conditions   []Condition `json:"conditions"`
}

// Resort is a selectable ski resort.
type Resort struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Resort statuses with a fixed colour.
const (
	ResortOpen   = "Open"
	ResortClosed = "Closed"
)

// Equipment is a piece of gear with an optional battery reading.
type Equipment struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Battery *int   `json:"battery,omitempty"`
}

// StatusConnected marks equipment that is paired and healthy.
const StatusConnected = "Connected"

// NewsItem is a short headline for the home feed.
type NewsItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Age         string `json:"age"`
	Icon        string `json:"icon"`
}

// PodiumEntry is one of the top three performers.
type PodiumEntry struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Category names the current leader of a single discipline.
type Category struct {
	Title  string `json:"title"`
	Leader string `json:"leader"`
	Value  string `json:"value"`
}

// Ranking is a row in the friends ranking.
type Ranking struct {
	Rank int    `json:"rank"`
	Name string `json:"name"`
	XP   int    `json:"xp"`
}

// Leaderboard groups the ranking tables.
type Leaderboard struct {
	Podium     []PodiumEntry `json:"podium"`
	Categories []Category    `json:"categories"`
	Friends    []Ranking     `json:"friends"`
}

// StatCard is a labelled personal best.
type StatCard struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

// Device describes the tracker shown on the profile screen.
type Device struct {
	Name     string `json:"name"`
	Battery  int    `json:"battery"`
	Firmware string `json:"firmware"`
}

// Profile is the profile screen content.
type Profile struct {
	Device   Device     `json:"device"`
	Stats    []StatCard `json:"stats"`
	Settings []string   `json:"settings"`
	Friends  []string   `json:"friends"`
}

// Snapshot is everything the screens display, captured at one instant.
type Snapshot struct {
	Rider       Rider       `json:"rider"`
	Weather     Weather     `json:"weather"`
	Resorts     []Resort    `json:"resorts"`
	Equipment   []Equipment `json:"equipment"`
	News        []NewsItem  `json:"news"`
	Session     Session     `json:"session"`
	Leaderboard Leaderboard `json:"leaderboard"`
	Profile     Profile     `json:"profile"`
}

// ResortNames lists resort names in display order.
func (s *Snapshot) ResortNames() []string {
	names := make([]string, 0, len(s.Resorts))
	for _, r := range s.Resorts {
		names = append(names, r.Name)
	}
	return names
}
