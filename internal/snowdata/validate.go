package snowdata

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// Validate checks the invariants the screens rely on that a JSON schema
// cannot express.
func (s *Snapshot) Validate() error {
	if len(s.Resorts) == 0 {
		return invalid("/resorts", "at least one resort is required")
	}
	seen := make(map[string]bool, len(s.Resorts))
	for i, r := range s.Resorts {
		if r.Name == "" {
			return invalid(fmt.Sprintf("/resorts/%d/name", i), "empty resort name")
		}
		if seen[r.Name] {
			return invalid(fmt.Sprintf("/resorts/%d/name", i), "duplicate resort %q", r.Name)
		}
		seen[r.Name] = true
	}

	for i, e := range s.Equipment {
		if e.Battery != nil && (*e.Battery < 0 || *e.Battery > 100) {
			return invalid(fmt.Sprintf("/equipment/%d/battery", i), "battery level %d outside 0..100", *e.Battery)
		}
	}

	for i, t := range s.Session.Tricks {
		if t.XP < 0 {
			return invalid(fmt.Sprintf("/session/tricks/%d/xp", i), "negative xp %d", t.XP)
		}
		if _, ok := outcomeNames[t.Outcome]; !ok {
			return invalid(fmt.Sprintf("/session/tricks/%d/outcome", i), "unknown outcome %d", int(t.Outcome))
		}
	}

	ranks := make(map[int]bool, 3)
	for i, p := range s.Leaderboard.Podium {
		if p.Rank < 1 || p.Rank > 3 {
			return invalid(fmt.Sprintf("/leaderboard/podium/%d/rank", i), "podium rank %d outside 1..3", p.Rank)
		}
		if ranks[p.Rank] {
			return invalid(fmt.Sprintf("/leaderboard/podium/%d/rank", i), "duplicate podium rank %d", p.Rank)
		}
		ranks[p.Rank] = true
	}

	dev := s.Profile.Device
	if dev.Battery < 0 || dev.Battery > 100 {
		return invalid("/profile/device/battery", "battery level %d outside 0..100", dev.Battery)
	}
	if !semver.IsValid(dev.Firmware) {
		return invalid("/profile/device/firmware", "firmware version %q is not a semantic version", dev.Firmware)
	}
	return nil
}
