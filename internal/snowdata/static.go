package snowdata

// Default returns the built-in snapshot. Every call returns a fresh copy so
// callers may not alias each other's slices.
func Default() *Snapshot {
	return &Snapshot{
		Rider: Rider{
			Name:     "John Doe",
			Level:    12,
			TotalXP:  2450,
			Sessions: 15,
			Badges:   8,
		},
		Weather: Weather{
			Location:     "Whistler, BC",
			TemperatureC: -2,
			Sky:          "Sunny",
			Icon:         "☀",
			Conditions: []Condition{
				{Title: "Snow Depth", Value: "180cm", Icon: "❄"},
				{Title: "Fresh Snow", Value: "15cm", Icon: "❅"},
				{Title: "Visibility", Value: "Good", Icon: "◉"},
			},
		},
		Resorts: []Resort{
			{Name: "Whistler Blackcomb", Status: "Open"},
			{Name: "Vail", Status: "Open"},
			{Name: "Park City", Status: "Open"},
			{Name: "Zermatt", Status: "Open"},
		},
		Equipment: []Equipment{
			{Name: "SnoWin Device", Status: StatusConnected, Battery: intPtr(75)},
			{Name: "Snowboard Bindings", Status: "Check Required"},
			{Name: "Smart Goggles", Status: "Low Battery", Battery: intPtr(15)},
		},
		News: []NewsItem{
			{
				Title:       "New Snow Park Opening",
				Description: "Whistler Blackcomb announces new terrain park features",
				Age:         "2h ago",
				Icon:        "❄",
			},
			{
				Title:       "Weekend Weather Alert",
				Description: "Heavy snowfall expected this weekend",
				Age:         "4h ago",
				Icon:        "❅",
			},
		},
		Session: Session{
			Stats: SessionStats{
				DurationSeconds: 110 * 60,
				DistanceKm:      5.0,
				XPEarned:        500,
				AvgSpeedKmh:     32,
			},
			Tricks: []TrickEvent{
				{Name: "Jump (20m)", Time: TimeOfDay{Hour: 10, Minute: 30}, XP: 110, Outcome: OutcomePerfect},
				{Name: "Flip (3 sec)", Time: TimeOfDay{Hour: 10, Minute: 45}, XP: 89, Outcome: OutcomePartial},
				{Name: "360 Spin", Time: TimeOfDay{Hour: 11, Minute: 15}, XP: 75, Outcome: OutcomeFailed},
			},
		},
		Leaderboard: Leaderboard{
			Podium: []PodiumEntry{
				{Rank: 2, Name: "Alex Kim", Score: 2850},
				{Rank: 1, Name: "Sarah Chen", Score: 3200},
				{Rank: 3, Name: "Mike Ross", Score: 2600},
			},
			Categories: []Category{
				{Title: "Highest Jump", Leader: "Sarah Chen", Value: "3.2m"},
				{Title: "Top Speed", Leader: "Mike Ross", Value: "85 km/h"},
				{Title: "Most Tricks", Leader: "Alex Kim", Value: "42"},
			},
			Friends: []Ranking{
				{Rank: 1, Name: "You", XP: 2450},
				{Rank: 2, Name: "Chris Wong", XP: 2200},
				{Rank: 3, Name: "Emma Davis", XP: 2100},
				{Rank: 4, Name: "Tom Wilson", XP: 1950},
				{Rank: 5, Name: "Lisa Park", XP: 1800},
			},
		},
		Profile: Profile{
			Device: Device{
				Name:     "SnoWin Device",
				Battery:  75,
				Firmware: "v1.2.3",
			},
			Stats: []StatCard{
				{Title: "Highest Jump", Value: "2.5m", Icon: "↑"},
				{Title: "Top Speed", Value: "45 km/h", Icon: "◷"},
				{Title: "Longest Run", Value: "5.2 km", Icon: "⚑"},
				{Title: "Perfect Tricks", Value: "24", Icon: "★"},
			},
			Settings: []string{"Profile Settings", "Notifications", "Privacy", "Help & Support"},
			Friends:  []string{"Chris", "Emma", "Tom", "Lisa", "Alex"},
		},
	}
}

func intPtr(v int) *int { return &v }
