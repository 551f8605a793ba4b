package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/snowin/snowin/internal/route"
	"github.com/snowin/snowin/internal/snowdata"
	"github.com/snowin/snowin/internal/ui/components"
	"github.com/snowin/snowin/internal/ui/theme"
)

// mapHeight is the route diagram height in terminal rows.
const mapHeight = 10

func (s *SessionScreen) compose(width int) string {
	cw := components.ContentWidth(width)
	inner := components.InnerWidth(cw)

	return strings.Join([]string{
		s.renderProfileStrip(cw),
		s.renderSelectors(cw),
		components.Card("Session Summary", s.renderStats(inner), cw),
		components.Card("Route Map", s.renderMap(inner), cw),
		components.Card("Trick Log", components.TrickLog(s.snap.Session.Tricks, inner), cw),
		components.Card("3D Playback", s.renderPlayback(inner), cw),
	}, "\n")
}

func (s *SessionScreen) renderProfileStrip(cw int) string {
	r := s.snap.Rider
	left := theme.Section.Render(r.Name) + "  " +
		theme.Subtitle.Render(fmt.Sprintf("Level %d Snowboarder", r.Level))
	right := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(snowdata.FormatXP(r.TotalXP) + " XP")
	return components.SpaceBetween(left, right, cw)
}

func (s *SessionScreen) renderSelectors(cw int) string {
	date := theme.Subtitle.Render("Date ") +
		theme.Body.Bold(true).Render(snowdata.FormatDate(s.state.SelectedDate.Get())) +
		theme.Hint.Render(" [d]")
	run := theme.Subtitle.Render("Run ") +
		theme.Body.Bold(true).Render(s.state.SelectedRun.Get()) +
		theme.Hint.Render(" [r]")
	return components.SpaceBetween(date, run, cw)
}

func (s *SessionScreen) renderStats(inner int) string {
	st := s.snap.Session.Stats
	boxes := []components.StatBox{
		{Title: "Duration", Value: snowdata.FormatDuration(st.DurationSeconds)},
		{Title: "Distance", Value: snowdata.FormatDistance(st.DistanceKm), Unit: "km"},
		{Title: "XP Earned", Value: snowdata.FormatXP(st.XPEarned)},
		{Title: "Avg Speed", Value: snowdata.FormatSpeed(st.AvgSpeedKmh), Unit: "km/h"},
	}
	colWidth := max(inner/len(boxes), 8)
	cells := make([]string, 0, len(boxes))
	for _, b := range boxes {
		cells = append(cells, b.View(colWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (s *SessionScreen) renderMap(inner int) string {
	chart := route.Render(s.scene, inner, mapHeight, route.Palette{
		Slope:  theme.Primary,
		Path:   theme.Error,
		Marker: theme.Secondary,
	})
	legend := lipgloss.NewStyle().Foreground(theme.Primary).Render("━ slope") + "  " +
		lipgloss.NewStyle().Foreground(theme.Error).Render("┅ your line") + "  " +
		lipgloss.NewStyle().Foreground(theme.Secondary).Render("◆ trick")
	return chart + "\n" + legend
}

func (s *SessionScreen) renderPlayback(inner int) string {
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		components.NewButton("Play", "p", true).View(),
		"  ",
		components.NewButton("Replay", "R", false).View(),
	)
	return lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).Render(
		theme.Hint.Render("Replay "+s.state.SelectedRun.Get()+" in 3D") + "\n" + buttons,
	)
}
