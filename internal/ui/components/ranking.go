package components

import (
	"fmt"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/snowin/snowin/internal/snowdata"
	"github.com/snowin/snowin/internal/ui/theme"
)

// podiumHeights are the relative block heights for ranks 1, 2 and 3.
var podiumHeights = map[int]int{1: 100, 2: 80, 3: 60}

// PodiumOrder arranges entries second, first, third, as on a real podium.
// Missing ranks are skipped.
func PodiumOrder(entries []snowdata.PodiumEntry) []snowdata.PodiumEntry {
	out := make([]snowdata.PodiumEntry, 0, len(entries))
	for _, rank := range []int{2, 1, 3} {
		i := slices.IndexFunc(entries, func(e snowdata.PodiumEntry) bool { return e.Rank == rank })
		if i >= 0 {
			out = append(out, entries[i])
		}
	}
	return out
}

// Podium renders the top three as columns whose block heights scale with
// rank; maxBlock is the block height of the winner.
func Podium(entries []snowdata.PodiumEntry, width, maxBlock int) string {
	ordered := PodiumOrder(entries)
	if len(ordered) == 0 {
		return ""
	}
	colWidth := max(width/3, 10)
	tallest := max(maxBlock, 1)

	cols := make([]string, 0, len(ordered))
	for _, e := range ordered {
		medal := lipgloss.NewStyle().Foreground(theme.MedalColor(e.Rank)).Bold(true)
		blockHeight := max(tallest*podiumHeights[e.Rank]/100, 1)
		block := medal.Render(strings.TrimSuffix(strings.Repeat(strings.Repeat("█", colWidth-4)+"\n", blockHeight), "\n"))

		col := lipgloss.JoinVertical(lipgloss.Center,
			theme.Body.Bold(true).Render(e.Name),
			theme.Subtitle.Render(snowdata.FormatXP(e.Score)),
			medal.Render(fmt.Sprintf("#%d", e.Rank)),
			block,
		)
		cols = append(cols, lipgloss.NewStyle().Width(colWidth).Align(lipgloss.Center).Render(col))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, cols...)
}

// CategoryRow renders a leaderboard category: title, leader and value.
func CategoryRow(c snowdata.Category, width int) string {
	left := theme.Section.Render(c.Title) + "  " + theme.Subtitle.Render(c.Leader)
	return SpaceBetween(left, lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(c.Value), width)
}

// RankingRow renders one friends-ranking line. The row for the current
// rider is highlighted.
func RankingRow(r snowdata.Ranking, self bool, width int) string {
	name := theme.Body.Render(r.Name)
	if self {
		name = theme.Selected.Render(r.Name)
	}
	left := lipgloss.NewStyle().Foreground(theme.MedalColor(r.Rank)).Width(4).Render(fmt.Sprintf("#%d", r.Rank)) + name
	return SpaceBetween(left, theme.Body.Render(snowdata.FormatXP(r.XP)+" XP"), width)
}
