package profile

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/snowin/snowin/internal/snowdata"
	"github.com/snowin/snowin/internal/ui/components"
	"github.com/snowin/snowin/internal/ui/theme"
)

func (p *ProfileScreen) compose(width int) string {
	cw := components.ContentWidth(width)
	inner := components.InnerWidth(cw)

	cards := make([]components.StatCard, 0, len(p.snap.Profile.Stats))
	for _, s := range p.snap.Profile.Stats {
		cards = append(cards, components.StatCard{Title: s.Title, Value: s.Value, Icon: s.Icon})
	}

	sections := []string{
		p.renderHeader(cw),
		components.Card("Device", p.renderDevice(inner), cw),
		theme.Section.Render("Stats Overview"),
		components.StatGrid(cards, 2, cw),
		components.Card("Settings", p.settings.View(inner), cw),
		components.Card("Social", p.renderSocial(inner), cw),
	}
	return strings.Join(sections, "\n")
}

func (p *ProfileScreen) renderHeader(cw int) string {
	r := p.snap.Rider
	avatar := lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(theme.Secondary).
		Bold(true).
		Padding(1, 2).
		Render(initials(r.Name))

	stat := func(value, label string) string {
		return lipgloss.NewStyle().Width(12).Align(lipgloss.Center).Render(
			theme.Section.Render(value) + "\n" + theme.Subtitle.Render(label))
	}
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		stat(snowdata.FormatXP(r.TotalXP), "Total XP"),
		stat(fmt.Sprint(r.Sessions), "Sessions"),
		stat(fmt.Sprint(r.Badges), "Badges"),
	)

	who := theme.Section.Render(r.Name) + "\n" +
		theme.Subtitle.Render(fmt.Sprintf("Level %d", r.Level)) + "\n\n" + stats

	return components.Card("", lipgloss.JoinHorizontal(lipgloss.Top, avatar, "  ", who), cw)
}

// renderDevice shows the device name and connect button. Battery and
// firmware rows appear only while connected.
func (p *ProfileScreen) renderDevice(inner int) string {
	dev := p.snap.Profile.Device
	connected := p.state.Connected.Get()

	status := theme.ClassWarning.Style().Render("Not connected")
	if connected {
		status = theme.ClassSuccess.Style().Render(snowdata.StatusConnected)
	}
	left := theme.Body.Bold(true).Render(dev.Name) + "\n" + status
	button := components.NewButton(p.state.ConnectLabel(), "c", true).View()

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Center,
		lipgloss.NewStyle().Width(max(inner-lipgloss.Width(button), 1)).Render(left),
		button,
	)}
	if connected {
		rows = append(rows,
			components.SpaceBetween(theme.Subtitle.Render("Battery"),
				components.NewBatteryIndicator(dev.Battery, 10).View(), inner),
			components.SpaceBetween(theme.Subtitle.Render("Firmware"),
				theme.Body.Render(dev.Firmware), inner),
		)
	}
	return strings.Join(rows, "\n")
}

func (p *ProfileScreen) renderSocial(inner int) string {
	insta := components.SpaceBetween(
		theme.Body.Render("◎ Instagram"),
		theme.Hint.Render("[i] connect"),
		inner,
	)
	friends := theme.Hint.Render("No friends yet")
	if names := p.snap.Profile.Friends; len(names) > 0 {
		chips := make([]string, 0, len(names))
		for _, n := range names {
			chips = append(chips, theme.Chip.Render(initials(n)+" "+n))
		}
		friends = lipgloss.NewStyle().Width(inner).Render(strings.Join(chips, " "))
	}
	return insta + "\n\n" + theme.Subtitle.Render("Friends") + "\n" + friends
}

// initials returns the upper-cased first letter of each word.
func initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		b.WriteString(strings.ToUpper(string([]rune(w)[0])))
	}
	return b.String()
}
