package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/dailyworkout/internal/constants"
	"github.com/julianstephens/dailyworkout/internal/models"
	"github.com/julianstephens/dailyworkout/internal/weather"
)

const setupNotice = "No weather location set. Press l to add one for running advisories."

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StatePickDate, constants.StateSetLocation:
		if m.form != nil {
			content = m.form.View()
		}
	default:
		content = lipgloss.JoinVertical(
			lipgloss.Left,
			m.viewToday(),
			m.viewUpcoming(),
		)
	}

	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		content,
		m.viewStatus(),
		m.help.View(m),
	))
}

func (m Model) viewHeader() string {
	title := titleStyle.Render("Daily Workout")
	date := dateStyle.Render(m.anchor.Format("Monday, January 2, 2006"))
	if !m.anchor.Equal(m.today) {
		date += mutedStyle.Render("  (t for today)")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", date)
}

func (m Model) viewToday() string {
	day := m.week.Today

	var lines []string
	for _, a := range day.Workout {
		lines = append(lines, activityStyle.Render(a.Icon+"  "+a.Name))
	}

	if m.location == nil {
		lines = append(lines, "", mutedStyle.Render(setupNotice))
	} else if a := m.advisory(day); a != nil {
		lines = append(lines, "", advisoryLine(a))
	}

	return todayBoxStyle.Render(strings.Join(lines, "\n"))
}

func advisoryLine(a *models.Advisory) string {
	if a.Good {
		return goodStyle.Render("🌤️ " + weather.Label(a))
	}
	return badStyle.Render("⚠️ " + weather.Label(a))
}

func (m Model) viewUpcoming() string {
	rows := []string{sectionStyle.Render("Coming up this week")}
	for _, day := range m.week.Upcoming {
		row := previewDateStyle.Render(day.Date.Format("Mon, Jan 2"))

		var names []string
		for _, a := range day.Workout {
			names = append(names, a.Icon+" "+a.Name)
		}
		row += strings.Join(names, "  ")

		if a := m.advisory(day); a != nil {
			label := weather.ShortLabel(a)
			if a.Good {
				row += "  " + goodStyle.Render(label)
			} else {
				row += "  " + badStyle.Render(label)
			}
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func (m Model) viewStatus() string {
	switch {
	case m.errMsg != "":
		return "\n" + errorStyle.Render(m.errMsg)
	case m.loading && m.status == "":
		return "\n" + mutedStyle.Render("Fetching forecast...")
	case m.status != "":
		return "\n" + mutedStyle.Render(m.status)
	}
	return ""
}
