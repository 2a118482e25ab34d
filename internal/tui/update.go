package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dailyworkout/internal/constants"
	"github.com/julianstephens/dailyworkout/internal/logger"
	"github.com/julianstephens/dailyworkout/internal/prefs"
	"github.com/julianstephens/dailyworkout/internal/utils"
	"github.com/julianstephens/dailyworkout/internal/weather"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case forecastMsg:
		m.loading = false
		if msg.err != nil {
			// Advisories simply disappear
			m.status = "Forecast unavailable"
			m.forecast = msg.forecast
			return m, nil
		}
		m.status = ""
		m.forecast = msg.forecast
		return m, nil

	case locationMsg:
		return m.handleLocation(msg)
	}

	switch m.state {
	case constants.StatePickDate, constants.StateSetLocation:
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev):
		m.setAnchor(utils.AddDays(m.anchor, -1))
	case key.Matches(msg, m.keys.Next):
		m.setAnchor(utils.AddDays(m.anchor, 1))
	case key.Matches(msg, m.keys.Today):
		m.setAnchor(m.today)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.PickDate):
		m.state = constants.StatePickDate
		m.input.Date = m.anchor.Format(constants.DateFormat)
		m.form = m.dateForm()
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Location):
		m.state = constants.StateSetLocation
		m.input.Location = ""
		if m.location != nil {
			m.input.Location = m.location.Name
		}
		m.form = m.locationForm()
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Refresh):
		if m.location == nil {
			m.errMsg = "Set a location first (press l)"
			return m, nil
		}
		m.forecasts.Purge()
		m.loading = true
		return m, fetchForecast(m.forecasts, *m.location)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateToday
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		state := m.state
		m.state = constants.StateToday
		m.form = nil
		if state == constants.StatePickDate {
			return m.applyDate()
		}
		return m.applyLocation()
	case huh.StateAborted:
		m.state = constants.StateToday
		m.form = nil
		return m, nil
	}
	return m, cmd
}

func (m Model) applyDate() (tea.Model, tea.Cmd) {
	day, err := utils.ParseDate(m.input.Date, m.anchor.Location())
	if err != nil {
		m.errMsg = "Invalid date format. Please use YYYY-MM-DD"
		return m, nil
	}
	m.setAnchor(day)
	return m, nil
}

func (m Model) applyLocation() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.input.Location)
	if name == "" {
		return m, nil
	}
	m.loading = true
	m.status = fmt.Sprintf("Looking up %s...", name)
	return m, geocode(m.weather, name)
}

func (m Model) handleLocation(msg locationMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.status = ""
	m.errMsg = ""

	if msg.err != nil {
		if errors.Is(msg.err, weather.ErrLocationNotFound) {
			m.errMsg = "Could not find that city. Please try another name or be more specific."
		} else {
			m.errMsg = "Location lookup failed: " + msg.err.Error()
		}
		return m, nil
	}

	if err := prefs.SaveLocation(m.store, msg.location); err != nil {
		m.errMsg = "Failed to save location: " + err.Error()
		return m, nil
	}
	logger.Info("location saved", "name", msg.location.Name)

	loc := msg.location
	m.location = &loc
	m.forecast = nil
	m.forecasts.Purge()

	display := loc.DisplayName
	if display == "" {
		display = loc.Name
	}
	if loc.Country != "" {
		display += ", " + loc.Country
	}
	m.status = "Location set to " + display
	m.loading = true
	return m, fetchForecast(m.forecasts, loc)
}

func (m Model) dateForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Show date").
				Description("YYYY-MM-DD").
				Value(&m.input.Date).
				Validate(func(s string) error {
					if _, err := utils.ParseDate(s, m.anchor.Location()); err != nil {
						return fmt.Errorf("invalid date, use YYYY-MM-DD")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func (m Model) locationForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Weather location").
				Description("City name used for running forecasts").
				Value(&m.input.Location).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("please enter a city name")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
