package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dailyworkout/internal/constants"
	werrors "github.com/julianstephens/dailyworkout/internal/errors"
	"github.com/julianstephens/dailyworkout/internal/logger"
	"github.com/julianstephens/dailyworkout/internal/models"
	"github.com/julianstephens/dailyworkout/internal/prefs"
	"github.com/julianstephens/dailyworkout/internal/scheduler"
	"github.com/julianstephens/dailyworkout/internal/utils"
	"github.com/julianstephens/dailyworkout/internal/weather"
)

// Config carries the collaborators the TUI needs.
type Config struct {
	Store     prefs.Store
	Scheduler *scheduler.Scheduler
	Settings  models.Settings
	Anchor    time.Time
	Weather   weather.Provider
	Forecasts *weather.Cache
}

type Model struct {
	store     prefs.Store
	scheduler *scheduler.Scheduler
	settings  models.Settings
	weather   weather.Provider
	forecasts *weather.Cache

	today    time.Time
	anchor   time.Time
	week     models.Week
	location *models.Location
	forecast models.Forecast
	loading  bool
	status   string
	errMsg   string

	state    constants.SessionState
	keys     KeyMap
	help     help.Model
	form     *huh.Form
	input    *formInput
	quitting bool
	width    int
	height   int
}

// formInput is shared by every copy of the model so huh can write into it.
type formInput struct {
	Date     string
	Location string
}

func NewModel(cfg Config) Model {
	if cfg.Scheduler == nil {
		cfg.Scheduler = scheduler.New()
	}
	if cfg.Weather == nil {
		cfg.Weather = weather.NewClient()
	}
	if cfg.Forecasts == nil {
		cfg.Forecasts = weather.NewCache(cfg.Weather, constants.ForecastCacheTTL)
	}
	models.ApplyDefaultSettings(&cfg.Settings)

	anchor := cfg.Anchor
	if anchor.IsZero() {
		anchor = time.Now()
	}

	m := Model{
		store:     cfg.Store,
		scheduler: cfg.Scheduler,
		settings:  cfg.Settings,
		weather:   cfg.Weather,
		forecasts: cfg.Forecasts,
		today:     utils.Day(anchor),
		anchor:    utils.Day(anchor),
		forecast:  models.Forecast{},
		state:     constants.StateToday,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		input:     &formInput{},
	}

	loc, err := prefs.LoadLocation(cfg.Store)
	switch {
	case err == nil:
		m.location = &loc
	case !errors.Is(err, werrors.ErrNoLocation):
		logger.Warn("failed to load location", "error", err)
		m.errMsg = "Failed to load location: " + err.Error()
	}

	m.rebuild()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.location == nil {
		return nil
	}
	return fetchForecast(m.forecasts, *m.location)
}

func (m Model) Anchor() time.Time {
	return m.anchor
}

func (m Model) Week() models.Week {
	return m.week
}

// setAnchor moves the view to day and recomputes the schedule.
func (m *Model) setAnchor(day time.Time) {
	m.anchor = utils.Day(day)
	m.rebuild()
}

func (m *Model) rebuild() {
	m.week = m.scheduler.Week(m.anchor, m.settings.PreviewDays)
}

// advisory returns the running advisory for a scheduled day, if any.
func (m Model) advisory(day models.ScheduledDay) *models.Advisory {
	return weather.AdviseWorkout(day.Workout, day.DateKey(), m.forecast)
}

func (m Model) ShortHelp() []key.Binding {
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}
