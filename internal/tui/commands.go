package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/dailyworkout/internal/constants"
	"github.com/julianstephens/dailyworkout/internal/models"
	"github.com/julianstephens/dailyworkout/internal/weather"
)

type forecastMsg struct {
	forecast models.Forecast
	err      error
}

type locationMsg struct {
	location models.Location
	err      error
}

func fetchForecast(cache *weather.Cache, loc models.Location) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.WeatherTimeout)
		defer cancel()

		f, err := cache.Lookup(ctx, loc)
		return forecastMsg{forecast: f, err: err}
	}
}

func geocode(provider weather.Provider, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.WeatherTimeout)
		defer cancel()

		loc, err := provider.Geocode(ctx, name)
		return locationMsg{location: loc, err: err}
	}
}
