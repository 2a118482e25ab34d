package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/dailyworkout/internal/constants"
	"github.com/julianstephens/dailyworkout/internal/models"
	"github.com/julianstephens/dailyworkout/internal/prefs"
	"github.com/julianstephens/dailyworkout/internal/scheduler"
	"github.com/julianstephens/dailyworkout/internal/storage"
	"github.com/julianstephens/dailyworkout/internal/utils"
	"github.com/julianstephens/dailyworkout/internal/weather"
)

// SetupNotice is shown in place of advisories while no location is saved.
const SetupNotice = "No weather location set. Run 'workout location set <city>' to see running advisories."

type Context struct {
	Store     storage.Provider
	Weather   weather.Provider
	Forecasts *weather.Cache
	Out       io.Writer
}

// Session is everything a command needs to show the workouts around one
// anchor day.
type Session struct {
	Settings  models.Settings
	Scheduler *scheduler.Scheduler
	Anchor    time.Time
}

func (c *Context) Writer() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Writer(), format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Writer(), args...)
}

// Settings loads the stored settings with defaults applied.
func (c *Context) Settings() (models.Settings, error) {
	settings, err := prefs.LoadSettings(c.Store)
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// Session resolves the date argument ("" or "today" for the current day) and
// builds a scheduler honoring the stored rule settings.
func (c *Context) Session(date string) (Session, error) {
	settings, err := c.Settings()
	if err != nil {
		return Session{}, err
	}

	anchor, err := utils.ResolveDate(date, settings)
	if err != nil {
		return Session{}, err
	}

	sched, err := scheduler.NewFromSettings(settings)
	if err != nil {
		return Session{}, err
	}

	return Session{
		Settings:  settings,
		Scheduler: sched,
		Anchor:    anchor,
	}, nil
}

// Provider returns the weather provider, defaulting to Open-Meteo.
func (c *Context) Provider() weather.Provider {
	if c.Weather == nil {
		c.Weather = weather.NewClient()
	}
	return c.Weather
}

// Cache returns the forecast cache, creating it on first use.
func (c *Context) Cache() *weather.Cache {
	if c.Forecasts == nil {
		c.Forecasts = weather.NewCache(c.Provider(), constants.ForecastCacheTTL)
	}
	return c.Forecasts
}

// Forecast returns the forecast for the saved location. It returns
// errors.ErrNoLocation when none is saved. Network failures yield an empty
// forecast and are only logged, so callers can still print workouts.
func (c *Context) Forecast(ctx context.Context) (models.Forecast, error) {
	loc, err := prefs.LoadLocation(c.Store)
	if err != nil {
		return models.Forecast{}, err
	}

	// Lookup logs failures and degrades to an empty forecast
	forecast, _ := c.Cache().Lookup(ctx, loc)
	return forecast, nil
}

// Advisories returns the running advisory for each day that includes a run,
// keyed by ISO date. It returns errors.ErrNoLocation when no location is
// saved. The forecast is only requested when some day has a run.
func (c *Context) Advisories(ctx context.Context, days ...models.ScheduledDay) (map[string]*models.Advisory, error) {
	advisories := make(map[string]*models.Advisory)

	needed := false
	for _, day := range days {
		if day.Workout.Has(constants.ActivityRun) {
			needed = true
			break
		}
	}

	if !needed {
		_, err := prefs.LoadLocation(c.Store)
		return advisories, err
	}

	forecast, err := c.Forecast(ctx)
	if err != nil {
		return advisories, err
	}
	for _, day := range days {
		key := day.DateKey()
		if a := weather.AdviseWorkout(day.Workout, key, forecast); a != nil {
			advisories[key] = a
		}
	}
	return advisories, nil
}

// FormatDate renders the long form used for the anchor day.
func FormatDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// FormatShortDate renders the compact form used for preview rows.
func FormatShortDate(t time.Time) string {
	return t.Format("Mon, Jan 2")
}

// FormatWorkout joins the activity names of a workout.
func FormatWorkout(w models.Workout) string {
	return strings.Join(w.Names(), " + ")
}
