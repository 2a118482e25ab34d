package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/julianstephens/dailyworkout/internal/cli"
	"github.com/julianstephens/dailyworkout/internal/constants"
	werrors "github.com/julianstephens/dailyworkout/internal/errors"
	"github.com/julianstephens/dailyworkout/internal/models"
	"github.com/julianstephens/dailyworkout/internal/weather"
)

type WeekCmd struct {
	Date string `arg:"" optional:"" help:"Anchor date (YYYY-MM-DD or 'today')." default:"today"`
	Days int    `help:"Number of upcoming days (defaults to the preview_days setting)." short:"n"`
}

func (c *WeekCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Session(c.Date)
	if err != nil {
		return err
	}

	days := s.Settings.PreviewDays
	if c.Days != 0 {
		days = c.Days
	}
	if days < constants.MinPreviewDays || days > constants.MaxPreviewDays {
		return fmt.Errorf("--days must be between %d and %d", constants.MinPreviewDays, constants.MaxPreviewDays)
	}

	week := s.Scheduler.Week(s.Anchor, days)

	advisories, err := ctx.Advisories(context.Background(), append([]models.ScheduledDay{week.Today}, week.Upcoming...)...)
	noLocation := errors.Is(err, werrors.ErrNoLocation)
	if err != nil && !noLocation {
		return err
	}

	ctx.Printf("%s  %s %s\n\n", cli.FormatDate(week.Today.Date), week.Today.Workout.Icon(), cli.FormatWorkout(week.Today.Workout))
	ctx.Println("Coming up this week")

	table := cli.NewTable(ctx.Writer(), "Date", "", "Workout", "Weather")
	for _, day := range week.Upcoming {
		table.AddRow(
			cli.FormatShortDate(day.Date),
			day.Workout.Icon(),
			cli.FormatWorkout(day.Workout),
			weather.ShortLabel(advisories[day.DateKey()]),
		)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render schedule: %w", err)
	}

	if noLocation {
		ctx.Println()
		ctx.Println(cli.SetupNotice)
	}
	return nil
}
