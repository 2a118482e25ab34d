package workouts

import (
	"context"
	"errors"

	"github.com/julianstephens/dailyworkout/internal/cli"
	werrors "github.com/julianstephens/dailyworkout/internal/errors"
	"github.com/julianstephens/dailyworkout/internal/models"
	"github.com/julianstephens/dailyworkout/internal/weather"
)

type TodayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Session(c.Date)
	if err != nil {
		return err
	}

	day := models.ScheduledDay{Date: s.Anchor, Workout: s.Scheduler.Today(s.Anchor)}

	ctx.Printf("%s\n\n", cli.FormatDate(day.Date))
	for _, a := range day.Workout {
		ctx.Printf("  %s  %s\n", a.Icon, a.Name)
	}

	advisories, err := ctx.Advisories(context.Background(), day)
	if errors.Is(err, werrors.ErrNoLocation) {
		ctx.Println()
		ctx.Println(cli.SetupNotice)
		return nil
	}
	if err != nil {
		return err
	}

	if a := advisories[day.DateKey()]; a != nil {
		icon := "🌤️ "
		if !a.Good {
			icon = "⚠️ "
		}
		ctx.Println()
		ctx.Println(icon + weather.Label(a))
	}
	return nil
}
