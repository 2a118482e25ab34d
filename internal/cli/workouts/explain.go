package workouts

import (
	"strings"

	"github.com/julianstephens/dailyworkout/internal/cli"
	"github.com/julianstephens/dailyworkout/internal/models"
	"github.com/julianstephens/dailyworkout/internal/utils"
)

type ExplainCmd struct {
	Date string `arg:"" optional:"" help:"Date to explain (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *ExplainCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Session(c.Date)
	if err != nil {
		return err
	}

	previous := s.Scheduler.SelectWorkout(utils.AddDays(s.Anchor, -1), nil)
	sel := s.Scheduler.Explain(s.Anchor, previous)

	ctx.Printf("Selection for %s\n\n", cli.FormatDate(sel.Date))
	ctx.Printf("Yesterday:   %s\n", cli.FormatWorkout(sel.Previous))
	ctx.Printf("Draws:       primary %.4f, secondary %.4f, include %.4f\n",
		sel.Draws.Primary, sel.Draws.Secondary, sel.Draws.Include)
	ctx.Printf("Available:   %s\n", keys(sel.Available))

	for _, r := range sel.Rejected {
		ctx.Printf("  ✗ %-10s %s\n", r.Activity.Key, strings.Join(r.Rules, ", "))
	}
	if sel.Fallback {
		ctx.Println("  every activity broke a rule, using all available")
	}

	ctx.Printf("Suitable:    %s\n", keys(sel.Suitable))
	if sel.RecoveryDay {
		ctx.Println("Sunday:      low intensity only")
	}
	ctx.Printf("Candidates:  %s\n", keys(sel.Candidates))

	primary, _ := sel.Workout.Primary()
	ctx.Printf("Primary:     %s\n", primary.Name)

	if sel.IncludeSecondary {
		if secondary, ok := sel.Workout.Secondary(); ok {
			ctx.Printf("Secondary:   %s (%.4f > %.1f, pool %s)\n",
				secondary.Name, sel.Draws.Include, sel.SecondaryChance, keys(sel.Pool))
		} else {
			ctx.Println("Secondary:   none (no low-intensity activity left)")
		}
	} else {
		ctx.Printf("Secondary:   none (%.4f <= %.1f)\n", sel.Draws.Include, sel.SecondaryChance)
	}

	ctx.Printf("\nWorkout:     %s %s\n", sel.Workout.Icon(), cli.FormatWorkout(sel.Workout))
	return nil
}

func keys(activities []models.Activity) string {
	if len(activities) == 0 {
		return "-"
	}
	out := make([]string, len(activities))
	for i, a := range activities {
		out[i] = a.Key
	}
	return strings.Join(out, ", ")
}
