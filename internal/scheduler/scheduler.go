package scheduler

import (
	"time"

	"github.com/julianstephens/dailyworkout/internal/catalog"
	"github.com/julianstephens/dailyworkout/internal/constants"
	"github.com/julianstephens/dailyworkout/internal/models"
	"github.com/julianstephens/dailyworkout/internal/rules"
	"github.com/julianstephens/dailyworkout/internal/seed"
	"github.com/julianstephens/dailyworkout/internal/utils"
)

type Scheduler struct {
	catalog *catalog.Catalog
	engine  *rules.Engine
}

// New returns a scheduler over the default catalog with every rule enabled.
func New() *Scheduler {
	return &Scheduler{
		catalog: catalog.Default(),
		engine:  rules.Default(),
	}
}

// NewWithOptions returns a scheduler over a custom catalog and rule engine.
// Nil arguments fall back to the defaults.
func NewWithOptions(c *catalog.Catalog, e *rules.Engine) *Scheduler {
	s := New()
	if c != nil {
		s.catalog = c
	}
	if e != nil {
		s.engine = e
	}
	return s
}

// NewFromSettings returns a scheduler over the default catalog honoring the
// disabled rules in settings.
func NewFromSettings(settings models.Settings) (*Scheduler, error) {
	e, err := rules.NewEngine(settings.DisabledRules...)
	if err != nil {
		return nil, err
	}
	return NewWithOptions(nil, e), nil
}

func (s *Scheduler) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *Scheduler) Engine() *rules.Engine {
	return s.engine
}

// SelectWorkout picks the workout for date given the previous day's workout.
// The result depends only on the date, the previous primary activity, the
// catalog and the enabled rules.
func (s *Scheduler) SelectWorkout(date time.Time, previous models.Workout) models.Workout {
	return s.Explain(date, previous).Workout
}

// Today returns the anchor day's workout, computed from the day before it.
func (s *Scheduler) Today(anchor time.Time) models.Workout {
	yesterday := s.SelectWorkout(utils.AddDays(anchor, -1), nil)
	return s.SelectWorkout(utils.Day(anchor), yesterday)
}

// BuildSchedule returns the daysAhead days following anchor. Each day is
// selected from the one before it, starting with Today(anchor).
func (s *Scheduler) BuildSchedule(anchor time.Time, daysAhead int) []models.ScheduledDay {
	return s.build(anchor, s.Today(anchor), daysAhead)
}

// Week returns the anchor day together with the preview that follows it.
func (s *Scheduler) Week(anchor time.Time, daysAhead int) models.Week {
	today := s.Today(anchor)
	return models.Week{
		Today:    models.ScheduledDay{Date: utils.Day(anchor), Workout: today},
		Upcoming: s.build(anchor, today, daysAhead),
	}
}

func (s *Scheduler) build(anchor time.Time, today models.Workout, daysAhead int) []models.ScheduledDay {
	if daysAhead < 0 {
		daysAhead = 0
	}

	days := make([]models.ScheduledDay, 0, daysAhead)
	prev := today
	for i := 1; i <= daysAhead; i++ {
		date := utils.AddDays(anchor, i)
		w := s.SelectWorkout(date, prev)
		days = append(days, models.ScheduledDay{Date: date, Workout: w})
		prev = w
	}
	return days
}

// Explain selects the workout for date and records each step of the decision.
func (s *Scheduler) Explain(date time.Time, previous models.Workout) Selection {
	sel := Selection{
		Date:     date,
		Previous: previous,
		Draws:    seed.DrawsFor(date),
		Sunday:   date.Weekday() == time.Sunday,
	}

	// Step 1: Seasonal availability
	sel.Available = s.catalog.Available(date)

	// Step 2: Adjacency rules, falling back to everything available
	for _, a := range sel.Available {
		if s.engine.Suitable(a, previous) {
			sel.Suitable = append(sel.Suitable, a)
		} else {
			sel.Rejected = append(sel.Rejected, Rejection{
				Activity: a,
				Rules:    s.engine.Violations(a, previous),
			})
		}
	}
	if len(sel.Suitable) == 0 {
		sel.Suitable = sel.Available
		sel.Fallback = true
	}

	// Step 3: Sundays favor low intensity
	candidates := sel.Suitable
	if sel.Sunday {
		var low []models.Activity
		for _, a := range candidates {
			if a.IsLow() {
				low = append(low, a)
			}
		}
		if len(low) > 0 {
			candidates = low
			sel.RecoveryDay = true
		}
	}
	sel.Candidates = candidates

	// Step 4: Primary
	primary := candidates[seed.Index(sel.Draws.Primary, len(candidates))]
	sel.Workout = models.Workout{primary}

	// Step 5: Optional low-intensity secondary
	sel.SecondaryChance = constants.SecondaryChanceAfterLow
	if primary.IsHigh() {
		sel.SecondaryChance = constants.SecondaryChanceAfterHigh
	}
	sel.IncludeSecondary = sel.Draws.Include > sel.SecondaryChance
	if sel.IncludeSecondary {
		for _, a := range sel.Available {
			if a.IsLow() && a.Key != primary.Key {
				sel.Pool = append(sel.Pool, a)
			}
		}
		if len(sel.Pool) > 0 {
			sel.Workout = append(sel.Workout, sel.Pool[seed.Index(sel.Draws.Secondary, len(sel.Pool))])
		}
	}

	return sel
}
