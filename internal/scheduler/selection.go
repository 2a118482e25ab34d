package scheduler

import (
	"time"

	"github.com/julianstephens/dailyworkout/internal/models"
	"github.com/julianstephens/dailyworkout/internal/seed"
)

// Selection is the trace of one SelectWorkout call.
type Selection struct {
	Date     time.Time
	Previous models.Workout
	Draws    seed.Draws

	Available []models.Activity
	Suitable  []models.Activity
	Rejected  []Rejection
	// Fallback is set when every available activity broke a rule.
	Fallback bool

	Sunday      bool
	RecoveryDay bool
	Candidates  []models.Activity

	SecondaryChance  float64
	IncludeSecondary bool
	Pool             []models.Activity

	Workout models.Workout
}

// Rejection is an available activity ruled out by the previous day's primary.
type Rejection struct {
	Activity models.Activity
	Rules    []string
}
