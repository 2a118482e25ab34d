// Package rules decides which activities may follow the previous day's workout.
package rules

import (
	"github.com/julianstephens/dailyworkout/internal/constants"
	"github.com/julianstephens/dailyworkout/internal/models"
)

const (
	NoConsecutiveHeavyStrength = "no-consecutive-heavy-strength"
	NoRepeat                   = "no-repeat"
	NoConsecutiveRun           = "no-consecutive-run"
)

// Rule is one adjacency constraint between a candidate activity and the
// previous day's primary activity.
type Rule struct {
	Name        string
	Description string
	Allows      func(candidate, prevPrimary models.Activity) bool
}

// Builtin returns the built-in rules in evaluation order.
func Builtin() []Rule {
	return []Rule{
		{
			Name:        NoConsecutiveHeavyStrength,
			Description: "No high-intensity strength training on consecutive days",
			Allows: func(candidate, prev models.Activity) bool {
				return !(candidate.IsHeavyStrength() && prev.IsHeavyStrength())
			},
		},
		{
			Name:        NoRepeat,
			Description: "Never repeat yesterday's primary activity",
			Allows: func(candidate, prev models.Activity) bool {
				return candidate.Key != prev.Key
			},
		},
		{
			Name:        NoConsecutiveRun,
			Description: "Rest the legs the day after a run",
			Allows: func(candidate, prev models.Activity) bool {
				return !(candidate.Key == constants.ActivityRun && prev.Key == constants.ActivityRun)
			},
		},
	}
}

// Names returns the names of the built-in rules in evaluation order.
func Names() []string {
	builtin := Builtin()
	names := make([]string, len(builtin))
	for i, r := range builtin {
		names[i] = r.Name
	}
	return names
}
