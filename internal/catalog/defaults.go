package catalog

import (
	"github.com/julianstephens/dailyworkout/internal/constants"
	"github.com/julianstephens/dailyworkout/internal/models"
)

// DefaultActivities is the reference rule set. Order matters.
var DefaultActivities = []models.Activity{
	{
		Key:          constants.ActivityRun,
		Name:         "Run",
		Icon:         "🏃",
		Type:         constants.ActivityCardio,
		Intensity:    constants.IntensityHigh,
		MuscleGroups: []string{"legs", "cardio"},
	},
	{
		Key:          "swim",
		Name:         "Swim",
		Icon:         "🏊",
		Type:         constants.ActivityCardio,
		Intensity:    constants.IntensityHigh,
		Seasonal:     true,
		MuscleGroups: []string{"fullbody", "cardio"},
	},
	{
		Key:          "weights",
		Name:         "Lift Weights",
		Icon:         "🏋️",
		Type:         constants.ActivityStrength,
		Intensity:    constants.IntensityHigh,
		MuscleGroups: []string{"fullbody", "strength"},
	},
	{
		Key:          "bag",
		Name:         "Punching Bag",
		Icon:         "🥊",
		Type:         constants.ActivityCardio,
		Intensity:    constants.IntensityHigh,
		MuscleGroups: []string{"arms", "cardio"},
	},
	{
		Key:          "yoga",
		Name:         "Yoga",
		Icon:         "🧘",
		Type:         constants.ActivityRecovery,
		Intensity:    constants.IntensityLow,
		Easy:         true,
		MuscleGroups: []string{"flexibility"},
	},
	{
		Key:          "tabletennis",
		Name:         "Table Tennis",
		Icon:         "🏓",
		Type:         constants.ActivityCardio,
		Intensity:    constants.IntensityLow,
		Easy:         true,
		MuscleGroups: []string{"arms", "cardio"},
	},
}

// Default returns the reference catalog.
func Default() *Catalog {
	return MustNew(DefaultActivities...)
}
