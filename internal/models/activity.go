package models

import "github.com/julianstephens/dailyworkout/internal/constants"

// Activity describes one entry of the activity catalog.
type Activity struct {
	Key       string                 `json:"key"`
	Name      string                 `json:"name"`
	Icon      string                 `json:"icon"`
	Type      constants.ActivityType `json:"type"`
	Intensity constants.Intensity    `json:"intensity"`
	// Seasonal activities are only offered during the summer months.
	Seasonal     bool     `json:"seasonal,omitempty"`
	Easy         bool     `json:"easy"`
	MuscleGroups []string `json:"muscle_groups,omitempty"`
}

// IsHigh reports whether the activity is high intensity.
func (a Activity) IsHigh() bool {
	return a.Intensity == constants.IntensityHigh
}

// IsLow reports whether the activity is low intensity.
func (a Activity) IsLow() bool {
	return a.Intensity == constants.IntensityLow
}

// IsHeavyStrength reports whether the activity is high-intensity strength work.
func (a Activity) IsHeavyStrength() bool {
	return a.Type == constants.ActivityStrength && a.IsHigh()
}
