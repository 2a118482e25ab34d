package models

import (
	"time"

	"github.com/julianstephens/dailyworkout/internal/constants"
)

// Workout is the ordered list of activities chosen for a single day.
// Index 0 is the primary activity; index 1, when present, is the secondary.
type Workout []Activity

// Primary returns the day's primary activity.
func (w Workout) Primary() (Activity, bool) {
	if len(w) == 0 {
		return Activity{}, false
	}
	return w[0], true
}

// Secondary returns the day's optional secondary activity.
func (w Workout) Secondary() (Activity, bool) {
	if len(w) < 2 {
		return Activity{}, false
	}
	return w[1], true
}

// Has reports whether any activity of the workout has the given key.
func (w Workout) Has(key string) bool {
	for _, a := range w {
		if a.Key == key {
			return true
		}
	}
	return false
}

// Keys returns the activity keys in workout order.
func (w Workout) Keys() []string {
	keys := make([]string, 0, len(w))
	for _, a := range w {
		keys = append(keys, a.Key)
	}
	return keys
}

// Names returns the activity display names in workout order.
func (w Workout) Names() []string {
	names := make([]string, 0, len(w))
	for _, a := range w {
		names = append(names, a.Name)
	}
	return names
}

// Icon returns the primary activity's icon, or an empty string.
func (w Workout) Icon() string {
	if p, ok := w.Primary(); ok {
		return p.Icon
	}
	return ""
}

// ScheduledDay pairs a calendar date with the workout selected for it.
type ScheduledDay struct {
	Date    time.Time `json:"date"`
	Workout Workout   `json:"workout"`
}

// DateKey returns the day's ISO date (YYYY-MM-DD), the key used for forecasts.
func (d ScheduledDay) DateKey() string {
	return d.Date.Format(constants.DateFormat)
}

// Week is the anchor day plus the upcoming preview that follows it.
type Week struct {
	Today    ScheduledDay   `json:"today"`
	Upcoming []ScheduledDay `json:"upcoming"`
}
