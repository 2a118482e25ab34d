// Package catalog holds the registry of activities a workout can be built from.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/julianstephens/dailyworkout/internal/constants"
	"github.com/julianstephens/dailyworkout/internal/models"
)

var (
	ErrEmptyCatalog   = errors.New("catalog has no activities")
	ErrDuplicateKey   = errors.New("duplicate activity key")
	ErrMissingKey     = errors.New("activity key cannot be empty")
	ErrInvalidType    = errors.New("invalid activity type")
	ErrInvalidLevel   = errors.New("invalid activity intensity")
	ErrNoLowIntensity = errors.New("catalog needs at least one low-intensity activity")
)

// Catalog is an ordered, immutable set of activities. Iteration order is the
// order the activities were registered in and is what index-based selection
// relies on.
type Catalog struct {
	activities []models.Activity
	index      map[string]int
}

// New builds a catalog from the given activities, in order.
func New(activities ...models.Activity) (*Catalog, error) {
	if err := check(activities); err != nil {
		return nil, err
	}

	c := &Catalog{
		activities: make([]models.Activity, len(activities)),
		index:      make(map[string]int, len(activities)),
	}
	for i, a := range activities {
		a.MuscleGroups = slices.Clone(a.MuscleGroups)
		c.activities[i] = a
		c.index[a.Key] = i
	}
	return c, nil
}

// MustNew is like New but panics on an invalid catalog.
func MustNew(activities ...models.Activity) *Catalog {
	c, err := New(activities...)
	if err != nil {
		panic(err)
	}
	return c
}

func check(activities []models.Activity) error {
	if len(activities) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(activities))
	hasLow := false
	for _, a := range activities {
		if a.Key == "" {
			return ErrMissingKey
		}
		if seen[a.Key] {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, a.Key)
		}
		seen[a.Key] = true

		switch a.Type {
		case constants.ActivityCardio, constants.ActivityStrength, constants.ActivityRecovery:
		default:
			return fmt.Errorf("%w %q for %s", ErrInvalidType, a.Type, a.Key)
		}
		switch a.Intensity {
		case constants.IntensityLow:
			hasLow = true
		case constants.IntensityHigh:
		default:
			return fmt.Errorf("%w %q for %s", ErrInvalidLevel, a.Intensity, a.Key)
		}
	}
	if !hasLow {
		return ErrNoLowIntensity
	}
	return nil
}

// Len returns the number of activities.
func (c *Catalog) Len() int {
	return len(c.activities)
}

// All returns a copy of every activity in catalog order.
func (c *Catalog) All() []models.Activity {
	return slices.Clone(c.activities)
}

// Keys returns the activity keys in catalog order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.activities))
	for i, a := range c.activities {
		keys[i] = a.Key
	}
	return keys
}

// Get looks up an activity by key.
func (c *Catalog) Get(key string) (models.Activity, bool) {
	i, ok := c.index[key]
	if !ok {
		return models.Activity{}, false
	}
	return c.activities[i], true
}

// Available returns the activities offered on date: seasonal activities only
// in summer, everything else always. Catalog order is preserved.
func (c *Catalog) Available(date time.Time) []models.Activity {
	summer := IsSummer(date)
	out := make([]models.Activity, 0, len(c.activities))
	for _, a := range c.activities {
		if a.Seasonal && !summer {
			continue
		}
		out = append(out, a)
	}
	return out
}

// IsSummer reports whether date falls in June, July or August.
func IsSummer(date time.Time) bool {
	return slices.Contains(constants.SummerMonths, date.Month())
}
