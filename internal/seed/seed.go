// Package seed derives the reproducible pseudo-random draws used to pick a
// day's workout. Every value is a pure function of the calendar date.
package seed

import (
	"math"
	"time"
)

// Draws are the three values consumed when selecting one day's workout.
type Draws struct {
	Primary   float64
	Secondary float64
	Include   float64
}

// DateSeed maps a calendar date to year*10000 + month*100 + day.
func DateSeed(date time.Time) int {
	return date.Year()*10000 + int(date.Month())*100 + date.Day()
}

// Random returns the fractional part of sin(seed)*10000, in [0, 1).
func Random(seed int) float64 {
	x := math.Sin(float64(seed)) * 10000
	r := x - math.Floor(x)
	if r >= 1 {
		// float rounding on x close to an integer from below
		return 0
	}
	return r
}

// DrawsFor returns the draws for date, taken from seed, seed+1 and seed+2.
func DrawsFor(date time.Time) Draws {
	s := DateSeed(date)
	return Draws{
		Primary:   Random(s),
		Secondary: Random(s + 1),
		Include:   Random(s + 2),
	}
}

// Index scales a draw in [0, 1) to an index in [0, n). n must be positive.
func Index(r float64, n int) int {
	i := int(math.Floor(r * float64(n)))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
