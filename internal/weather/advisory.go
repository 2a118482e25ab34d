package weather

import (
	"fmt"
	"math"

	"github.com/julianstephens/dailyworkout/internal/constants"
	"github.com/julianstephens/dailyworkout/internal/models"
)

const (
	LabelGood         = "Good for outdoor running!"
	LabelTreadmill    = "Consider treadmill: "
	ShortLabelGood    = "✓ Outdoor"
	ShortLabelIndoors = "⚠ Treadmill"
)

// IsGoodRunningWeather judges one forecast day for outdoor running. It returns
// nil when there is no forecast. The first failing check decides the reason:
// temperature, then snow, then rain, then wind.
func IsGoodRunningWeather(day *models.ForecastDay) *models.Advisory {
	if day == nil || len(day.Temps) == 0 {
		return nil
	}

	avg := mean(day.Temps)
	wind := peak(day.Wind)

	switch {
	case avg < constants.MinRunningTempF || avg > constants.MaxRunningTempF:
		return &models.Advisory{Good: false, Reason: fmt.Sprintf("%d°F - too extreme", round(avg))}
	case day.Snow:
		return &models.Advisory{Good: false, Reason: "Snow expected"}
	case day.Rain:
		return &models.Advisory{Good: false, Reason: "Rain expected"}
	case wind > constants.MaxRunningWindMPH:
		return &models.Advisory{Good: false, Reason: fmt.Sprintf("High winds %dmph", round(wind))}
	}
	return &models.Advisory{Good: true, Reason: fmt.Sprintf("%d°F - good conditions", round(avg))}
}

// AdviseWorkout returns the advisory for a workout on the given ISO date. Only
// workouts that include a run get one.
func AdviseWorkout(workout models.Workout, dateKey string, forecast models.Forecast) *models.Advisory {
	if !workout.Has(constants.ActivityRun) {
		return nil
	}
	return IsGoodRunningWeather(forecast.Day(dateKey))
}

// Label is the full advisory line shown for the anchor day.
func Label(a *models.Advisory) string {
	if a == nil {
		return ""
	}
	if a.Good {
		return LabelGood
	}
	return LabelTreadmill + a.Reason
}

// ShortLabel is the compact advisory shown in the upcoming preview.
func ShortLabel(a *models.Advisory) string {
	if a == nil {
		return ""
	}
	if a.Good {
		return ShortLabelGood
	}
	return ShortLabelIndoors
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func peak(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		m = math.Max(m, v)
	}
	return m
}

// round matches the half-up rounding the advisory text has always used:
// 2.5 becomes 3 and -2.5 becomes -2.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
