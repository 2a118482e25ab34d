package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/dailyworkout/internal/constants"
	werrors "github.com/julianstephens/dailyworkout/internal/errors"
	"github.com/julianstephens/dailyworkout/internal/models"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// Day returns the calendar day of t pinned to local noon, so that adding whole
// days never lands on the wrong date across a DST transition.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}

// AddDays returns the calendar day n days after t (n may be negative).
func AddDays(t time.Time, n int) time.Time {
	return Day(t).AddDate(0, 0, n)
}

// TodayInTimezone returns today's calendar day in the given timezone.
func TodayInTimezone(timezone string) (time.Time, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return time.Time{}, err
	}
	return Day(now), nil
}

// TodayFromSettings returns today's calendar day using the timezone from settings.
func TodayFromSettings(settings models.Settings) (time.Time, error) {
	return TodayInTimezone(settings.Timezone)
}

// ParseDate parses user input in the strict YYYY-MM-DD form and returns the day
// at local noon in loc. Anything else, including impossible dates such as
// 2024-02-30, is rejected with ErrInvalidDate.
func ParseDate(input string, loc *time.Location) (time.Time, error) {
	input = strings.TrimSpace(input)
	if len(input) != len(constants.DateFormat) {
		return time.Time{}, fmt.Errorf("%w: %q", werrors.ErrInvalidDate, input)
	}
	t, err := time.ParseInLocation(constants.DateFormat, input, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", werrors.ErrInvalidDate, input)
	}
	return Day(t), nil
}

// ResolveDate turns a date argument into a calendar day. Empty input and
// "today" resolve to the current day in the settings timezone.
func ResolveDate(input string, settings models.Settings) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, constants.DateInputToday) {
		return TodayFromSettings(settings)
	}
	loc, err := LoadLocation(settings.Timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", settings.Timezone, err)
	}
	return ParseDate(input, loc)
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
