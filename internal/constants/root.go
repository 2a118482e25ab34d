package constants

import "time"

// ActivityType represents the training category of an activity
type ActivityType string

// Intensity represents how demanding an activity is
type Intensity string

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "workout"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/dailyworkout/workout.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DateInputToday is the literal accepted in place of a date argument
	DateInputToday = "today"

	// Activity types
	ActivityCardio   ActivityType = "cardio"
	ActivityStrength ActivityType = "strength"
	ActivityRecovery ActivityType = "recovery"

	// Intensities
	IntensityLow  Intensity = "low"
	IntensityHigh Intensity = "high"

	// Catalog keys referenced by rules and the weather advisory
	ActivityRun = "run"

	// Secondary-activity inclusion thresholds. A secondary is added when the
	// inclusion draw is strictly greater than the threshold.
	SecondaryChanceAfterHigh = 0.6
	SecondaryChanceAfterLow  = 0.4

	// Preview
	DefaultPreviewDays = 6
	MinPreviewDays     = 1
	MaxPreviewDays     = 13
)

// Session States
const (
	StateToday SessionState = iota
	StatePickDate
	StateSetLocation
)

// Summer months during which seasonal activities are available.
var SummerMonths = []time.Month{time.June, time.July, time.August}
