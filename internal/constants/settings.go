package constants

const (
	// PreferenceNamespace prefixes every key written to the preference store
	PreferenceNamespace = "workout:"

	// Location preferences
	PrefWeatherLocation = PreferenceNamespace + "weatherLocation"
	PrefWeatherLat      = PreferenceNamespace + "weatherLat"
	PrefWeatherLon      = PreferenceNamespace + "weatherLon"

	// General Settings
	SettingTimezone      = PreferenceNamespace + "timezone"
	SettingPreviewDays   = PreferenceNamespace + "previewDays"
	SettingDisabledRules = PreferenceNamespace + "disabledRules"

	// Default Settings Values
	DefaultTimezone = "Local" // Use system local timezone by default

	// Environment
	EnvDBConnection = "WORKOUT_DB_CONNECTION"
)
