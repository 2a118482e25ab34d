package models

import (
	"fmt"
	"strings"

	"github.com/julianstephens/dailyworkout/internal/constants"
)

// MapToSettings converts a map of preference key-value pairs to a Settings struct.
// Keys that are not settings are ignored.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingPreviewDays:
			if _, err := fmt.Sscanf(value, "%d", &settings.PreviewDays); err != nil {
				return Settings{}, fmt.Errorf("parsing preview days: %w", err)
			}
		case constants.SettingDisabledRules:
			settings.DisabledRules = splitList(value)
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of preference key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingTimezone:      settings.Timezone,
		constants.SettingPreviewDays:   fmt.Sprintf("%d", settings.PreviewDays),
		constants.SettingDisabledRules: strings.Join(settings.DisabledRules, ","),
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
	if settings.PreviewDays == 0 {
		settings.PreviewDays = constants.DefaultPreviewDays
	}
}

// DefaultSettings returns the settings used when nothing has been stored yet.
func DefaultSettings() Settings {
	s := Settings{}
	ApplyDefaultSettings(&s)
	return s
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
