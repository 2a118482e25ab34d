package models

import (
	"reflect"
	"testing"

	"github.com/julianstephens/dailyworkout/internal/constants"
)

func TestMapToSettings(t *testing.T) {
	data := map[string]string{
		constants.SettingTimezone:      "Europe/London",
		constants.SettingPreviewDays:   "4",
		constants.SettingDisabledRules: " no-repeat, ,no-consecutive-run ",
		constants.PrefWeatherLocation:  "London",
	}

	settings, err := MapToSettings(data)
	if err != nil {
		t.Fatalf("MapToSettings() error = %v", err)
	}
	if settings.Timezone != "Europe/London" {
		t.Errorf("Timezone = %q, want %q", settings.Timezone, "Europe/London")
	}
	if settings.PreviewDays != 4 {
		t.Errorf("PreviewDays = %d, want 4", settings.PreviewDays)
	}
	want := []string{"no-repeat", "no-consecutive-run"}
	if !reflect.DeepEqual(settings.DisabledRules, want) {
		t.Errorf("DisabledRules = %v, want %v", settings.DisabledRules, want)
	}
}

func TestMapToSettingsInvalidPreviewDays(t *testing.T) {
	_, err := MapToSettings(map[string]string{constants.SettingPreviewDays: "many"})
	if err == nil {
		t.Error("expected error for non-numeric preview days")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	original := Settings{
		Timezone:      "UTC",
		PreviewDays:   9,
		DisabledRules: []string{"no-consecutive-run"},
	}

	restored, err := MapToSettings(SettingsToMap(original))
	if err != nil {
		t.Fatalf("MapToSettings() error = %v", err)
	}
	if !reflect.DeepEqual(original, restored) {
		t.Errorf("round trip = %+v, want %+v", restored, original)
	}
}

func TestApplyDefaultSettings(t *testing.T) {
	s := Settings{}
	ApplyDefaultSettings(&s)

	if s.Timezone != constants.DefaultTimezone {
		t.Errorf("Timezone = %q, want %q", s.Timezone, constants.DefaultTimezone)
	}
	if s.PreviewDays != constants.DefaultPreviewDays {
		t.Errorf("PreviewDays = %d, want %d", s.PreviewDays, constants.DefaultPreviewDays)
	}

	custom := Settings{Timezone: "UTC", PreviewDays: 3}
	ApplyDefaultSettings(&custom)
	if custom.Timezone != "UTC" || custom.PreviewDays != 3 {
		t.Errorf("ApplyDefaultSettings overwrote explicit values: %+v", custom)
	}
}
