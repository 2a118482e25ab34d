// Package prefs persists the handful of user preferences the tool needs: the
// weather location and general settings, as namespaced string keys.
package prefs

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/julianstephens/dailyworkout/internal/constants"
	werrors "github.com/julianstephens/dailyworkout/internal/errors"
	"github.com/julianstephens/dailyworkout/internal/models"
	"github.com/julianstephens/dailyworkout/internal/validation"
)

var ErrNotFound = errors.New("preference not found")

// Store is a flat string key/value store.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Clear(keys ...string) error
}

var locationKeys = []string{
	constants.PrefWeatherLocation,
	constants.PrefWeatherLat,
	constants.PrefWeatherLon,
}

var settingKeys = []string{
	constants.SettingTimezone,
	constants.SettingPreviewDays,
	constants.SettingDisabledRules,
}

// LoadLocation returns the saved weather location. A partially saved
// location counts as none and yields ErrNoLocation.
func LoadLocation(s Store) (models.Location, error) {
	values := make(map[string]string, len(locationKeys))
	for _, key := range locationKeys {
		v, err := s.Get(key)
		if errors.Is(err, ErrNotFound) || (err == nil && v == "") {
			return models.Location{}, werrors.ErrNoLocation
		}
		if err != nil {
			return models.Location{}, fmt.Errorf("reading %s: %w", key, err)
		}
		values[key] = v
	}

	lat, err := strconv.ParseFloat(values[constants.PrefWeatherLat], 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("invalid saved latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(values[constants.PrefWeatherLon], 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("invalid saved longitude: %w", err)
	}

	return models.Location{
		Name:      values[constants.PrefWeatherLocation],
		Latitude:  lat,
		Longitude: lon,
	}, nil
}

// SaveLocation validates loc and stores its name and coordinates.
func SaveLocation(s Store, loc models.Location) error {
	if err := validation.New().ValidateLocation(loc); err != nil {
		return err
	}

	pairs := map[string]string{
		constants.PrefWeatherLocation: loc.Name,
		constants.PrefWeatherLat:      strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
		constants.PrefWeatherLon:      strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
	}
	for _, key := range locationKeys {
		if err := s.Set(key, pairs[key]); err != nil {
			return fmt.Errorf("saving %s: %w", key, err)
		}
	}
	return nil
}

// ClearLocation removes every location key.
func ClearLocation(s Store) error {
	return s.Clear(locationKeys...)
}

// LoadSettings reads the stored settings and fills in defaults for anything
// missing.
func LoadSettings(s Store) (models.Settings, error) {
	data := make(map[string]string, len(settingKeys))
	for _, key := range settingKeys {
		v, err := s.Get(key)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return models.Settings{}, fmt.Errorf("reading %s: %w", key, err)
		}
		data[key] = v
	}

	settings, err := models.MapToSettings(data)
	if err != nil {
		return models.Settings{}, err
	}
	models.ApplyDefaultSettings(&settings)
	return settings, nil
}

// SaveSettings validates and stores every setting.
func SaveSettings(s Store, settings models.Settings) error {
	if err := validation.New().ValidateSettings(settings); err != nil {
		return err
	}

	data := models.SettingsToMap(settings)
	for _, key := range settingKeys {
		if err := s.Set(key, data[key]); err != nil {
			return fmt.Errorf("saving %s: %w", key, err)
		}
	}
	return nil
}
