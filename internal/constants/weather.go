package constants

import "time"

const (
	// Running advisory thresholds (Fahrenheit / mph)
	MinRunningTempF   = 25.0
	MaxRunningTempF   = 95.0
	MaxRunningWindMPH = 25.0

	// PrecipitationThresholdIn is the daily rain/snow sum (inches) above which
	// the day is flagged as wet or snowy.
	PrecipitationThresholdIn = 0.1

	// Open-Meteo
	GeocodingURL     = "https://geocoding-api.open-meteo.com/v1/search"
	ForecastURL      = "https://api.open-meteo.com/v1/forecast"
	ForecastDays     = 7
	WeatherTimeout   = 10 * time.Second
	WeatherMinGap    = 250 * time.Millisecond
	ForecastCacheTTL = time.Hour
	ForecastCacheMax = 32
)
