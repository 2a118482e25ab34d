package models

// ForecastDay is the daily summary supplied by the forecast provider.
// Date is YYYY-MM-DD in the location's time zone, temperatures are
// Fahrenheit and wind speeds mph.
type ForecastDay struct {
	Date    string    `json:"date"`
	Temps   []float64 `json:"temps"`
	TempMin float64   `json:"temp_min"`
	TempMax float64   `json:"temp_max"`
	Rain    bool      `json:"rain"`
	Snow    bool      `json:"snow"`
	Wind    []float64 `json:"wind"`
}

// Forecast maps ISO dates to their daily summary.
type Forecast map[string]ForecastDay

// Day returns the forecast for the given ISO date, or nil when the provider
// has no entry for it (e.g. beyond the forecast horizon).
func (f Forecast) Day(dateKey string) *ForecastDay {
	if f == nil {
		return nil
	}
	day, ok := f[dateKey]
	if !ok {
		return nil
	}
	return &day
}

// Advisory is the outdoor running recommendation for one forecast day.
type Advisory struct {
	Good   bool   `json:"good"`
	Reason string `json:"reason"`
}

// Location is a resolved place used to request forecasts. Name is the text
// the user searched for; DisplayName is what the geocoder matched.
type Location struct {
	Name        string  `json:"name" validate:"required"`
	Latitude    float64 `json:"latitude" validate:"latitude"`
	Longitude   float64 `json:"longitude" validate:"longitude"`
	DisplayName string  `json:"display_name,omitempty"`
	Country     string  `json:"country,omitempty"`
}
