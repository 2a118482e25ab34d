// Package weather fetches daily forecasts from Open-Meteo and turns them into
// outdoor running advice.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/julianstephens/dailyworkout/internal/constants"
	"github.com/julianstephens/dailyworkout/internal/logger"
	"github.com/julianstephens/dailyworkout/internal/models"
)

var ErrLocationNotFound = errors.New("location not found")

// Provider resolves place names and supplies daily forecasts.
type Provider interface {
	Geocode(ctx context.Context, name string) (models.Location, error)
	Forecast(ctx context.Context, lat, lon float64) (models.Forecast, error)
}

// Client talks to the Open-Meteo geocoding and forecast APIs.
type Client struct {
	GeocodingURL string
	ForecastURL  string
	HTTP         *http.Client

	limiter *rate.Limiter
}

// NewClient returns a client for the public Open-Meteo endpoints. Outbound
// requests are spaced at least constants.WeatherMinGap apart.
func NewClient() *Client {
	return &Client{
		GeocodingURL: constants.GeocodingURL,
		ForecastURL:  constants.ForecastURL,
		HTTP: &http.Client{
			Timeout: constants.WeatherTimeout,
		},
		limiter: rate.NewLimiter(rate.Every(constants.WeatherMinGap), 1),
	}
}

type geocodingResponse struct {
	Results []geocodingResult `json:"results"`
}

type geocodingResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
}

type forecastResponse struct {
	Daily struct {
		Time             []string  `json:"time"`
		TemperatureMax   []float64 `json:"temperature_2m_max"`
		TemperatureMin   []float64 `json:"temperature_2m_min"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
		SnowfallSum      []float64 `json:"snowfall_sum"`
		WindSpeedMax     []float64 `json:"windspeed_10m_max"`
	} `json:"daily"`
}

// Geocode resolves a free-text place name to the best matching location.
func (c *Client) Geocode(ctx context.Context, name string) (models.Location, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("count", "1")
	q.Set("language", "en")
	q.Set("format", "json")

	var resp geocodingResponse
	if err := c.get(ctx, c.GeocodingURL, q, &resp); err != nil {
		return models.Location{}, fmt.Errorf("geocoding %q: %w", name, err)
	}
	if len(resp.Results) == 0 {
		return models.Location{}, fmt.Errorf("%w: %s", ErrLocationNotFound, name)
	}

	r := resp.Results[0]
	return models.Location{
		Name:        name,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		DisplayName: r.Name,
		Country:     r.Country,
	}, nil
}

// Forecast fetches the daily forecast for the next seven days, keyed by ISO
// date in the location's own time zone.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (models.Forecast, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum,snowfall_sum,windspeed_10m_max")
	q.Set("temperature_unit", "fahrenheit")
	q.Set("windspeed_unit", "mph")
	q.Set("precipitation_unit", "inch")
	q.Set("timezone", "auto")
	q.Set("forecast_days", strconv.Itoa(constants.ForecastDays))

	var resp forecastResponse
	if err := c.get(ctx, c.ForecastURL, q, &resp); err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}

	daily := resp.Daily
	forecast := make(models.Forecast, len(daily.Time))
	for i, date := range daily.Time {
		if i >= len(daily.TemperatureMax) || i >= len(daily.TemperatureMin) {
			break
		}
		tMax, tMin := daily.TemperatureMax[i], daily.TemperatureMin[i]
		day := models.ForecastDay{
			Date:    date,
			Temps:   []float64{(tMax + tMin) / 2},
			TempMax: tMax,
			TempMin: tMin,
			Rain:    at(daily.PrecipitationSum, i) > constants.PrecipitationThresholdIn,
			Snow:    at(daily.SnowfallSum, i) > constants.PrecipitationThresholdIn,
		}
		if i < len(daily.WindSpeedMax) {
			day.Wind = []float64{daily.WindSpeedMax[i]}
		}
		forecast[date] = day
	}
	return forecast, nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint: %w", err)
	}
	u.RawQuery = query.Encode()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	requestID := uuid.NewString()
	log := logger.With("request_id", requestID)
	log.Debug("weather request", "url", u.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		log.Warn("weather request failed", "error", err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn("weather request rejected", "status", resp.StatusCode)
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	log.Debug("weather response", "status", resp.StatusCode)
	return nil
}

// at returns values[i], or zero when the provider sent a short or null array.
func at(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}
