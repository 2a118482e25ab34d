package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const forecastBody = `{
  "daily": {
    "time": ["2024-07-04", "2024-07-05", "2024-07-06"],
    "temperature_2m_max": [80.0, 40.0, 70.0],
    "temperature_2m_min": [60.0, 20.0, 50.0],
    "precipitation_sum": [0.0, 0.05, 0.35],
    "snowfall_sum": [0.0, 0.4, 0.0],
    "windspeed_10m_max": [12.5, 30.2, 8.0]
  }
}`

func newTestClient(srv *httptest.Server) *Client {
	c := NewClient()
	c.GeocodingURL = srv.URL + "/v1/search"
	c.ForecastURL = srv.URL + "/v1/forecast"
	c.HTTP = srv.Client()
	c.limiter = nil
	return c
}

func TestClient_Geocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/search", r.URL.Path)
		assert.Equal(t, "Portland, OR", r.URL.Query().Get("name"))
		assert.Equal(t, "1", r.URL.Query().Get("count"))
		assert.Equal(t, "en", r.URL.Query().Get("language"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"name":"Portland","latitude":45.52,"longitude":-122.68,"country":"United States"}]}`))
	}))
	defer srv.Close()

	loc, err := newTestClient(srv).Geocode(context.Background(), "Portland, OR")
	require.NoError(t, err)

	assert.Equal(t, "Portland, OR", loc.Name)
	assert.Equal(t, "Portland", loc.DisplayName)
	assert.Equal(t, "United States", loc.Country)
	assert.InDelta(t, 45.52, loc.Latitude, 1e-9)
	assert.InDelta(t, -122.68, loc.Longitude, 1e-9)
}

func TestClient_GeocodeNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"generationtime_ms":0.5}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Geocode(context.Background(), "Atlantis")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestClient_GeocodeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Geocode(context.Background(), "Portland")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrLocationNotFound)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_Forecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, "45.52", q.Get("latitude"))
		assert.Equal(t, "-122.68", q.Get("longitude"))
		assert.Equal(t, "fahrenheit", q.Get("temperature_unit"))
		assert.Equal(t, "mph", q.Get("windspeed_unit"))
		assert.Equal(t, "inch", q.Get("precipitation_unit"))
		assert.Equal(t, "auto", q.Get("timezone"))
		assert.Equal(t, "7", q.Get("forecast_days"))
		assert.Equal(t, "temperature_2m_max,temperature_2m_min,precipitation_sum,snowfall_sum,windspeed_10m_max", q.Get("daily"))

		_, _ = w.Write([]byte(forecastBody))
	}))
	defer srv.Close()

	forecast, err := newTestClient(srv).Forecast(context.Background(), 45.52, -122.68)
	require.NoError(t, err)
	require.Len(t, forecast, 3)

	first := forecast.Day("2024-07-04")
	require.NotNil(t, first)
	assert.Equal(t, []float64{70}, first.Temps)
	assert.Equal(t, 80.0, first.TempMax)
	assert.Equal(t, 60.0, first.TempMin)
	assert.False(t, first.Rain)
	assert.False(t, first.Snow)
	assert.Equal(t, []float64{12.5}, first.Wind)

	second := forecast.Day("2024-07-05")
	require.NotNil(t, second)
	assert.False(t, second.Rain, "0.05in is below the rain threshold")
	assert.True(t, second.Snow)

	third := forecast.Day("2024-07-06")
	require.NotNil(t, third)
	assert.True(t, third.Rain)

	assert.Nil(t, forecast.Day("2024-07-20"))

	advisory := IsGoodRunningWeather(first)
	require.NotNil(t, advisory)
	assert.True(t, advisory.Good)
	assert.Equal(t, "70°F - good conditions", advisory.Reason)
}

func TestClient_ForecastBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"daily":`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Forecast(context.Background(), 1, 2)
	require.Error(t, err)
}

func TestClient_ForecastCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(forecastBody))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestClient(srv)
	_, err := c.Forecast(ctx, 1, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
