package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"chamber/sites/internal/config"
	"chamber/sites/internal/shell"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const homeShell = `<html><head><meta name="weather-api-key" content="%s"></head><body>
<p id="weather-alert"></p>
<img id="weather-icon" src="" alt="" hidden>
<p id="weather-temp"></p><p id="weather-description"></p><p id="weather-humidity"></p>
<p id="weather-wind"></p><p id="weather-feels"></p><p id="weather-updated"></p>
<div id="weather-forecast"></div>
</body></html>`

var now = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

const currentBody = `{"dt": 1792227600, "main": {"temp": 30.6, "feels_like": 33.4, "humidity": 62},
"weather": [{"description": "scattered clouds", "icon": "03d"}], "wind": {"speed": 2.5}}`

func forecastBody() string {
	// 3-hourly slots from 09:00 on the 17th; midday slots on the 17th, 18th, 19th and 20th
	return `{"list": [
{"dt": 1792227600, "main": {"temp": 28}, "weather": [{"description": "clear sky"}]},
{"dt": 1792238400, "main": {"temp": 31.5}, "weather": [{"description": "light rain"}]},
{"dt": 1792249200, "main": {"temp": 29}, "weather": [{"description": "clouds"}]},
{"dt": 1792324800, "main": {"temp": 32}, "weather": [{"description": "broken clouds"}]},
{"dt": 1792411200, "main": {"temp": 27.4}, "weather": []},
{"dt": 1792497600, "main": {"temp": 26}, "weather": [{"description": "storm"}]}
]}`
}

func newServer(t *testing.T, current, forecast http.HandlerFunc) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "0123456789abcdef", r.URL.Query().Get("appid"))
		current(w, r)
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		forecast(w, r)
	})
	return httptest.NewServer(mux), &calls
}

func jsonBody(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func newClient(baseURL string) *Client {
	return NewClient(config.WeatherConfig{BaseURL: baseURL, Lat: 9.0765, Lon: 7.3986, Timeout: 5})
}

func parse(t *testing.T, key string) *shell.Shell {
	t.Helper()
	sh, err := shell.ParseString(fmt.Sprintf(homeShell, key))
	require.NoError(t, err)
	return sh
}

func TestPanel_RendersReport(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv, calls := newServer(t, jsonBody(http.StatusOK, currentBody), jsonBody(http.StatusOK, forecastBody()))
	defer srv.Close()
	client := newClient(srv.URL)
	defer client.Close()

	sh := parse(t, "0123456789abcdef")
	NewPanel(client, "").Render(context.Background(), sh, now)

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, "31°C", sh.Find("#weather-temp").Text())
	assert.Equal(t, "Scattered clouds", sh.Find("#weather-description").Text())
	assert.Equal(t, "62%", sh.Find("#weather-humidity").Text())
	assert.Equal(t, "33°C", sh.Find("#weather-feels").Text())
	assert.Equal(t, "9 km/h", sh.Find("#weather-wind").Text())
	assert.Equal(t, "Updated 9:00 AM", sh.Find("#weather-updated").Text())

	icon := sh.Find("#weather-icon")
	assert.Equal(t, "https://openweathermap.org/img/wn/03d@2x.png", icon.AttrOr("src", ""))
	_, hidden := icon.Attr("hidden")
	assert.False(t, hidden)

	cards := sh.Find("#weather-forecast .forecast-card")
	require.Equal(t, 3, cards.Length())
	assert.Equal(t, "Sat", cards.Eq(0).Find(".day").Text())
	assert.Equal(t, "32°C", cards.Eq(0).Find(".temp").Text())
	assert.Equal(t, "Light rain", cards.Eq(0).Find(".summary").Text())
	assert.Equal(t, "Forecast", cards.Eq(2).Find(".summary").Text())

	assert.Empty(t, sh.Find("#weather-alert").Text())
	assert.Equal(t, "info", sh.Find("#weather-alert").AttrOr("data-state", ""))
}

func TestPanel_EitherFailureGivesOneAlert(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv, calls := newServer(t,
		jsonBody(http.StatusOK, currentBody),
		jsonBody(http.StatusUnauthorized, `{"cod": 401, "message": "Invalid API key"}`))
	defer srv.Close()
	client := newClient(srv.URL)
	defer client.Close()

	sh := parse(t, "")
	NewPanel(client, "0123456789abcdef").Render(context.Background(), sh, now)

	assert.Equal(t, int32(2), calls.Load())
	alert := sh.Find("#weather-alert")
	assert.Equal(t, "401 Unauthorized · Invalid API key", alert.Text())
	assert.Equal(t, "error", alert.AttrOr("data-state", ""))
	assert.Empty(t, sh.Find("#weather-temp").Text())
	assert.Equal(t, 0, sh.Find("#weather-forecast").Children().Length())
}

func TestClient_CurrentErrorWins(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv, _ := newServer(t,
		jsonBody(http.StatusNotFound, `not json`),
		jsonBody(http.StatusInternalServerError, `{"message": "down"}`))
	defer srv.Close()
	client := newClient(srv.URL)
	defer client.Close()

	_, err := client.Report(context.Background(), "0123456789abcdef")
	require.Error(t, err)
	assert.Equal(t, "404 Not Found", err.Error())
}

func TestPanel_MissingKey(t *testing.T) {
	for _, key := range []string{"", "short", "YOUR_OPENWEATHERMAP_KEY", "  replace_with_key  "} {
		sh := parse(t, key)
		NewPanel(nil, "").Render(context.Background(), sh, now)

		alert := sh.Find("#weather-alert")
		assert.Equal(t, missingKeyAlert, alert.Text(), key)
		assert.Equal(t, "error", alert.AttrOr("data-state", ""))
	}
}

func TestSanitizeKey(t *testing.T) {
	assert.Equal(t, "", SanitizeKey("ADD_KEY_HERE"))
	assert.Equal(t, "", SanitizeKey("123456789"))
	assert.Equal(t, "0123456789", SanitizeKey("  0123456789 "))
}

func TestFormatWind(t *testing.T) {
	speed := 4.0
	assert.Equal(t, "14 km/h", FormatWind(&speed))
	assert.Equal(t, "-- km/h", FormatWind(nil))
}

func TestNextThreeDays_FallsBackToNextSlots(t *testing.T) {
	at := func(h int) Entry {
		return Entry{Dt: now.Add(time.Duration(h) * time.Hour).Unix()}
	}
	list := []Entry{at(-3), at(3), at(6), at(9), at(27)}

	got := NextThreeDays(list, now)
	require.Len(t, got, 3)
	assert.Equal(t, at(3).Dt, got[0].Dt)
	assert.Equal(t, at(9).Dt, got[2].Dt)

	assert.Empty(t, NextThreeDays(nil, now))
	assert.Empty(t, NextThreeDays([]Entry{at(-1)}, now))
}

func TestAPIError(t *testing.T) {
	assert.Equal(t, "503 Service Unavailable", (&APIError{StatusCode: 503}).Error())
	assert.Equal(t, "599 Unknown error", (&APIError{StatusCode: 599}).Error())
}
