package weather

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"chamber/sites/internal/render"
	"chamber/sites/internal/shell"

	log "github.com/sirupsen/logrus"
)

const (
	missingKeyAlert = `Add your OpenWeatherMap API key to the meta[name="weather-api-key"] tag to load live data.`
	fallbackAlert   = "Unable to load weather updates. Please retry shortly."
	iconURL         = "https://openweathermap.org/img/wn/%s@2x.png"
)

var placeholderKeys = map[string]bool{
	"YOUR_OPENWEATHERMAP_KEY": true,
	"REPLACE_WITH_KEY":        true,
	"ADD_KEY_HERE":            true,
}

// SanitizeKey returns the trimmed key, or "" for short keys and known placeholders
func SanitizeKey(raw string) string {
	key := strings.TrimSpace(raw)
	if len(key) < 10 || placeholderKeys[strings.ToUpper(key)] {
		return ""
	}
	return key
}

// FormatWind converts m/s to whole km/h
func FormatWind(speed *float64) string {
	if speed == nil {
		return "-- km/h"
	}
	return fmt.Sprintf("%d km/h", roundInt(*speed*3.6))
}

// NextThreeDays prefers the midday slots after now and falls back to the
// next three future slots when there are fewer than three of those.
func NextThreeDays(list []Entry, now time.Time) []Entry {
	midday := make([]Entry, 0, 3)
	future := make([]Entry, 0, 3)
	for _, entry := range list {
		at := entry.Time().In(now.Location())
		if !at.After(now) {
			continue
		}
		if len(future) < 3 {
			future = append(future, entry)
		}
		if at.Hour() == 12 && len(midday) < 3 {
			midday = append(midday, entry)
		}
	}
	if len(midday) == 3 {
		return midday
	}
	return future
}

var forecastRenderer = render.Renderer[render.ForecastDay]{
	Card:        render.ForecastCard,
	Empty:       "Forecast data unavailable right now.",
	StatusClass: "forecast-empty",
}

// Panel fills the weather card of the home page
type Panel struct {
	client *Client
	apiKey string
}

// NewPanel returns a panel using apiKey, or the page's
// meta[name="weather-api-key"] tag when apiKey is empty
func NewPanel(client *Client, apiKey string) *Panel {
	return &Panel{client: client, apiKey: apiKey}
}

func (p *Panel) Render(ctx context.Context, sh *shell.Shell, now time.Time) {
	key := p.apiKey
	if key == "" {
		key = sh.Find(`meta[name="weather-api-key"]`).AttrOr("content", "")
	}
	key = SanitizeKey(key)
	if key == "" {
		setAlert(sh, missingKeyAlert, true)
		return
	}

	setAlert(sh, "Loading weather data...", false)

	report, err := p.client.Report(ctx, key)
	if err != nil {
		log.Errorf("❌ Weather load failed: %v", err)
		message := err.Error()
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			message = fallbackAlert
		}
		setAlert(sh, message, true)
		return
	}

	renderCurrent(sh, report.Current, now.Location())
	if err := renderForecast(sh, report.Forecast.List, now); err != nil {
		log.Errorf("❌ Forecast render failed: %v", err)
	}
	setAlert(sh, "", false)
}

func renderCurrent(sh *shell.Shell, current Current, loc *time.Location) {
	description := "Current conditions"
	var icon string
	if len(current.Weather) > 0 {
		description = render.Capitalize(current.Weather[0].Description)
		icon = current.Weather[0].Icon
	}

	sh.SetText("#weather-temp", celsius(current.Main.Temp))
	sh.SetText("#weather-description", description)
	sh.SetText("#weather-humidity", fmt.Sprintf("%d%%", current.Main.Humidity))
	sh.SetText("#weather-feels", celsius(current.Main.FeelsLike))
	sh.SetText("#weather-wind", FormatWind(current.Wind.Speed))
	sh.SetText("#weather-updated", "Updated "+time.Unix(current.Dt, 0).In(loc).Format("3:04 PM"))

	if icon != "" {
		sh.SetAttr("#weather-icon", "src", fmt.Sprintf(iconURL, icon))
		sh.SetAttr("#weather-icon", "alt", description)
		sh.Find("#weather-icon").RemoveAttr("hidden")
	}
}

func renderForecast(sh *shell.Shell, list []Entry, now time.Time) error {
	container, ok := sh.Region("#weather-forecast")
	if !ok {
		return nil
	}

	entries := NextThreeDays(list, now)
	days := make([]render.ForecastDay, 0, len(entries))
	for _, entry := range entries {
		summary := "Forecast"
		if len(entry.Weather) > 0 {
			summary = entry.Weather[0].Description
		}
		days = append(days, render.ForecastDay{
			Day:     entry.Time().In(now.Location()).Format("Mon"),
			Temp:    roundInt(entry.Main.Temp),
			Summary: render.Capitalize(summary),
		})
	}
	return forecastRenderer.Render(container, days)
}

func setAlert(sh *shell.Shell, message string, isError bool) {
	state := "info"
	if isError {
		state = "error"
	}
	sh.SetText("#weather-alert", message)
	sh.SetAttr("#weather-alert", "data-state", state)
}

func celsius(temp float64) string {
	return fmt.Sprintf("%d°C", roundInt(temp))
}

// roundInt rounds half up like the browser's Math.round
func roundInt(v float64) int {
	return int(math.Floor(v + 0.5))
}
