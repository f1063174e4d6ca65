// Package weather renders the chamber home page weather card from the
// OpenWeatherMap current conditions and forecast endpoints.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"chamber/sites/internal/config"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"resty.dev/v3"
)

// Condition is one entry of the "weather" array
type Condition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Current is the /weather response
type Current struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []Condition `json:"weather"`
	Wind    struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
}

// Entry is one three-hourly slot of the /forecast response
type Entry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []Condition `json:"weather"`
}

func (e Entry) Time() time.Time {
	return time.Unix(e.Dt, 0)
}

// Forecast is the /forecast response
type Forecast struct {
	List []Entry `json:"list"`
}

// Report is current conditions together with the forecast
type Report struct {
	Current  Current
	Forecast Forecast
}

// APIError is a non-success answer from the weather API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	statusText := http.StatusText(e.StatusCode)
	if e.Message != "" {
		return strings.TrimSpace(fmt.Sprintf("%d %s · %s", e.StatusCode, statusText, e.Message))
	}
	if statusText == "" {
		statusText = "Unknown error"
	}
	return fmt.Sprintf("%d %s", e.StatusCode, statusText)
}

// Client queries OpenWeatherMap for one fixed location in metric units
type Client struct {
	httpClient *resty.Client
	baseURL    string
	lat        float64
	lon        float64
}

func NewClient(cfg config.WeatherConfig) *Client {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: client,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		lat:        cfg.Lat,
		lon:        cfg.Lon,
	}
}

// Close releases idle connections
func (c *Client) Close() error {
	c.httpClient.Client().CloseIdleConnections()
	return c.httpClient.Close()
}

// Report fetches current conditions and the forecast concurrently and waits
// for both. When both fail the current conditions error is reported.
func (c *Client) Report(ctx context.Context, apiKey string) (*Report, error) {
	var (
		report                  Report
		currentErr, forecastErr error
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		currentErr = c.get(ctx, "weather", apiKey, &report.Current)
		return currentErr
	})
	g.Go(func() error {
		forecastErr = c.get(ctx, "forecast", apiKey, &report.Forecast)
		return forecastErr
	})
	_ = g.Wait()

	if currentErr != nil {
		return nil, currentErr
	}
	if forecastErr != nil {
		return nil, forecastErr
	}
	return &report, nil
}

func (c *Client) get(ctx context.Context, endpoint, apiKey string, out any) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lat":   strconv.FormatFloat(c.lat, 'f', -1, 64),
			"lon":   strconv.FormatFloat(c.lon, 'f', -1, 64),
			"units": "metric",
			"appid": apiKey,
		}).
		Get(c.baseURL + "/" + endpoint)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", endpoint, err)
	}

	if resp.IsError() {
		apiErr := &APIError{StatusCode: resp.StatusCode()}
		var body struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(resp.Bytes(), &body) == nil {
			apiErr.Message = body.Message
		}
		return apiErr
	}

	if err := json.Unmarshal(resp.Bytes(), out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", endpoint, err)
	}
	log.Debugf("Weather %s fetched (%d)", endpoint, resp.StatusCode())
	return nil
}
