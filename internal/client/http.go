package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chamber/sites/internal/config"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

type httpFetcher struct {
	rl         ratelimit.Limiter
	baseURL    string
	httpClient *resty.Client
}

// NewHTTPFetcher returns a Fetcher that resolves refs against baseURL.
// Failed requests are never retried; the page shows a status instead.
func NewHTTPFetcher(baseURL string, cfg config.ClientConfig) Fetcher {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &httpFetcher{
		rl:         ratelimit.New(cfg.MaxRequestsPerSecond),
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
	}
}

func (f *httpFetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	url := f.resolve(ref)

	f.rl.Take()

	resp, err := f.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}

	if resp.IsError() {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode(), Status: resp.Status()}
	}

	log.Debugf("Fetched %s (%d)", url, resp.StatusCode())
	return []byte(resp.String()), nil
}

func (f *httpFetcher) resolve(ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return f.baseURL + "/" + strings.TrimPrefix(strings.TrimPrefix(ref, "./"), "/")
}
