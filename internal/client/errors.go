package client

import (
	"fmt"
	"net/http"
)

// StatusError is returned when a resource answers with a non-success status
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error for %s: %d %s", e.URL, e.StatusCode, e.Status)
}

func notFound(ref string) *StatusError {
	return &StatusError{
		URL:        ref,
		StatusCode: http.StatusNotFound,
		Status:     http.StatusText(http.StatusNotFound),
	}
}
