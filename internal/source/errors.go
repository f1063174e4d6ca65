// Package source loads listing records from the site's JSON data files.
package source

import (
	"errors"
	"fmt"
)

// TransportError means the resource could not be retrieved, including
// non-success statuses. StatusCode is zero when no response arrived.
type TransportError struct {
	Ref        string
	StatusCode int
	Cause      error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error for %s: status %d: %v", e.Ref, e.StatusCode, e.Cause)
	}
	return fmt.Sprintf("transport error for %s: %v", e.Ref, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// FormatError means the payload was not JSON or lacked the expected array field
type FormatError struct {
	Ref     string
	Message string
	Cause   error
}

func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("format error for %s: %s: %v", e.Ref, e.Message, e.Cause)
	}
	return fmt.Sprintf("format error for %s: %s", e.Ref, e.Message)
}

func (e *FormatError) Unwrap() error {
	return e.Cause
}

// ErrEmptyResult marks a well-formed document with zero records
var ErrEmptyResult = errors.New("no records available")
