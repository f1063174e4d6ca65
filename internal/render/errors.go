// Package render turns records into self-contained HTML units and mounts
// them into a page container.
package render

import "fmt"

// RenderError wraps a card template failure for one record
type RenderError struct {
	Index int
	Cause error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error: unit %d: %v", e.Index, e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
