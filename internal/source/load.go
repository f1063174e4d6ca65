package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"chamber/sites/internal/client"

	log "github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"
)

// Loader produces the full record sequence of one listing
type Loader[T any] func(ctx context.Context) ([]T, error)

// Load fetches ref once and decodes the array held by field.
// Records are returned as-is; presence of optional fields is the renderer's concern.
func Load[T any](ctx context.Context, fetcher client.Fetcher, ref, field string) ([]T, error) {
	body, err := fetcher.Fetch(ctx, ref)
	if err != nil {
		transportErr := &TransportError{Ref: ref, Cause: err}
		var statusErr *client.StatusError
		if errors.As(err, &statusErr) {
			transportErr.StatusCode = statusErr.StatusCode
		}
		return nil, transportErr
	}

	if err := checkEnvelope(body, field); err != nil {
		err.Ref = ref
		return nil, err
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &FormatError{Ref: ref, Message: "payload is not a JSON object", Cause: err}
	}

	var records []T
	if err := json.Unmarshal(envelope[field], &records); err != nil {
		return nil, &FormatError{Ref: ref, Message: fmt.Sprintf("field %q does not hold records", field), Cause: err}
	}

	log.Debugf("Loaded %d records from %s", len(records), ref)
	return records, nil
}

// FromFetcher binds Load to a fixed resource for use as a listing Loader
func FromFetcher[T any](fetcher client.Fetcher, ref, field string) Loader[T] {
	return func(ctx context.Context) ([]T, error) {
		return Load[T](ctx, fetcher, ref, field)
	}
}

// Static serves an in-memory constant array. The slice is copied so callers
// cannot disturb the shared catalog.
func Static[T any](records []T) Loader[T] {
	return func(context.Context) ([]T, error) {
		out := make([]T, len(records))
		copy(out, records)
		return out, nil
	}
}

// RequireRecords turns an empty but well-formed result into ErrEmptyResult
func RequireRecords[T any](load Loader[T]) Loader[T] {
	return func(ctx context.Context) ([]T, error) {
		records, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, ErrEmptyResult
		}
		return records, nil
	}
}

func envelopeSchema(field string) string {
	return fmt.Sprintf(`{
		"type": "object",
		"required": [%q],
		"properties": {
			%q: {"type": "array"}
		}
	}`, field, field)
}

func checkEnvelope(body []byte, field string) *FormatError {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(envelopeSchema(field)),
		gojsonschema.NewBytesLoader(body),
	)
	if err != nil {
		return &FormatError{Message: "payload is not valid JSON", Cause: err}
	}

	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return &FormatError{Message: "unexpected document shape: " + strings.Join(problems, "; ")}
	}
	return nil
}
