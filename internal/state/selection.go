package state

import (
	"context"
	"fmt"
)

// Selection is the active filter or view mode of one page. A persistent
// selection mirrors every change into the Store under its key.
type Selection struct {
	key        string
	value      string
	persistent bool
	store      Store
}

// NewSelection returns a selection that lives only for the current page load
func NewSelection(defaultValue string) *Selection {
	return &Selection{value: defaultValue}
}

// NewPersistentSelection returns a selection stored under key
func NewPersistentSelection(store Store, key, defaultValue string) *Selection {
	return &Selection{
		key:        key,
		value:      defaultValue,
		persistent: true,
		store:      store,
	}
}

func (s *Selection) Get() string {
	return s.value
}

// Set adopts value and, when persistent, writes it to the store.
// The in-memory value changes even if the write fails.
func (s *Selection) Set(ctx context.Context, value string) error {
	s.value = value
	if !s.persistent {
		return nil
	}
	if err := s.store.Set(ctx, s.key, value); err != nil {
		return fmt.Errorf("failed to persist selection %s: %w", s.key, err)
	}
	return nil
}

// Restore adopts the stored value if there is one. Stored values are not
// checked against the options the page currently offers.
func (s *Selection) Restore(ctx context.Context) error {
	if !s.persistent {
		return nil
	}
	value, ok, err := s.store.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("failed to restore selection %s: %w", s.key, err)
	}
	if ok && value != "" {
		s.value = value
	}
	return nil
}
