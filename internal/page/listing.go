// Package page binds listings to page shells: it loads records, applies the
// visitor's selection, renders units and reflects the selection onto the
// page's controls.
package page

import (
	"context"
	"errors"

	"chamber/sites/internal/render"
	"chamber/sites/internal/selector"
	"chamber/sites/internal/source"
	"chamber/sites/internal/state"

	log "github.com/sirupsen/logrus"
)

// Phase is where a listing is in its load lifecycle
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseLoadFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseLoadFailed:
		return "load_failed"
	default:
		return "unknown"
	}
}

// Messages are the status texts a listing shows outside the loaded state
type Messages struct {
	Loading string
	Failure string
}

// Listing drives one container: fetch once, then select and render on every
// selection change. A failed load is terminal for the page load.
type Listing[T any] struct {
	Name      string
	Source    source.Loader[T]
	Select    selector.Func[T]
	Renderer  render.Renderer[T]
	Selection *state.Selection
	Messages  Messages
	Container render.Container

	// StatusSlot receives loading and failure messages when the page keeps
	// them outside the container. Nil means they replace the container content.
	StatusSlot func(message string)

	// Bind reflects the selection onto the page's controls. It runs when
	// loading starts and after every applied interaction.
	Bind func(selection string)

	phase     Phase
	records   []T
	displayed []T
}

func (l *Listing[T]) Phase() Phase {
	return l.phase
}

// Records is the full loaded sequence
func (l *Listing[T]) Records() []T {
	return l.records
}

// Displayed is the sequence most recently rendered
func (l *Listing[T]) Displayed() []T {
	return l.displayed
}

// Load fetches the records and renders them. Errors are logged and shown as
// the failure status; ErrEmptyResult renders the empty state.
func (l *Listing[T]) Load(ctx context.Context) {
	if l.phase != PhaseIdle {
		return
	}

	l.phase = PhaseLoading
	l.bind()
	l.status(l.Messages.Loading)

	records, err := l.Source(ctx)
	switch {
	case errors.Is(err, source.ErrEmptyResult):
		log.Infof("%s: %v", l.Name, err)
		records = nil
	case err != nil:
		log.Errorf("❌ %s: load failed: %v", l.Name, err)
		l.phase = PhaseLoadFailed
		l.status(l.Messages.Failure)
		return
	}

	l.records = records
	l.phase = PhaseLoaded
	if l.StatusSlot != nil {
		l.StatusSlot("")
	}
	l.Refresh()
}

// Refresh re-selects and re-renders from the loaded records without fetching
func (l *Listing[T]) Refresh() {
	if l.phase != PhaseLoaded {
		return
	}

	selection := l.current()
	displayed := l.Select(l.records, selection)
	if err := l.Renderer.Render(l.Container, displayed); err != nil {
		log.Errorf("❌ %s: render failed: %v", l.Name, err)
		if l.StatusSlot != nil {
			l.Container.Reset()
		}
		l.displayed = nil
		l.status(l.Messages.Failure)
		return
	}
	l.displayed = displayed
}

// Apply records an interaction's new selection and refreshes. Before the
// records arrive the value is only remembered; after a failed load nothing
// is rendered.
func (l *Listing[T]) Apply(ctx context.Context, value string) {
	if l.Selection == nil {
		return
	}
	if err := l.Selection.Set(ctx, value); err != nil {
		log.Warnf("%s: %v", l.Name, err)
	}
	l.bind()
	l.Refresh()
}

func (l *Listing[T]) current() string {
	if l.Selection == nil {
		return selector.AllValue
	}
	return l.Selection.Get()
}

func (l *Listing[T]) bind() {
	if l.Bind != nil {
		l.Bind(l.current())
	}
}

func (l *Listing[T]) status(message string) {
	if message == "" {
		return
	}
	if l.StatusSlot != nil {
		l.StatusSlot(message)
		return
	}
	render.SetStatus(l.Container, l.Renderer.StatusClass, message)
}
