package render

import (
	"html"
	"strings"
)

// Container is a mount point in the page shell
type Container interface {
	Reset()
	AppendHTML(fragment string)
	SetClass(name string, on bool)
}

// Card builds the unit for the record at position i of the displayed sequence
type Card[T any] func(i int, record T) (string, error)

// Renderer mounts one unit per record, replacing whatever the container held
type Renderer[T any] struct {
	Card        Card[T]
	Empty       string
	StatusClass string
}

// Render builds all units first, then swaps the container content in one go,
// so a card failure leaves the previous content untouched. An empty sequence
// mounts a single status element instead.
func (r *Renderer[T]) Render(c Container, records []T) error {
	if len(records) == 0 {
		SetStatus(c, r.StatusClass, r.Empty)
		return nil
	}

	var b strings.Builder
	for i, record := range records {
		unit, err := r.Card(i, record)
		if err != nil {
			return &RenderError{Index: i, Cause: err}
		}
		b.WriteString(unit)
	}

	c.Reset()
	c.AppendHTML(b.String())
	return nil
}

// SetStatus replaces the container content with one status paragraph
func SetStatus(c Container, class, message string) {
	c.Reset()
	c.AppendHTML(`<p class="` + html.EscapeString(class) + `">` + html.EscapeString(message) + `</p>`)
}
