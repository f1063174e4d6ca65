// Package shell wraps a page's static HTML document. Page controllers reach
// containers, controls and text slots through it by selector.
package shell

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Shell is one parsed page document
type Shell struct {
	doc *goquery.Document
}

// Parse reads a page document
func Parse(r io.Reader) (*Shell, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &Shell{doc: doc}, nil
}

// ParseString is Parse for in-memory documents
func ParseString(html string) (*Shell, error) {
	return Parse(strings.NewReader(html))
}

// HTML serialises the document
func (s *Shell) HTML() (string, error) {
	html, err := s.doc.Html()
	if err != nil {
		return "", fmt.Errorf("failed to serialise page: %w", err)
	}
	return html, nil
}

// Find exposes the raw selection for assertions and one-off edits
func (s *Shell) Find(selector string) *goquery.Selection {
	return s.doc.Find(selector)
}

// Region returns the first element matching selector as a render container
func (s *Shell) Region(selector string) (*Region, bool) {
	sel := s.doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return &Region{sel: sel}, true
}

// SetText replaces the text of every element matching selector.
// It reports whether anything matched.
func (s *Shell) SetText(selector, text string) bool {
	sel := s.doc.Find(selector)
	if sel.Length() == 0 {
		return false
	}
	sel.SetText(text)
	return true
}

// SetAttr sets an attribute on every element matching selector
func (s *Shell) SetAttr(selector, name, value string) bool {
	sel := s.doc.Find(selector)
	if sel.Length() == 0 {
		return false
	}
	sel.SetAttr(name, value)
	return true
}

// MarkActive toggles the "active" class and aria-pressed on every control
// carrying attr, according to whether its value equals current.
func (s *Shell) MarkActive(attr, current string) {
	s.doc.Find("[" + attr + "]").Each(func(_ int, control *goquery.Selection) {
		active := control.AttrOr(attr, "") == current
		if active {
			control.AddClass("active")
		} else {
			control.RemoveClass("active")
		}
		control.SetAttr("aria-pressed", fmt.Sprint(active))
	})
}

// SelectOption marks the option of the select matching selector whose value
// equals value. Unknown values leave the select without a selected option.
func (s *Shell) SelectOption(selector, value string) {
	s.doc.Find(selector).Find("option").Each(func(_ int, option *goquery.Selection) {
		if option.AttrOr("value", option.Text()) == value {
			option.SetAttr("selected", "selected")
		} else {
			option.RemoveAttr("selected")
		}
	})
}

// FooterFormat selects how the last-modified stamp reads
type FooterFormat string

const (
	FooterUpdated      FooterFormat = "updated"
	FooterModification FooterFormat = "modification"
)

// StampFooter writes the current year into #currentyear and the document's
// modification time into #lastModified.
func (s *Shell) StampFooter(now, lastModified time.Time, format FooterFormat) {
	s.SetText("#currentyear", fmt.Sprint(now.Year()))

	switch format {
	case FooterModification:
		s.SetText("#lastModified", "Last Modification: "+lastModified.Format("01/02/2006 15:04:05"))
	default:
		s.SetText("#lastModified", "Last updated "+lastModified.Format("January 2, 2006 at 3:04 PM"))
	}
}

// Region is a container element inside the shell
type Region struct {
	sel *goquery.Selection
}

func (r *Region) Reset() {
	r.sel.Empty()
}

func (r *Region) AppendHTML(fragment string) {
	r.sel.AppendHtml(fragment)
}

func (r *Region) SetClass(name string, on bool) {
	if on {
		r.sel.AddClass(name)
	} else {
		r.sel.RemoveClass(name)
	}
}
