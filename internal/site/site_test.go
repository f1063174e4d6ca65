package site

import (
	"context"
	"net/url"
	"testing"
	"time"

	"chamber/sites/internal/page"
	"chamber/sites/internal/shell"
	"chamber/sites/internal/state"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_StampsShellModTime(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/web/chamber/join.html",
		[]byte(`<html><body><input id="timestamp"><span id="lastModified"></span></body></html>`), 0o644))
	modified := time.Date(2026, 5, 1, 8, 15, 0, 0, time.UTC)
	require.NoError(t, fs.Chtimes("/web/chamber/join.html", modified, modified))

	route := page.Route{Path: "/chamber/join.html", Shell: "chamber/join.html", Footer: shell.FooterUpdated, Page: page.Join()}
	s := New(fs, "/web", []page.Route{route})

	html, err := s.Render(context.Background(), route, page.Visit{
		Query: url.Values{},
		Store: state.NewMemoryStore(),
		Now:   time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Last updated May 1, 2026 at 8:15 AM")
	assert.Contains(t, html, `value="2026-10-17T00:00:00Z"`)
}

func TestRender_MissingShell(t *testing.T) {
	s := New(afero.NewMemMapFs(), "/web", nil)
	_, err := s.Render(context.Background(), page.Route{Path: "/", Shell: "index.html", Page: page.Static}, page.Visit{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to stat shell index.html")
}
