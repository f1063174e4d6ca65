// Package site renders page shells stored under the site root.
package site

import (
	"context"
	"fmt"
	"path"

	"chamber/sites/internal/page"
	"chamber/sites/internal/shell"

	"github.com/spf13/afero"
)

// Site is the set of routed pages plus the filesystem holding their shells
// and static assets
type Site struct {
	fs     afero.Fs
	root   string
	routes []page.Route
}

func New(fs afero.Fs, root string, routes []page.Route) *Site {
	return &Site{fs: fs, root: root, routes: routes}
}

func (s *Site) Routes() []page.Route {
	return s.routes
}

// Fs is the site root as its own filesystem
func (s *Site) Fs() afero.Fs {
	return afero.NewBasePathFs(s.fs, s.root)
}

// Render fills the route's shell for a visit and returns the finished document.
// The shell file's modification time is stamped into the footer.
func (s *Site) Render(ctx context.Context, route page.Route, v page.Visit) (string, error) {
	name := path.Join(s.root, route.Shell)

	info, err := s.fs.Stat(name)
	if err != nil {
		return "", fmt.Errorf("failed to stat shell %s: %w", route.Shell, err)
	}

	f, err := s.fs.Open(name)
	if err != nil {
		return "", fmt.Errorf("failed to open shell %s: %w", route.Shell, err)
	}
	defer f.Close()

	sh, err := shell.Parse(f)
	if err != nil {
		return "", fmt.Errorf("failed to parse shell %s: %w", route.Shell, err)
	}

	v.Modified = info.ModTime()
	if err := route.Render(ctx, sh, v); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", route.Path, err)
	}
	return sh.HTML()
}
