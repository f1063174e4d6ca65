// Package publish renders every page to a static output directory and
// uploads that directory to S3.
package publish

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sync/atomic"
	"time"

	"chamber/sites/internal/page"
	"chamber/sites/internal/site"
	"chamber/sites/internal/state"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 4

// Builder writes a site snapshot as a first-time visitor would see it
type Builder struct {
	site    *site.Site
	out     afero.Fs
	dir     string
	workers int
}

func NewBuilder(s *site.Site, out afero.Fs, dir string) *Builder {
	return &Builder{site: s, out: out, dir: dir, workers: defaultWorkers}
}

// BuildResult counts what a build wrote
type BuildResult struct {
	Pages  int
	Assets int
}

// Build renders every routed page and copies every other file under the
// site root into the output directory.
func (b *Builder) Build(ctx context.Context, now time.Time) (BuildResult, error) {
	if err := b.out.MkdirAll(b.dir, 0o755); err != nil {
		return BuildResult{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	var pages, assets atomic.Int32
	routed := make(map[string]bool)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	for _, route := range b.site.Routes() {
		routed[path.Clean("/"+route.Shell)] = true
		g.Go(func() error {
			html, err := b.site.Render(ctx, route, page.Visit{
				Store: state.NewMemoryStore(),
				Now:   now,
			})
			if err != nil {
				return err
			}
			if err := b.write(route.Shell, []byte(html)); err != nil {
				return err
			}
			pages.Add(1)
			log.Debugf("Rendered %s", route.Shell)
			return nil
		})
	}

	src := b.site.Fs()
	err := afero.Walk(src, "/", func(name string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || routed[path.Clean("/"+filepath.ToSlash(name))] {
			return nil
		}
		g.Go(func() error {
			if err := b.copy(src, name); err != nil {
				return err
			}
			assets.Add(1)
			return nil
		})
		return nil
	})
	if err != nil {
		_ = g.Wait()
		return BuildResult{}, fmt.Errorf("failed to walk site root: %w", err)
	}

	if err := g.Wait(); err != nil {
		return BuildResult{}, err
	}

	result := BuildResult{Pages: int(pages.Load()), Assets: int(assets.Load())}
	log.Infof("✅ Built %d pages and %d assets into %s", result.Pages, result.Assets, b.dir)
	return result, nil
}

func (b *Builder) write(name string, data []byte) error {
	target := filepath.Join(b.dir, filepath.FromSlash(name))
	if err := b.out.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", name, err)
	}
	if err := afero.WriteFile(b.out, target, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func (b *Builder) copy(src afero.Fs, name string) error {
	in, err := src.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer in.Close()

	target := filepath.Join(b.dir, filepath.FromSlash(name))
	if err := b.out.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", name, err)
	}
	out, err := b.out.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s: %w", name, err)
	}
	return nil
}
