package client

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/spf13/afero"
)

type fileFetcher struct {
	fs   afero.Fs
	root string
}

// NewFileFetcher returns a Fetcher that reads refs from a directory of fsys.
// A missing file is reported as a 404 StatusError, like a static file server would.
func NewFileFetcher(fsys afero.Fs, root string) Fetcher {
	return &fileFetcher{fs: fsys, root: root}
}

func (f *fileFetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("request cancelled: %w", err)
	}

	name := path.Join(f.root, path.Clean("/"+strings.TrimPrefix(ref, "./")))
	data, err := afero.ReadFile(f.fs, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound(ref)
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}
