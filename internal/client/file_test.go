package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileFetcher(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "web/chamber/data/members.json", []byte(`{"members":[]}`), 0o644))

	fetcher := NewFileFetcher(fsys, "web/chamber")

	t.Run("reads relative ref", func(t *testing.T) {
		body, err := fetcher.Fetch(context.Background(), "data/members.json")
		require.NoError(t, err)
		assert.Equal(t, `{"members":[]}`, string(body))
	})

	t.Run("dot prefix", func(t *testing.T) {
		_, err := fetcher.Fetch(context.Background(), "./data/members.json")
		require.NoError(t, err)
	})

	t.Run("missing file is a 404", func(t *testing.T) {
		_, err := fetcher.Fetch(context.Background(), "data/roles.json")
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	})

	t.Run("cannot escape root", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fsys, "secret.json", []byte(`{}`), 0o644))
		_, err := fetcher.Fetch(context.Background(), "../../secret.json")
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
	})
}
