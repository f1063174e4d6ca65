package state

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieStore_RoundTripAcrossRequests(t *testing.T) {
	ctx := context.Background()

	firstRec := httptest.NewRecorder()
	first := NewCookieStore(firstRec, httptest.NewRequest(http.MethodGet, "/", nil), 24*time.Hour)

	_, ok, err := first.Get(ctx, KeyInterest)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, first.Set(ctx, KeyInterest, "data & analytics"))

	cookies := firstRec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, KeyInterest, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 86400, cookies[0].MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	second := NewCookieStore(httptest.NewRecorder(), req, 24*time.Hour)

	value, ok, err := second.Get(ctx, KeyInterest)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "data & analytics", value)
}

func TestCookieStore_SetVisibleWithinRequest(t *testing.T) {
	ctx := context.Background()
	store := NewCookieStore(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), time.Hour)

	require.NoError(t, store.Set(ctx, KeyTrackFilter, "design"))
	value, ok, err := store.Get(ctx, KeyTrackFilter)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "design", value)
}
