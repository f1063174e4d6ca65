package state

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// CookieStore reads values from the request's cookies and writes them back
// as Set-Cookie headers, so they live in the visitor's browser.
type CookieStore struct {
	mu     sync.Mutex
	w      http.ResponseWriter
	values map[string]string
	maxAge time.Duration
	path   string
}

func NewCookieStore(w http.ResponseWriter, r *http.Request, maxAge time.Duration) *CookieStore {
	values := make(map[string]string)
	for _, c := range r.Cookies() {
		if v, err := url.QueryUnescape(c.Value); err == nil {
			values[c.Name] = v
		}
	}
	return &CookieStore{
		w:      w,
		values: values,
		maxAge: maxAge,
		path:   "/",
	}
}

func (s *CookieStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *CookieStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    url.QueryEscape(value),
		Path:     s.path,
		MaxAge:   int(s.maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
