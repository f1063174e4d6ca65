package server

import (
	"net/http"
	"sync"
	"time"

	"chamber/sites/internal/state"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// VisitorCookie identifies a visitor whose values are kept server side
const VisitorCookie = "chamber_visitor"

// Stores builds the per-request visitor store
type Stores func(w http.ResponseWriter, r *http.Request) state.Store

// CookieStores keep every value in its own browser cookie
func CookieStores(maxAge time.Duration) Stores {
	return func(w http.ResponseWriter, r *http.Request) state.Store {
		return state.NewCookieStore(w, r, maxAge)
	}
}

// RedisStores keep values in Redis under the visitor's id
func RedisStores(rdb *redis.Client, keyPrefix string, maxAge time.Duration) Stores {
	return func(w http.ResponseWriter, r *http.Request) state.Store {
		return state.NewRedisStore(rdb, keyPrefix, visitorID(w, r, maxAge))
	}
}

// maxMemoryVisitors caps how many visitors MemoryStores keeps at once
const maxMemoryVisitors = 10000

// MemoryStores keep values in process memory, one store per visitor id.
// Visitors idle longer than maxAge are dropped, and past maxMemoryVisitors
// the least recently seen visitor makes room for a new one.
func MemoryStores(maxAge time.Duration) Stores {
	visitors := newMemoryVisitors(maxAge, maxMemoryVisitors, time.Now)
	return func(w http.ResponseWriter, r *http.Request) state.Store {
		return visitors.store(visitorID(w, r, maxAge))
	}
}

type memoryVisitor struct {
	store *state.MemoryStore
	seen  time.Time
}

type memoryVisitors struct {
	mu        sync.Mutex
	idle      time.Duration
	limit     int
	now       func() time.Time
	lastSweep time.Time
	visitors  map[string]*memoryVisitor
}

func newMemoryVisitors(idle time.Duration, limit int, now func() time.Time) *memoryVisitors {
	return &memoryVisitors{
		idle:      idle,
		limit:     limit,
		now:       now,
		lastSweep: now(),
		visitors:  make(map[string]*memoryVisitor),
	}
}

func (m *memoryVisitors) store(id string) *state.MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.Sub(m.lastSweep) >= time.Minute {
		m.sweep(now)
	}

	if v, ok := m.visitors[id]; ok {
		v.seen = now
		return v.store
	}

	if len(m.visitors) >= m.limit {
		m.evictOldest()
	}
	v := &memoryVisitor{store: state.NewMemoryStore(), seen: now}
	m.visitors[id] = v
	return v.store
}

func (m *memoryVisitors) sweep(now time.Time) {
	m.lastSweep = now
	for id, v := range m.visitors {
		if now.Sub(v.seen) > m.idle {
			delete(m.visitors, id)
		}
	}
}

func (m *memoryVisitors) evictOldest() {
	var oldestID string
	var oldest time.Time
	for id, v := range m.visitors {
		if oldestID == "" || v.seen.Before(oldest) {
			oldestID, oldest = id, v.seen
		}
	}
	delete(m.visitors, oldestID)
}

func (m *memoryVisitors) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.visitors)
}

// visitorID returns the id from the visitor cookie, issuing a new one when
// the cookie is missing or malformed
func visitorID(w http.ResponseWriter, r *http.Request, maxAge time.Duration) string {
	if c, err := r.Cookie(VisitorCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     VisitorCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
