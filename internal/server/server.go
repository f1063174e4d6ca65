// Package server serves the rendered pages and the site's static assets.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"chamber/sites/internal/page"
	"chamber/sites/internal/site"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	addr       string
	httpServer *http.Server
}

func New(host string, port int, handler http.Handler) *Server {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	return &Server{
		addr: addr,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// ListenAndServe runs until ctx ends, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	serveErr := make(chan error, 1)
	log.Infof("🌐 Listening on http://%s", s.addr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		log.Info("Server stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	}
}

// NewRouter routes every page of s and falls back to its static files
func NewRouter(s *site.Site, stores Stores) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	for _, route := range s.Routes() {
		handler := pageHandler(s, route, stores)
		r.Get(route.Path, handler)
		if strings.HasSuffix(route.Path, "/") {
			r.Get(route.Path+"index.html", handler)
		}
	}

	r.Handle("/*", http.FileServer(afero.NewHttpFs(s.Fs()).Dir("/")))
	return r
}

func pageHandler(s *site.Site, route page.Route, stores Stores) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		html, err := s.Render(r.Context(), route, page.Visit{
			Query: r.URL.Query(),
			Store: stores(w, r),
			Now:   time.Now(),
		})
		if err != nil {
			log.WithField("request_id", middleware.GetReqID(r.Context())).Errorf("❌ %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(html))
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.WithFields(log.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      ww.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  middleware.GetReqID(r.Context()),
		}).Debug("request served")
	})
}
