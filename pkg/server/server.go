package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/Jessica765/vial-userspace/pkg/cache"
)

// Config carries the server dependencies and settings.
type Config struct {
	// Addr is the listen address, for example ":8080".
	Addr string
	// Cache stores rendered diagrams. Nil disables caching.
	Cache cache.Cache
	// Keyer builds cache keys. Nil falls back to the default layout.
	Keyer cache.Keyer
	// TTL bounds how long rendered diagrams stay cached.
	TTL time.Duration
	// Logger receives request logs. Nil falls back to log.Default().
	Logger *log.Logger
}

// Server serves catalogue keyboards as plain-text diagrams.
type Server struct {
	addr   string
	cache  cache.Cache
	keyer  cache.Keyer
	ttl    time.Duration
	logger *log.Logger
	router chi.Router
}

// New creates a Server from cfg, applying defaults for unset fields.
func New(cfg Config) *Server {
	s := &Server{
		addr:   cfg.Addr,
		cache:  cfg.Cache,
		keyer:  cfg.Keyer,
		ttl:    cfg.TTL,
		logger: cfg.Logger,
	}
	if s.addr == "" {
		s.addr = ":8080"
	}
	if s.cache == nil {
		s.cache = cache.NewNullCache()
	}
	if s.keyer == nil {
		s.keyer = cache.NewDefaultKeyer()
	}
	if s.ttl == 0 {
		s.ttl = time.Hour
	}
	if s.logger == nil {
		s.logger = log.Default()
	}

	r := chi.NewRouter()
	r.Use(s.recoverPanics)
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Get("/healthz", s.handleHealth)
	r.Get("/keyboards", s.handleList)
	r.Get("/keyboards/{name}.txt", s.handleKeyboard)
	r.Get("/keyboards/{name}/layers/{layer}.txt", s.handleLayer)
	s.router = r

	return s
}

// Handler returns the configured router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server until ctx is cancelled, then shuts down
// gracefully with a five second drain window.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
