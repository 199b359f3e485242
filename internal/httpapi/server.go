// Package httpapi serves the timeline views as read-only JSON.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/alexanderramin/renoboard/internal/app"
	"github.com/gin-gonic/gin"
)

// Config is the dependency bag passed to New.
type Config struct {
	Timeline app.TimelineUseCase
	// Location turns a ?today=YYYY-MM-DD override into an instant.
	Location *time.Location
	// LogWriter receives one access-log line per request. Nil disables it.
	LogWriter io.Writer
	// Mode is a gin mode: debug, release or test. Empty means release.
	Mode string
}

type Server struct {
	engine   *gin.Engine
	timeline app.TimelineUseCase
	loc      *time.Location
}

func New(cfg Config) *Server {
	mode := cfg.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	if cfg.LogWriter != nil {
		engine.Use(gin.LoggerWithWriter(cfg.LogWriter, "/healthz"))
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	srv := &Server{engine: engine, timeline: cfg.Timeline, loc: loc}
	srv.routes()
	return srv
}

func (s *Server) routes() {
	s.engine.GET("/healthz", s.health)

	api := s.engine.Group("/api")
	{
		api.GET("/calendar/:year/:month", s.month)
		api.GET("/gantt", s.gantt)
		api.GET("/days/:date", s.day)
	}
}

// Handler exposes the router for http.Server and httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving on %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	}
}
