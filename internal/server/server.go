// Package server is the HTTP shell over the retrieval engine. It exposes
// pattern retrieval, search, and module assembly under /v1, with API-key
// auth, structured request logging, and Prometheus metrics.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sealstack/internal/config"
	"sealstack/internal/engine"
)

// Server wires the engine into a gin router and owns its lifecycle.
type Server struct {
	cfg       *config.Config
	eng       *engine.Engine
	log       *zap.Logger
	router    *gin.Engine
	startedAt time.Time
}

// New builds a fully routed server. It does not start listening.
func New(cfg *config.Config, eng *engine.Engine, log *zap.Logger) *Server {
	s := &Server{
		cfg:       cfg,
		eng:       eng,
		log:       log,
		startedAt: time.Now(),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestLogger())
	router.Use(observeRequests())
	s.router = router

	s.setupRoutes()
	patternsLoaded.Set(float64(eng.Store().Len()))

	return s
}

// Handler returns the underlying http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then drains in-flight requests within
// the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("http server listening",
			zap.String("addr", s.cfg.Server.Addr),
			zap.Int("patterns", s.eng.Store().Len()),
			zap.Bool("auth", s.cfg.AuthEnabled()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.log.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
