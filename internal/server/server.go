// Package server composes configuration, state, persistence, provider
// and HTTP surface into a runnable service.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"

	"roster-service/internal/app/catalog"
	"roster-service/internal/app/roster"
	"roster-service/internal/app/session"
	"roster-service/internal/config"
	httpserver "roster-service/internal/http"
	"roster-service/internal/http/handlers"
	"roster-service/internal/http/middleware"
	"roster-service/internal/logging"
	"roster-service/internal/metrics"
	"roster-service/internal/pager"
	"roster-service/internal/persist"
	"roster-service/internal/providers"
	"roster-service/internal/store"
)

var (
	metricsSetup = metrics.Setup
	persistOpen  = persist.Open
)

type Server struct {
	cfg         config.Config
	logger      *slog.Logger
	metrics     *metrics.Recorder
	store       *store.Store
	persistence *persist.Store
	pager       *pager.Pager

	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	ready         atomic.Bool
}

// New constructs a server with default provider wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.PlayerCatalog) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	}

	st := store.New()
	persistence := buildPersistence(cfg, st, logger, recorder)

	p := pager.New(provider, st.Catalog, logger, recorder, cfg.Catalog.PageSize)
	sessionSvc := session.NewService(st.Auth, logger)
	rosterSvc := roster.NewService(st.Teams, st.Catalog, logger)
	catalogSvc := catalog.NewService(st.Catalog, p)

	srv := &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         st,
		persistence:   persistence,
		pager:         p,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
	srv.httpServer = buildHTTPServer(cfg, sessionSvc, rosterSvc, catalogSvc, logger, recorder, srv.ready.Load)
	return srv
}

// buildPersistence opens the snapshot store, restores prior state and
// subscribes future writes. Persistence failures degrade to an
// in-memory run instead of refusing to start.
func buildPersistence(cfg config.Config, st *store.Store, logger *slog.Logger, recorder *metrics.Recorder) *persist.Store {
	if !cfg.Persistence.Enabled {
		return nil
	}

	persistence, err := persistOpen(cfg.Persistence.Path, logger, recorder)
	if err != nil {
		logging.Warn(logger, "persistence unavailable, continuing in memory", "error", err)
		return nil
	}
	if err := persistence.Restore(st); err != nil {
		logging.Warn(logger, "state restore failed, starting fresh", "error", err)
	}
	persistence.Attach(st)
	return persistence
}

func buildHTTPServer(cfg config.Config, sessionSvc *session.Service, rosterSvc *roster.Service, catalogSvc *catalog.Service, logger *slog.Logger, recorder *metrics.Recorder, readyFn func() bool) httpServer {
	handler := handlers.NewHandler(sessionSvc, rosterSvc, catalogSvc, logger, readyFn)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.Logging(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP and metrics servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.ready.Store(true)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	s.ready.Store(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.persistence != nil {
		if err := s.persistence.Close(); err != nil {
			logging.Warn(s.logger, "closing state database failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
