// Package server assembles the player service: seed data, store, HTTP
// surface and telemetry, plus their lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	appplayers "github.com/preston-bernstein/football-players-service/internal/app/players"
	"github.com/preston-bernstein/football-players-service/internal/config"
	"github.com/preston-bernstein/football-players-service/internal/domain/players"
	httpserver "github.com/preston-bernstein/football-players-service/internal/http"
	"github.com/preston-bernstein/football-players-service/internal/http/handlers"
	"github.com/preston-bernstein/football-players-service/internal/http/middleware"
	"github.com/preston-bernstein/football-players-service/internal/logging"
	"github.com/preston-bernstein/football-players-service/internal/metrics"
	"github.com/preston-bernstein/football-players-service/internal/seed"
	"github.com/preston-bernstein/football-players-service/internal/store"
	"github.com/preston-bernstein/football-players-service/internal/validation"
)

var (
	metricsSetup = metrics.Setup
	loadSeed     = func(path string) ([]players.Player, error) { return seed.NewLoader(path).Load() }
)

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	players       *appplayers.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New loads the seed file and wires the store, service and HTTP servers.
// A missing or invalid seed file is returned as an error.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Server, error) {
	initial, err := loadSeed(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("load seed data: %w", err)
	}
	logging.Info(logger, "seed data loaded", "path", cfg.SeedFile, logging.FieldCount, len(initial))

	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	memoryStore := store.NewMemoryStore(initial)
	if err := recorder.TrackCollectionSize(memoryStore.Len); err != nil {
		logging.Warn(logger, "collection size gauge unavailable", "error", err)
	}
	playerSvc := appplayers.NewService(memoryStore, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		players:       playerSvc,
		httpServer:    buildHTTPServer(cfg, playerSvc, logger, recorder),
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, playerSvc *appplayers.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	handler := handlers.NewHandler(playerSvc, validation.NewValidator(), logger, cfg.MaxBodyBytes)
	router := httpserver.NewRouter(handler)
	cors := middleware.CORS(middleware.CORSOptions{
		Enabled: cfg.CORS.Enabled,
		Origins: cfg.CORS.Origins,
	}, router)
	wrapped := middleware.LoggingMiddleware(logger, recorder, cors)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
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
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

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
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
