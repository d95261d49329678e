package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tickerfeed/internal/config"
	"tickerfeed/internal/hub"
	"tickerfeed/internal/store"
)

// Pinger reports storage liveness for the health endpoint.
// *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server serves the HTTP API and the websocket subscriber endpoint.
type Server struct {
	cfg    config.ServerConfig
	store  store.TickerStore
	hub    *hub.Hub
	db     Pinger // nil skips the database health check
	logger *slog.Logger
	engine *gin.Engine
}

// New creates a server with all routes registered.
func New(cfg config.ServerConfig, st store.TickerStore, h *hub.Hub, db Pinger, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:    cfg,
		store:  st,
		hub:    h,
		db:     db,
		logger: logger,
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery())
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.engine.Group("/api")
	api.GET("/tickers", s.listTickers)
	api.GET("/tickers/history", s.tickerHistory)
	api.GET("/health", s.health)

	s.engine.GET("/ws", s.handleWebSocket)
}

// Handler returns the underlying HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
