package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"tickerfeed/internal/config"
	"tickerfeed/internal/connection"
	"tickerfeed/internal/database"
	"tickerfeed/internal/flush"
	"tickerfeed/internal/hub"
	"tickerfeed/internal/server"
	"tickerfeed/internal/snapshot"
	"tickerfeed/internal/store"
	"tickerfeed/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/tickerfeed.yaml", "path to config file")
	symbols := flag.String("symbols", "", "comma-separated symbol list overriding config")
	flushInterval := flag.Duration("flush-interval", 0, "flush interval overriding config")
	reconnectDelay := flag.Duration("reconnect-delay", 0, "reconnect backoff overriding config")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting tickerfeed",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Startup overrides
	if *symbols != "" {
		cfg.Binance.Symbols = strings.Split(*symbols, ",")
	}
	if *flushInterval > 0 {
		cfg.Flush.Interval = *flushInterval
	}
	if *reconnectDelay > 0 {
		cfg.Listener.ReconnectDelay = *reconnectDelay
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration after overrides", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"symbols", cfg.Binance.Symbols,
		"flush_interval", cfg.Flush.Interval,
		"reconnect_delay", cfg.Listener.ReconnectDelay,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to database
	logger.Info("connecting to database",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"database", cfg.Database.Name,
	)

	connectCtx, connectCancel := context.WithTimeout(ctx, 30*time.Second)
	pool, err := database.Connect(connectCtx, cfg.Database)
	connectCancel()
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Wire the core: listener → snapshot table → scheduler → {store, hub}
	table := snapshot.NewTable()
	tickerStore := store.NewPostgresStore(pool, logger)
	broadcast := hub.NewHub(cfg.Hub.SubscriberBuffer, logger)
	defer broadcast.Close()

	listener := connection.NewListener(connection.ListenerConfig{
		BaseURL:        cfg.Binance.WSURL,
		Symbols:        cfg.Binance.Symbols,
		ReconnectDelay: cfg.Listener.ReconnectDelay,
		PingTimeout:    cfg.Listener.PingTimeout,
		WriteTimeout:   cfg.Listener.WriteTimeout,
		BufferSize:     cfg.Listener.BufferSize,
	}, table, logger)

	scheduler := flush.NewScheduler(cfg.Flush.Interval, table, tickerStore, broadcast, logger)
	srv := server.New(cfg.Server, tickerStore, broadcast, pool, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return listener.Run(gctx) })
	g.Go(func() error { return scheduler.Run(gctx) })
	g.Go(func() error { return srv.Run(gctx) })

	logger.Info("tickerfeed running", "addr", cfg.Server.Addr)

	if err := g.Wait(); err != nil {
		logger.Error("service error", "error", err)
		os.Exit(1)
	}

	logger.Info("tickerfeed stopped")
}
