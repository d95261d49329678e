// streamprobe connects to the Binance combined stream and prints decoded
// ticker updates to the console. Useful for checking connectivity and the
// symbol list without a database.
//
// Usage: go run ./cmd/streamprobe --symbols btcusdt,ethusdt
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"tickerfeed/internal/binance"
	"tickerfeed/internal/config"
	"tickerfeed/internal/connection"
)

func main() {
	configPath := flag.String("config", "", "optional path to config file")
	symbols := flag.String("symbols", "", "comma-separated symbol list overriding config")
	verbose := flag.Bool("verbose", false, "print raw frame JSON")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	cfg := &config.Config{}
	if *configPath != "" {
		loaded, err := config.LoadWithDefaults(*configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	} else {
		cfg.ApplyDefaults()
	}
	if *symbols != "" {
		cfg.Binance.Symbols = strings.Split(*symbols, ",")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal")
		cancel()
	}()

	url := binance.StreamURL(cfg.Binance.WSURL, cfg.Binance.Symbols)
	logger.Info("connecting", "url", url)

	client := connection.NewClient(connection.ClientConfig{
		URL:          url,
		PingTimeout:  cfg.Listener.PingTimeout,
		WriteTimeout: cfg.Listener.WriteTimeout,
		BufferSize:   cfg.Listener.BufferSize,
	}, logger)

	if err := client.Connect(ctx); err != nil {
		logger.Error("connect failed", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	logger.Info("streaming", "symbols", cfg.Binance.Symbols)

	for {
		select {
		case <-ctx.Done():
			return

		case err := <-client.Errors():
			logger.Error("connection lost", "error", err)
			return

		case msg, ok := <-client.Messages():
			if !ok {
				return
			}
			if *verbose {
				fmt.Println(string(msg.Data))
			}
			update, err := binance.DecodeTicker(msg.Data)
			if err != nil {
				logger.Debug("dropped frame", "error", err)
				continue
			}
			logger.Info("ticker",
				"symbol", update.Symbol,
				"price", update.Price,
				"event_time", update.EventTime.Format("15:04:05.000"),
			)
		}
	}
}
