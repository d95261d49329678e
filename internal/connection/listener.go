package connection

import (
	"context"
	"log/slog"
	"time"

	"tickerfeed/internal/binance"
	"tickerfeed/internal/snapshot"
)

// DefaultReconnectDelay is the fixed wait between reconnect attempts.
const DefaultReconnectDelay = 5 * time.Second

// ListenerConfig configures the stream listener.
type ListenerConfig struct {
	BaseURL        string        // Combined-stream endpoint
	Symbols        []string      // Symbols to subscribe, any case
	ReconnectDelay time.Duration // Fixed backoff between reconnects
	PingTimeout    time.Duration
	WriteTimeout   time.Duration
	BufferSize     int
}

// Listener owns the streaming connection lifecycle: it connects to the
// combined stream for the configured symbols, decodes each frame and
// upserts accepted updates into the snapshot table. Any connection fault
// triggers a reconnect after a fixed delay; only context cancellation
// stops it.
type Listener struct {
	cfg    ListenerConfig
	table  *snapshot.Table
	logger *slog.Logger

	// newClient is replaceable in tests.
	newClient func(ClientConfig, *slog.Logger) Client
}

// NewListener creates a listener writing into the given snapshot table.
func NewListener(cfg ListenerConfig, table *snapshot.Table, logger *slog.Logger) *Listener {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ReconnectDelay == 0 {
		cfg.ReconnectDelay = DefaultReconnectDelay
	}
	if cfg.PingTimeout == 0 {
		cfg.PingTimeout = DefaultClientConfig().PingTimeout
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = DefaultClientConfig().WriteTimeout
	}
	if cfg.BufferSize == 0 {
		cfg.BufferSize = DefaultClientConfig().BufferSize
	}
	return &Listener{
		cfg:       cfg,
		table:     table,
		logger:    logger,
		newClient: NewClient,
	}
}

// Run connects and streams until ctx is cancelled. It always returns nil:
// network faults are recovered locally and are never fatal.
func (l *Listener) Run(ctx context.Context) error {
	url := binance.StreamURL(l.cfg.BaseURL, l.cfg.Symbols)
	clientCfg := ClientConfig{
		URL:          url,
		PingTimeout:  l.cfg.PingTimeout,
		WriteTimeout: l.cfg.WriteTimeout,
		BufferSize:   l.cfg.BufferSize,
	}

	for {
		if ctx.Err() != nil {
			return nil
		}

		client := l.newClient(clientCfg, l.logger)
		if err := client.Connect(ctx); err != nil {
			l.logger.Warn("connect failed", "url", url, "error", err)
		} else {
			l.logger.Info("streaming", "url", url, "symbols", len(l.cfg.Symbols))
			l.consume(ctx, client)
		}
		client.Close()

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(l.cfg.ReconnectDelay):
		}
	}
}

// consume drains the client until the connection drops or ctx is
// cancelled. Rejected frames are dropped per-message and never break the
// receive loop.
func (l *Listener) consume(ctx context.Context, client Client) {
	for {
		select {
		case <-ctx.Done():
			return

		case err := <-client.Errors():
			l.logger.Warn("connection lost, will reconnect",
				"error", err,
				"delay", l.cfg.ReconnectDelay,
			)
			return

		case msg, ok := <-client.Messages():
			if !ok {
				return
			}
			update, err := binance.DecodeTicker(msg.Data)
			if err != nil {
				l.logger.Debug("dropping frame", "error", err)
				continue
			}
			l.table.Upsert(update)
		}
	}
}
