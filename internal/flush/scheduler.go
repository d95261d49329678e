package flush

import (
	"context"
	"log/slog"
	"time"

	"tickerfeed/internal/hub"
	"tickerfeed/internal/snapshot"
	"tickerfeed/internal/store"
)

// DefaultInterval is the flush cycle period.
const DefaultInterval = 60 * time.Second

// Scheduler drains the snapshot table on a fixed interval and fans each
// drained update out to the store and the hub.
type Scheduler struct {
	interval time.Duration
	table    *snapshot.Table
	store    store.TickerStore
	hub      *hub.Hub
	logger   *slog.Logger
}

// NewScheduler creates a scheduler. A zero interval falls back to the
// default.
func NewScheduler(interval time.Duration, table *snapshot.Table, st store.TickerStore, h *hub.Hub, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		interval: interval,
		table:    table,
		store:    st,
		hub:      h,
		logger:   logger,
	}
}

// Run fires flush cycles until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.flushOnce(ctx)
		}
	}
}

// flushOnce drains the table and processes every entry. Per-symbol
// persistence failures are logged and do not stop the cycle; the
// broadcast is attempted either way. Drain order across symbols is
// unspecified.
func (s *Scheduler) flushOnce(ctx context.Context) {
	entries := s.table.Drain()
	if len(entries) == 0 {
		return
	}

	start := time.Now()
	failed := 0

	for symbol, update := range entries {
		if _, err := s.store.Insert(ctx, update); err != nil {
			failed++
			s.logger.Error("persist failed",
				"symbol", symbol,
				"price", update.Price,
				"error", err,
			)
		}
		s.hub.Publish(update)
	}

	s.logger.Info("flush cycle complete",
		"symbols", len(entries),
		"failed", failed,
		"duration", time.Since(start),
	)
}
