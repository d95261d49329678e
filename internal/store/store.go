package store

import (
	"context"
	"time"

	"tickerfeed/internal/model"
)

// Filter narrows a history query. Zero values mean "no constraint".
type Filter struct {
	Symbol string    // case-insensitive match
	Start  time.Time // inclusive lower bound on event_time
	End    time.Time // inclusive upper bound on event_time
}

// TickerStore is the persistence port used by the flush scheduler and the
// query surface.
type TickerStore interface {
	// Insert appends one row and returns it with the server-assigned
	// received_at timestamp and generated id.
	Insert(ctx context.Context, u model.TickerUpdate) (model.StoredTickerPrice, error)

	// Latest returns the most recent row per symbol, newest first. A
	// non-empty symbol restricts the result to that symbol.
	Latest(ctx context.Context, symbol string) ([]model.StoredTickerPrice, error)

	// History returns all rows matching the filter, newest first.
	History(ctx context.Context, f Filter) ([]model.StoredTickerPrice, error)
}
