package model

import (
	"time"

	"github.com/google/uuid"
)

// TickerUpdate is a single accepted price update from the exchange stream.
// Immutable once constructed.
type TickerUpdate struct {
	Symbol    string    // Exchange ticker id, upper-cased (e.g. "BTCUSDT")
	Price     string    // Last price as an exact decimal string (e.g. "50000.00")
	EventTime time.Time // Exchange event time, UTC
}

// StoredTickerPrice is one persisted price row. Rows are append-only:
// every flush cycle writes a new row per symbol, history accumulates.
type StoredTickerPrice struct {
	ID         uuid.UUID `json:"id"`
	Symbol     string    `json:"symbol"`
	Price      string    `json:"price"`
	EventTime  time.Time `json:"event_time"`
	ReceivedAt time.Time `json:"received_at"` // Assigned by the store at write time
}
