package binance

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"tickerfeed/internal/model"
)

// Decode rejection errors.
var (
	ErrNotJSON       = errors.New("payload is not valid JSON")
	ErrNoData        = errors.New("envelope has no data object")
	ErrMissingSymbol = errors.New("ticker data missing symbol")
	ErrMissingPrice  = errors.New("ticker data missing last price")
	ErrMissingTime   = errors.New("ticker data missing event time")
)

// streamEnvelope is the combined-stream wire format. Every frame wraps the
// per-stream payload in a "data" object.
type streamEnvelope struct {
	Stream string      `json:"stream"`
	Data   *tickerWire `json:"data"`
}

// tickerWire holds the Binance 24hr ticker fields we consume.
type tickerWire struct {
	Symbol    string `json:"s"` // e.g. "BTCUSDT"
	LastPrice string `json:"c"` // decimal string, e.g. "50000.00"
	EventTime int64  `json:"E"` // milliseconds since epoch, UTC
}

// DecodeTicker parses a raw combined-stream frame into a TickerUpdate.
//
// The price string is carried through verbatim; canonicalization happens at
// the storage boundary. The symbol is upper-cased. The event time is the
// epoch-millisecond value converted to UTC.
func DecodeTicker(raw []byte) (model.TickerUpdate, error) {
	var env streamEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return model.TickerUpdate{}, ErrNotJSON
	}
	if env.Data == nil {
		return model.TickerUpdate{}, ErrNoData
	}
	if env.Data.Symbol == "" {
		return model.TickerUpdate{}, ErrMissingSymbol
	}
	if env.Data.LastPrice == "" {
		return model.TickerUpdate{}, ErrMissingPrice
	}
	if env.Data.EventTime == 0 {
		return model.TickerUpdate{}, ErrMissingTime
	}

	return model.TickerUpdate{
		Symbol:    strings.ToUpper(env.Data.Symbol),
		Price:     env.Data.LastPrice,
		EventTime: time.UnixMilli(env.Data.EventTime).UTC(),
	}, nil
}
