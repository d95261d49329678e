// Package binance implements the wire-level pieces of the Binance
// combined-stream integration:
//
//   - DecodeTicker parses a raw stream frame into a model.TickerUpdate
//   - StreamURL builds the combined-stream subscription URL for a
//     configured symbol list
//
// Decoding is a pure function with no I/O. Malformed or incomplete frames
// are rejected with an error, never a panic; callers drop rejected frames.
package binance
