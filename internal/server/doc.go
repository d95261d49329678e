// Package server exposes the read-only query surface and the live
// subscriber endpoint.
//
// Routes:
//   - GET /api/tickers          latest stored price per symbol
//   - GET /api/tickers/history  stored history, filterable by symbol and
//     time range, newest first
//   - GET /api/health           database and hub health
//   - GET /ws                   websocket upgrade; the client becomes a
//     broadcast hub subscriber and receives one JSON object per flushed
//     update, in publish order
package server
