// Package connection implements the Connection Manager component.
//
// It maintains one multiplexed WebSocket connection to the exchange
// combined-stream endpoint:
//   - Client wraps a single gorilla/websocket connection with channel
//     based delivery and ping/pong keepalive
//   - Listener owns the connect / stream / reconnect lifecycle, decodes
//     each frame and upserts accepted updates into the snapshot table
//
// Network faults are never fatal: the listener reconnects with a fixed
// backoff until its context is cancelled.
package connection
