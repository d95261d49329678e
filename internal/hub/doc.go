// Package hub implements the in-process broadcast hub.
//
// The hub fans out flushed ticker updates to every connected subscriber.
// Each subscriber owns a bounded FIFO delivery channel; a subscriber that
// cannot keep up is dropped so it can never stall the flush scheduler or
// other subscribers. The hub is owned by the composition root and injected
// into the flush path and the websocket handler; there is no ambient
// global registry.
package hub
