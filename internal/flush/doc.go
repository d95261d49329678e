// Package flush implements the periodic flush scheduler.
//
// Each cycle drains the snapshot table and, per symbol, writes one
// append-only row through the persistence port and publishes the same
// update to the broadcast hub. A failed write is logged and skipped; it
// never aborts the cycle, and the broadcast for that symbol still happens
// (observability is favored over strict consistency; see DESIGN.md).
package flush
