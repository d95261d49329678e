// Package snapshot implements the in-memory latest-price table.
//
// The table holds at most one pending update per symbol between flush
// cycles. The receive loop upserts continuously; the flush scheduler
// atomically drains the table each interval. Upserts arriving while a
// drain is in progress land in the fresh table and surface in the next
// drain, so no update is lost or double-counted.
package snapshot
