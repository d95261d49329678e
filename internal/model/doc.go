// Package model defines shared data types used across the ticker feed service.
//
// Conventions:
//   - Prices: exact decimal strings as received from the exchange
//     (never float64; precision is preserved end to end)
//   - Timestamps: time.Time in UTC
//   - IDs: uuid.UUID for stored rows
package model
