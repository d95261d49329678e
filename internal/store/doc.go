// Package store implements the persistence port for ticker prices.
//
// Writes are append-only: each flush cycle inserts a new row per symbol
// and nothing is ever updated or deleted. Prices are canonicalized to an
// exact decimal string at the storage boundary and stored as NUMERIC.
package store
