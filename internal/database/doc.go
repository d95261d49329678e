// Package database provides PostgreSQL connection pool management for the
// ticker feed service. The service keeps a single append-only table of
// ticker price rows; there is no second database.
package database
