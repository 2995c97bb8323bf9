// Package storage defines the catalog storage interfaces and record types
// shared by the loot engine and its SQLite implementation.
package storage
