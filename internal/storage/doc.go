// Package storage persists show snapshots as JSON files, one per category,
// so runs can report only the shows added since the last check.
package storage
