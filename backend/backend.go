// Package backend implements search backends for the tool catalog: the
// contract they share, a registry for swapping them at runtime, and two
// implementations: the in-process ranked searcher and a bleve-backed
// full-text index.
package backend

import (
	"context"
	"errors"
)

// Common errors for backend operations.
var (
	ErrBackendNotFound = errors.New("backend not found")
	ErrBackendExists   = errors.New("backend already registered")
)

// Searcher is a source of tool matches for a query.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: Search must honor cancellation and return ctx.Err() when canceled.
// - Results: ordered tool IDs, most relevant first, without duplicates.
type Searcher interface {
	// Name returns the unique instance name for this searcher.
	Name() string

	// Search returns the IDs of catalog tools matching query, up to
	// limit. A limit <= 0 means unlimited.
	Search(ctx context.Context, query string, limit int) ([]string, error)
}
