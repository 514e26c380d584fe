// Package store provides the key-value persistence capability the
// repositories are built on: named keys holding JSON-serialized collections,
// whole-collection write grain, write-or-no-write on failure.
package store

import "context"

// KeyValueStore is the injected persistence boundary. Get decodes the value
// stored under key into out and reports whether the key existed; Set
// replaces the value under key atomically (a failed write must leave the
// previously stored value intact).
type KeyValueStore interface {
	Get(ctx context.Context, key string, out any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}
