// Package persistence implements the domain repository interfaces on top of
// the KeyValueStore boundary: one logical collection per entity type, each
// stored whole under its own key. Lookups are full scans by unique key and
// insertion order is the collection order.
package persistence

import (
	"context"

	"github.com/paperstock/backend/internal/domain/shared"
	"github.com/paperstock/backend/internal/infrastructure/store"
)

// collection manages one entity slice under a single store key. The write
// grain is the whole collection: every mutation loads, transforms in memory
// and persists the full slice back.
type collection[T any] struct {
	store store.KeyValueStore
	key   string
	keyOf func(*T) string
	seed  []T
}

func newCollection[T any](kv store.KeyValueStore, key string, keyOf func(*T) string, seed []T) collection[T] {
	return collection[T]{store: kv, key: key, keyOf: keyOf, seed: seed}
}

// load returns the stored collection, initializing the key from the seed
// data the first time it is read.
func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	var items []T
	found, err := c.store.Get(ctx, c.key, &items)
	if err != nil {
		return nil, persistenceError(err)
	}
	if !found {
		items = append([]T(nil), c.seed...)
		if err := c.store.Set(ctx, c.key, items); err != nil {
			return nil, persistenceError(err)
		}
	}
	return items, nil
}

func (c *collection[T]) save(ctx context.Context, items []T) error {
	if err := c.store.Set(ctx, c.key, items); err != nil {
		return persistenceError(err)
	}
	return nil
}

// find scans the collection for the entity with the given unique key
func (c *collection[T]) find(ctx context.Context, key string) (*T, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if c.keyOf(&items[i]) == key {
			item := items[i]
			return &item, nil
		}
	}
	return nil, shared.ErrNotFound
}

// filter returns the entities matching pred, preserving insertion order
func (c *collection[T]) filter(ctx context.Context, pred func(*T) bool) ([]T, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0)
	for i := range items {
		if pred(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out, nil
}

// append adds a new entity, rejecting duplicate unique keys
func (c *collection[T]) append(ctx context.Context, item *T) error {
	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	key := c.keyOf(item)
	for i := range items {
		if c.keyOf(&items[i]) == key {
			return shared.ErrAlreadyExists
		}
	}
	return c.save(ctx, append(items, *item))
}

// update replaces the stored entity with the same unique key
func (c *collection[T]) update(ctx context.Context, item *T) error {
	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	key := c.keyOf(item)
	for i := range items {
		if c.keyOf(&items[i]) == key {
			items[i] = *item
			return c.save(ctx, items)
		}
	}
	return shared.ErrNotFound
}

func persistenceError(err error) error {
	return shared.NewDomainError("PERSISTENCE", "Store operation failed: "+err.Error())
}
