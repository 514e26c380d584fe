package persistence

import (
	"context"

	"github.com/paperstock/backend/internal/domain/catalog"
	"github.com/paperstock/backend/internal/infrastructure/store"
)

// ItemsKey is the store key for the item master collection
const ItemsKey = "app_items"

// KVItemRepository implements catalog.ItemRepository over a KeyValueStore
type KVItemRepository struct {
	col collection[catalog.Item]
}

// NewKVItemRepository creates an item repository seeded with the given items
func NewKVItemRepository(kv store.KeyValueStore, seed []catalog.Item) *KVItemRepository {
	return &KVItemRepository{
		col: newCollection(kv, ItemsKey, func(i *catalog.Item) string { return i.ItemNumber }, seed),
	}
}

// FindByNumber finds an item by its item number
func (r *KVItemRepository) FindByNumber(ctx context.Context, itemNumber string) (*catalog.Item, error) {
	return r.col.find(ctx, itemNumber)
}

// FindAll returns all items in insertion order
func (r *KVItemRepository) FindAll(ctx context.Context) ([]catalog.Item, error) {
	return r.col.load(ctx)
}

// Append adds a new item
func (r *KVItemRepository) Append(ctx context.Context, item *catalog.Item) error {
	return r.col.append(ctx, item)
}

// Update replaces an existing item
func (r *KVItemRepository) Update(ctx context.Context, item *catalog.Item) error {
	return r.col.update(ctx, item)
}

var _ catalog.ItemRepository = (*KVItemRepository)(nil)
