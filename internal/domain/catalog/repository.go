package catalog

import "context"

// ItemRepository defines the interface for item master persistence
type ItemRepository interface {
	// FindByNumber finds an item by its item number
	FindByNumber(ctx context.Context, itemNumber string) (*Item, error)

	// FindAll returns all items in insertion order
	FindAll(ctx context.Context) ([]Item, error)

	// Append adds a new item; fails if the item number already exists
	Append(ctx context.Context, item *Item) error

	// Update replaces the item identified by its item number
	Update(ctx context.Context, item *Item) error
}
