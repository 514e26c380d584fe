package catalog

import (
	"github.com/paperstock/backend/internal/domain/shared"
)

// Item represents an inventory item in the item master.
// CurrentStock is only ever decreased, by item issues; receiving is tracked
// on purchase orders and challans and does not feed back into stock here.
type Item struct {
	shared.BaseEntity
	ItemNumber   string `json:"itemNumber"`
	ItemName     string `json:"itemName"`
	Description  string `json:"description"`
	Size         string `json:"size"`
	Color        string `json:"color"`
	CurrentStock int    `json:"currentStock"`
}

// NewItem creates a new item master record
func NewItem(itemNumber, itemName, description, size, color string, currentStock int) (*Item, error) {
	if itemNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Item number cannot be empty")
	}
	if itemName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Item name cannot be empty")
	}
	if currentStock < 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Current stock cannot be negative")
	}

	return &Item{
		BaseEntity:   shared.NewBaseEntity(),
		ItemNumber:   itemNumber,
		ItemName:     itemName,
		Description:  description,
		Size:         size,
		Color:        color,
		CurrentStock: currentStock,
	}, nil
}

// UpdateDetails replaces the descriptive fields of the item.
// Stock is not touched here; it only moves through Decrease.
func (i *Item) UpdateDetails(itemName, description, size, color string) error {
	if itemName == "" {
		return shared.NewDomainError("INVALID_INPUT", "Item name cannot be empty")
	}
	i.ItemName = itemName
	i.Description = description
	i.Size = size
	i.Color = color
	i.Touch()
	return nil
}

// HasStock reports whether quantity can be issued from current stock
func (i *Item) HasStock(quantity int) bool {
	return i.CurrentStock >= quantity
}

// Decrease reduces current stock by quantity.
// Quantity must be a positive integer; a zero or negative quantity is an
// input error, distinct from the insufficient-stock condition.
func (i *Item) Decrease(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Issue quantity must be a positive integer")
	}
	if i.CurrentStock < quantity {
		return shared.NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	}
	i.CurrentStock -= quantity
	i.Touch()
	return nil
}
