package catalog

import (
	"time"

	"github.com/paperstock/backend/internal/domain/catalog"
)

// CreateItemRequest is the input for creating an item master record
type CreateItemRequest struct {
	ItemNumber   string `json:"itemNumber" binding:"required"`
	ItemName     string `json:"itemName" binding:"required"`
	Description  string `json:"description"`
	Size         string `json:"size"`
	Color        string `json:"color"`
	CurrentStock int    `json:"currentStock" binding:"gte=0"`
}

// UpdateItemRequest is the input for updating an item's descriptive fields
type UpdateItemRequest struct {
	ItemName    string `json:"itemName" binding:"required"`
	Description string `json:"description"`
	Size        string `json:"size"`
	Color       string `json:"color"`
}

// ItemResponse is the outward representation of an item
type ItemResponse struct {
	ItemNumber   string    `json:"itemNumber"`
	ItemName     string    `json:"itemName"`
	Description  string    `json:"description"`
	Size         string    `json:"size"`
	Color        string    `json:"color"`
	CurrentStock int       `json:"currentStock"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toItemResponse(item *catalog.Item) *ItemResponse {
	return &ItemResponse{
		ItemNumber:   item.ItemNumber,
		ItemName:     item.ItemName,
		Description:  item.Description,
		Size:         item.Size,
		Color:        item.Color,
		CurrentStock: item.CurrentStock,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}
