package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/paperstock/backend/internal/application/catalog"
)

// ItemHandler handles item master endpoints
type ItemHandler struct {
	BaseHandler
	itemService *catalogapp.ItemService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService *catalogapp.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// Create adds a new item to the item master
func (h *ItemHandler) Create(c *gin.Context) {
	var req catalogapp.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), getActor(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, item)
}

// Update replaces the descriptive fields of an item
func (h *ItemHandler) Update(c *gin.Context) {
	var req catalogapp.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), getActor(c), c.Param("itemNumber"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// Get returns a single item
func (h *ItemHandler) Get(c *gin.Context) {
	item, err := h.itemService.Get(c.Request.Context(), c.Param("itemNumber"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// List returns all items
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.itemService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}

// RegisterRoutes registers item master routes
func (h *ItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/items")
	{
		items.GET("", h.List)
		items.POST("", h.Create)
		items.GET("/:itemNumber", h.Get)
		items.PUT("/:itemNumber", h.Update)
	}
}
