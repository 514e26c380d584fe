package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/paperstock/backend/internal/application/partner"
)

// QuantityHandler handles unit-of-measure endpoints
type QuantityHandler struct {
	BaseHandler
	quantityService *partnerapp.QuantityService
}

// NewQuantityHandler creates a new QuantityHandler
func NewQuantityHandler(quantityService *partnerapp.QuantityService) *QuantityHandler {
	return &QuantityHandler{quantityService: quantityService}
}

// Create adds a new unit-of-measure record
func (h *QuantityHandler) Create(c *gin.Context) {
	var req partnerapp.CreateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	quantity, err := h.quantityService.Create(c.Request.Context(), getActor(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, quantity)
}

// Get returns a single unit of measure
func (h *QuantityHandler) Get(c *gin.Context) {
	quantity, err := h.quantityService.Get(c.Request.Context(), c.Param("quantityId"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, quantity)
}

// List returns all units of measure
func (h *QuantityHandler) List(c *gin.Context) {
	quantities, err := h.quantityService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, quantities)
}

// RegisterRoutes registers unit-of-measure routes
func (h *QuantityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	quantities := rg.Group("/quantities")
	{
		quantities.GET("", h.List)
		quantities.POST("", h.Create)
		quantities.GET("/:quantityId", h.Get)
	}
}
