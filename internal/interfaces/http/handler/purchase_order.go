package handler

import (
	"github.com/gin-gonic/gin"

	tradeapp "github.com/paperstock/backend/internal/application/trade"
)

// PurchaseOrderHandler handles purchase order endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	flowService *tradeapp.DocumentFlowService
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler
func NewPurchaseOrderHandler(flowService *tradeapp.DocumentFlowService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{flowService: flowService}
}

// Create records a new purchase order
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var req tradeapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	order, err := h.flowService.CreateOrder(c.Request.Context(), getActor(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// Get returns a single purchase order
func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	order, err := h.flowService.GetOrder(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// List returns all purchase orders; ?open=true narrows to orders that can
// still receive goods.
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	var (
		orders []tradeapp.OrderResponse
		err    error
	)
	if c.Query("open") == "true" {
		orders, err = h.flowService.ListOpenOrders(c.Request.Context())
	} else {
		orders, err = h.flowService.ListOrders(c.Request.Context())
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orders)
}

// RegisterRoutes registers purchase order routes
func (h *PurchaseOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/purchase-orders")
	{
		orders.GET("", h.List)
		orders.POST("", h.Create)
		orders.GET("/:orderNumber", h.Get)
	}
}
