package handler

import (
	"github.com/gin-gonic/gin"

	tradeapp "github.com/paperstock/backend/internal/application/trade"
)

// ChallanHandler handles goods receipt endpoints
type ChallanHandler struct {
	BaseHandler
	flowService *tradeapp.DocumentFlowService
}

// NewChallanHandler creates a new ChallanHandler
func NewChallanHandler(flowService *tradeapp.DocumentFlowService) *ChallanHandler {
	return &ChallanHandler{flowService: flowService}
}

// Receive records a goods receipt, reconciling the named order when present
func (h *ChallanHandler) Receive(c *gin.Context) {
	var req tradeapp.ReceiveGoodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	challan, err := h.flowService.ReceiveGoods(c.Request.Context(), getActor(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, challan)
}

// Get returns a single challan
func (h *ChallanHandler) Get(c *gin.Context) {
	challan, err := h.flowService.GetChallan(c.Request.Context(), c.Param("challanNo"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, challan)
}

// List returns all challans
func (h *ChallanHandler) List(c *gin.Context) {
	challans, err := h.flowService.ListChallans(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, challans)
}

// RegisterRoutes registers challan routes. Challans are append-only; there
// is no update or delete.
func (h *ChallanHandler) RegisterRoutes(rg *gin.RouterGroup) {
	challans := rg.Group("/challans")
	{
		challans.GET("", h.List)
		challans.POST("", h.Receive)
		challans.GET("/:challanNo", h.Get)
	}
}
