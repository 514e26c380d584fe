package handler

import (
	"github.com/gin-gonic/gin"

	tradeapp "github.com/paperstock/backend/internal/application/trade"
)

// ItemIssueHandler handles stock issue endpoints
type ItemIssueHandler struct {
	BaseHandler
	flowService *tradeapp.DocumentFlowService
}

// NewItemIssueHandler creates a new ItemIssueHandler
func NewItemIssueHandler(flowService *tradeapp.DocumentFlowService) *ItemIssueHandler {
	return &ItemIssueHandler{flowService: flowService}
}

// Create issues stock to a department and decrements the item's stock
func (h *ItemIssueHandler) Create(c *gin.Context) {
	var req tradeapp.IssueItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	issue, err := h.flowService.IssueItem(c.Request.Context(), getActor(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, issue)
}

// List returns all item issues
func (h *ItemIssueHandler) List(c *gin.Context) {
	issues, err := h.flowService.ListIssues(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, issues)
}

// RegisterRoutes registers item issue routes. Issues are append-only.
func (h *ItemIssueHandler) RegisterRoutes(rg *gin.RouterGroup) {
	issues := rg.Group("/item-issues")
	{
		issues.GET("", h.List)
		issues.POST("", h.Create)
	}
}
