package handler

import (
	"github.com/gin-gonic/gin"

	reportapp "github.com/paperstock/backend/internal/application/report"
)

// ReportHandler handles register and ledger endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// OrderRegister returns the purchase order register
func (h *ReportHandler) OrderRegister(c *gin.Context) {
	rows, err := h.reportService.OrderRegister(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rows)
}

// ChallanRegister returns the goods receipt register
func (h *ReportHandler) ChallanRegister(c *gin.Context) {
	rows, err := h.reportService.ChallanRegister(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rows)
}

// BillRegister returns the invoice register
func (h *ReportHandler) BillRegister(c *gin.Context) {
	rows, err := h.reportService.BillRegister(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rows)
}

// ItemLedger returns the per-item movement ledger
func (h *ReportHandler) ItemLedger(c *gin.Context) {
	ledger, err := h.reportService.ItemLedger(c.Request.Context(), c.Param("itemNumber"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ledger)
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/orders", h.OrderRegister)
		reports.GET("/challans", h.ChallanRegister)
		reports.GET("/bills", h.BillRegister)
		reports.GET("/items/:itemNumber/ledger", h.ItemLedger)
	}
}
