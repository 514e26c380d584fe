package handler

import (
	"github.com/gin-gonic/gin"

	billingapp "github.com/paperstock/backend/internal/application/billing"
)

// BillHandler handles vendor invoice and payment endpoints
type BillHandler struct {
	BaseHandler
	billService *billingapp.BillService
}

// NewBillHandler creates a new BillHandler
func NewBillHandler(billService *billingapp.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

// Create records a vendor invoice
func (h *BillHandler) Create(c *gin.Context) {
	var req billingapp.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), getActor(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, bill)
}

// Update replaces the amount inputs of a bill
func (h *BillHandler) Update(c *gin.Context) {
	var req billingapp.UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	bill, err := h.billService.UpdateBill(c.Request.Context(), getActor(c), c.Param("billNo"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bill)
}

// MarkPaid marks a bill as paid
func (h *BillHandler) MarkPaid(c *gin.Context) {
	bill, err := h.billService.MarkBillPaid(c.Request.Context(), getActor(c), c.Param("billNo"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bill)
}

// Get returns a single bill
func (h *BillHandler) Get(c *gin.Context) {
	bill, err := h.billService.GetBill(c.Request.Context(), c.Param("billNo"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bill)
}

// List returns all bills
func (h *BillHandler) List(c *gin.Context) {
	bills, err := h.billService.ListBills(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bills)
}

// RecordPayment records a vendor payment
func (h *BillHandler) RecordPayment(c *gin.Context) {
	var req billingapp.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	payment, err := h.billService.RecordPayment(c.Request.Context(), getActor(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, payment)
}

// ListPayments returns all vendor payments
func (h *BillHandler) ListPayments(c *gin.Context) {
	payments, err := h.billService.ListPayments(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payments)
}

// RegisterRoutes registers bill and payment routes
func (h *BillHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bills := rg.Group("/bills")
	{
		bills.GET("", h.List)
		bills.POST("", h.Create)
		bills.GET("/:billNo", h.Get)
		bills.PUT("/:billNo", h.Update)
		bills.POST("/:billNo/pay", h.MarkPaid)
	}

	payments := rg.Group("/vendor-payments")
	{
		payments.GET("", h.ListPayments)
		payments.POST("", h.RecordPayment)
	}
}
