package handler

import (
	"github.com/gin-gonic/gin"

	billingapp "github.com/paperstock/backend/internal/application/billing"
	partnerapp "github.com/paperstock/backend/internal/application/partner"
)

// VendorHandler handles vendor master endpoints, including the per-vendor
// ledger.
type VendorHandler struct {
	BaseHandler
	vendorService *partnerapp.VendorService
	billService   *billingapp.BillService
}

// NewVendorHandler creates a new VendorHandler
func NewVendorHandler(vendorService *partnerapp.VendorService, billService *billingapp.BillService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService, billService: billService}
}

// Create adds a new vendor to the vendor master
func (h *VendorHandler) Create(c *gin.Context) {
	var req partnerapp.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	vendor, err := h.vendorService.Create(c.Request.Context(), getActor(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, vendor)
}

// Update replaces the descriptive fields of a vendor
func (h *VendorHandler) Update(c *gin.Context) {
	var req partnerapp.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	vendor, err := h.vendorService.Update(c.Request.Context(), getActor(c), c.Param("vendorCode"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, vendor)
}

// Get returns a single vendor
func (h *VendorHandler) Get(c *gin.Context) {
	vendor, err := h.vendorService.Get(c.Request.Context(), c.Param("vendorCode"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, vendor)
}

// List returns all vendors
func (h *VendorHandler) List(c *gin.Context) {
	vendors, err := h.vendorService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, vendors)
}

// Ledger returns the vendor's account statement
func (h *VendorHandler) Ledger(c *gin.Context) {
	ledger, err := h.billService.VendorLedger(c.Request.Context(), c.Param("vendorCode"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ledger)
}

// RegisterRoutes registers vendor master routes
func (h *VendorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vendors := rg.Group("/vendors")
	{
		vendors.GET("", h.List)
		vendors.POST("", h.Create)
		vendors.GET("/:vendorCode", h.Get)
		vendors.PUT("/:vendorCode", h.Update)
		vendors.GET("/:vendorCode/ledger", h.Ledger)
	}
}
