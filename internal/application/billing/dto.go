package billing

import (
	"time"

	"github.com/paperstock/backend/internal/domain/billing"
)

// CreateBillRequest is the input for recording a vendor invoice
type CreateBillRequest struct {
	BillNo      string  `json:"billNo" binding:"required"`
	BillDate    string  `json:"billDate" binding:"required,isodate"`
	ChallanNo   string  `json:"challanNo"`
	VendorCode  string  `json:"vendorCode" binding:"required"`
	ItemNumber  string  `json:"itemNumber" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"gt=0"`
	Unit        string  `json:"unit"`
	RatePerUnit float64 `json:"ratePerUnit" binding:"gte=0"`
	CgstPercent float64 `json:"cgstPercent" binding:"gte=0"`
	SgstPercent float64 `json:"sgstPercent" binding:"gte=0"`
}

// UpdateBillRequest replaces the four amount inputs of a bill; every derived
// amount is recomputed.
type UpdateBillRequest struct {
	Quantity    float64 `json:"quantity" binding:"gt=0"`
	RatePerUnit float64 `json:"ratePerUnit" binding:"gte=0"`
	CgstPercent float64 `json:"cgstPercent" binding:"gte=0"`
	SgstPercent float64 `json:"sgstPercent" binding:"gte=0"`
}

// BillResponse is the outward representation of a bill
type BillResponse struct {
	BillNo      string    `json:"billNo"`
	BillDate    string    `json:"billDate"`
	ChallanNo   string    `json:"challanNo"`
	VendorCode  string    `json:"vendorCode"`
	ItemNumber  string    `json:"itemNumber"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	RatePerUnit float64   `json:"ratePerUnit"`
	CgstPercent float64   `json:"cgstPercent"`
	SgstPercent float64   `json:"sgstPercent"`
	Amount      float64   `json:"amount"`
	CgstAmount  float64   `json:"cgstAmount"`
	SgstAmount  float64   `json:"sgstAmount"`
	TotalAmount float64   `json:"totalAmount"`
	IsPaid      bool      `json:"isPaid"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toBillResponse(b *billing.Bill) *BillResponse {
	return &BillResponse{
		BillNo:      b.BillNo,
		BillDate:    b.BillDate,
		ChallanNo:   b.ChallanNo,
		VendorCode:  b.VendorCode,
		ItemNumber:  b.ItemNumber,
		Quantity:    b.Quantity,
		Unit:        b.Unit,
		RatePerUnit: b.RatePerUnit,
		CgstPercent: b.CgstPercent,
		SgstPercent: b.SgstPercent,
		Amount:      b.Amount,
		CgstAmount:  b.CgstAmount,
		SgstAmount:  b.SgstAmount,
		TotalAmount: b.TotalAmount,
		IsPaid:      b.IsPaid,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// RecordPaymentRequest is the input for recording a vendor payment
type RecordPaymentRequest struct {
	VendorCode    string  `json:"vendorCode" binding:"required"`
	PaymentDate   string  `json:"paymentDate" binding:"required,isodate"`
	ModeOfPayment string  `json:"modeOfPayment"`
	PaymentAmount float64 `json:"paymentAmount" binding:"gt=0"`
}

// PaymentResponse is the outward representation of a vendor payment
type PaymentResponse struct {
	VendorCode    string    `json:"vendorCode"`
	PaymentDate   string    `json:"paymentDate"`
	ModeOfPayment string    `json:"modeOfPayment"`
	PaymentAmount float64   `json:"paymentAmount"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toPaymentResponse(p *billing.VendorPayment) *PaymentResponse {
	return &PaymentResponse{
		VendorCode:    p.VendorCode,
		PaymentDate:   p.PaymentDate,
		ModeOfPayment: p.ModeOfPayment,
		PaymentAmount: p.PaymentAmount,
		CreatedAt:     p.CreatedAt,
	}
}

// VendorLedgerResponse is the per-vendor account statement: all invoices,
// all payments, and the net balance.
type VendorLedgerResponse struct {
	VendorCode   string                `json:"vendorCode"`
	Bills        []BillResponse        `json:"bills"`
	Payments     []PaymentResponse     `json:"payments"`
	TotalInvoice float64               `json:"totalInvoice"`
	TotalPayment float64               `json:"totalPayment"`
	Balance      float64               `json:"balance"`
}
