package billing

import "github.com/paperstock/backend/internal/domain/shared"

// VendorPayment is an append-only payment record. It carries the vendor it
// was paid to but is deliberately not linked to a specific bill; the ledger
// nets payments against invoice totals per vendor.
type VendorPayment struct {
	shared.BaseEntity
	VendorCode    string  `json:"vendorCode"`
	PaymentDate   string  `json:"paymentDate"`
	ModeOfPayment string  `json:"modeOfPayment"`
	PaymentAmount float64 `json:"paymentAmount"`
}

// NewVendorPayment creates a new vendor payment record
func NewVendorPayment(vendorCode, paymentDate, modeOfPayment string, paymentAmount float64) (*VendorPayment, error) {
	if vendorCode == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Vendor code cannot be empty")
	}
	if paymentDate == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Payment date cannot be empty")
	}
	if paymentAmount <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Payment amount must be positive")
	}

	return &VendorPayment{
		BaseEntity:    shared.NewBaseEntity(),
		VendorCode:    vendorCode,
		PaymentDate:   paymentDate,
		ModeOfPayment: modeOfPayment,
		PaymentAmount: paymentAmount,
	}, nil
}
