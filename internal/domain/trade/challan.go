package trade

import "github.com/paperstock/backend/internal/domain/shared"

// Challan is a goods receipt note. Immutable once created: there is no edit
// or delete flow for challans. ReceivedQuantity is the quantity received in
// this receipt event, distinct from the order's cumulative received quantity.
// OrderNumber is optional; a challan without one is recorded standalone and
// reconciles no order (the direct order-challan-invoice flow).
type Challan struct {
	shared.BaseEntity
	ChallanNo        string `json:"challanNo"`
	ChallanDate      string `json:"challanDate"`
	OrderNumber      string `json:"orderNumber,omitempty"`
	VendorCode       string `json:"vendorCode"`
	ItemNumber       string `json:"itemNumber"`
	ReceivedQuantity int    `json:"receivedQuantity"`
	Unit             string `json:"unit"`
}

// NewChallan creates a new goods receipt record
func NewChallan(challanNo, challanDate, orderNumber, vendorCode, itemNumber string, receivedQuantity int, unit string) (*Challan, error) {
	if challanNo == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Challan number cannot be empty")
	}
	if challanDate == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Challan date cannot be empty")
	}
	if vendorCode == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Vendor code cannot be empty")
	}
	if itemNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Item number cannot be empty")
	}
	if receivedQuantity <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Received quantity must be positive")
	}

	return &Challan{
		BaseEntity:       shared.NewBaseEntity(),
		ChallanNo:        challanNo,
		ChallanDate:      challanDate,
		OrderNumber:      orderNumber,
		VendorCode:       vendorCode,
		ItemNumber:       itemNumber,
		ReceivedQuantity: receivedQuantity,
		Unit:             unit,
	}, nil
}

// HasOrder reports whether this challan reconciles a purchase order
func (c *Challan) HasOrder() bool {
	return c.OrderNumber != ""
}
