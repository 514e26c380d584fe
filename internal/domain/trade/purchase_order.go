package trade

import (
	"github.com/paperstock/backend/internal/domain/shared"
)

// OrderStatus represents the receiving status of a purchase order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusPartial   OrderStatus = "Partial"
	OrderStatusCompleted OrderStatus = "Completed"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPartial, OrderStatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// StatusFor derives the order status from received vs ordered quantity.
// Status is a pure function of the two quantities and is never stored
// independently of them.
func StatusFor(received, ordered int) OrderStatus {
	switch {
	case received >= ordered && ordered > 0:
		return OrderStatusCompleted
	case received > 0:
		return OrderStatusPartial
	default:
		return OrderStatusPending
	}
}

// PurchaseOrder represents a purchase order for a single item.
// ReceivedQuantity is monotonically non-decreasing and only grows through
// challan creation; Status always equals StatusFor(received, ordered).
type PurchaseOrder struct {
	shared.BaseEntity
	OrderNumber      string      `json:"orderNumber"`
	OrderDate        string      `json:"orderDate"`
	VendorCode       string      `json:"vendorCode"`
	ItemNumber       string      `json:"itemNumber"`
	OrderedQuantity  int         `json:"orderedQuantity"`
	ReceivedQuantity int         `json:"receivedQuantity"`
	Unit             string      `json:"unit"`
	Status           OrderStatus `json:"status"`
}

// NewPurchaseOrder creates a new purchase order in Pending status
func NewPurchaseOrder(orderNumber, orderDate, vendorCode, itemNumber string, orderedQuantity int, unit string) (*PurchaseOrder, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order number cannot be empty")
	}
	if orderDate == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order date cannot be empty")
	}
	if vendorCode == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Vendor code cannot be empty")
	}
	if itemNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Item number cannot be empty")
	}
	if orderedQuantity <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Ordered quantity must be positive")
	}

	return &PurchaseOrder{
		BaseEntity:       shared.NewBaseEntity(),
		OrderNumber:      orderNumber,
		OrderDate:        orderDate,
		VendorCode:       vendorCode,
		ItemNumber:       itemNumber,
		OrderedQuantity:  orderedQuantity,
		ReceivedQuantity: 0,
		Unit:             unit,
		Status:           OrderStatusPending,
	}, nil
}

// AddReceipt accumulates a challan's received quantity onto the order and
// recomputes the status. Over-receipt is permitted: the literal received
// quantity is preserved and the status clamps to Completed.
func (o *PurchaseOrder) AddReceipt(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Receive quantity must be positive")
	}
	o.ReceivedQuantity += quantity
	o.Status = StatusFor(o.ReceivedQuantity, o.OrderedQuantity)
	o.Touch()
	return nil
}

// RemainingQuantity returns the quantity still to be received, floored at zero
func (o *PurchaseOrder) RemainingQuantity() int {
	remaining := o.OrderedQuantity - o.ReceivedQuantity
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsCompleted returns true if the order has been fully received
func (o *PurchaseOrder) IsCompleted() bool {
	return o.Status == OrderStatusCompleted
}

// CanReceive returns true if the order can still receive goods.
// The entry form only offers non-completed orders; the engine itself
// does not rely on this.
func (o *PurchaseOrder) CanReceive() bool {
	return !o.IsCompleted()
}
