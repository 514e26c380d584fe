package trade

import "context"

// PurchaseOrderRepository defines the interface for purchase order persistence
type PurchaseOrderRepository interface {
	// FindByNumber finds a purchase order by its order number
	FindByNumber(ctx context.Context, orderNumber string) (*PurchaseOrder, error)

	// FindAll returns all purchase orders in insertion order
	FindAll(ctx context.Context) ([]PurchaseOrder, error)

	// Append adds a new order; fails if the order number already exists
	Append(ctx context.Context, order *PurchaseOrder) error

	// Update replaces the order identified by its order number
	Update(ctx context.Context, order *PurchaseOrder) error
}

// ChallanRepository defines the interface for challan persistence.
// Challans are append-only.
type ChallanRepository interface {
	FindByNumber(ctx context.Context, challanNo string) (*Challan, error)
	FindAll(ctx context.Context) ([]Challan, error)
	FindByItem(ctx context.Context, itemNumber string) ([]Challan, error)
	Append(ctx context.Context, challan *Challan) error
}

// ItemIssueRepository defines the interface for item issue persistence.
// Issues are append-only.
type ItemIssueRepository interface {
	FindByNumber(ctx context.Context, issueNo string) (*ItemIssue, error)
	FindAll(ctx context.Context) ([]ItemIssue, error)
	FindByItem(ctx context.Context, itemNumber string) ([]ItemIssue, error)
	Append(ctx context.Context, issue *ItemIssue) error
}
