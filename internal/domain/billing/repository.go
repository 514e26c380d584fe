package billing

import "context"

// BillRepository defines the interface for bill persistence
type BillRepository interface {
	FindByNumber(ctx context.Context, billNo string) (*Bill, error)
	FindAll(ctx context.Context) ([]Bill, error)
	FindByVendor(ctx context.Context, vendorCode string) ([]Bill, error)
	Append(ctx context.Context, bill *Bill) error
	Update(ctx context.Context, bill *Bill) error
}

// VendorPaymentRepository defines the interface for vendor payment
// persistence. Payments are append-only.
type VendorPaymentRepository interface {
	FindAll(ctx context.Context) ([]VendorPayment, error)
	FindByVendor(ctx context.Context, vendorCode string) ([]VendorPayment, error)
	Append(ctx context.Context, payment *VendorPayment) error
}
