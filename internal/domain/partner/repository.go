package partner

import "context"

// VendorRepository defines the interface for vendor master persistence
type VendorRepository interface {
	FindByCode(ctx context.Context, vendorCode string) (*Vendor, error)
	FindAll(ctx context.Context) ([]Vendor, error)
	Append(ctx context.Context, vendor *Vendor) error
	Update(ctx context.Context, vendor *Vendor) error
}

// DepartmentRepository defines the interface for department master persistence
type DepartmentRepository interface {
	FindByCode(ctx context.Context, departmentCode string) (*Department, error)
	FindAll(ctx context.Context) ([]Department, error)
	Append(ctx context.Context, department *Department) error
	Update(ctx context.Context, department *Department) error
}

// UnitQuantityRepository defines the interface for unit-of-measure persistence
type UnitQuantityRepository interface {
	FindByID(ctx context.Context, quantityID string) (*UnitQuantity, error)
	FindAll(ctx context.Context) ([]UnitQuantity, error)
	Append(ctx context.Context, quantity *UnitQuantity) error
	Update(ctx context.Context, quantity *UnitQuantity) error
}
