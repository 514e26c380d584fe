package persistence

import (
	"context"

	"github.com/paperstock/backend/internal/domain/partner"
	"github.com/paperstock/backend/internal/infrastructure/store"
)

// Store keys for the partner master collections
const (
	VendorsKey     = "app_vendors"
	DepartmentsKey = "app_departments"
	QuantitiesKey  = "app_quantities"
)

// KVVendorRepository implements partner.VendorRepository over a KeyValueStore
type KVVendorRepository struct {
	col collection[partner.Vendor]
}

// NewKVVendorRepository creates a vendor repository seeded with the given vendors
func NewKVVendorRepository(kv store.KeyValueStore, seed []partner.Vendor) *KVVendorRepository {
	return &KVVendorRepository{
		col: newCollection(kv, VendorsKey, func(v *partner.Vendor) string { return v.VendorCode }, seed),
	}
}

// FindByCode finds a vendor by its vendor code
func (r *KVVendorRepository) FindByCode(ctx context.Context, vendorCode string) (*partner.Vendor, error) {
	return r.col.find(ctx, vendorCode)
}

// FindAll returns all vendors in insertion order
func (r *KVVendorRepository) FindAll(ctx context.Context) ([]partner.Vendor, error) {
	return r.col.load(ctx)
}

// Append adds a new vendor
func (r *KVVendorRepository) Append(ctx context.Context, vendor *partner.Vendor) error {
	return r.col.append(ctx, vendor)
}

// Update replaces an existing vendor
func (r *KVVendorRepository) Update(ctx context.Context, vendor *partner.Vendor) error {
	return r.col.update(ctx, vendor)
}

// KVDepartmentRepository implements partner.DepartmentRepository over a KeyValueStore
type KVDepartmentRepository struct {
	col collection[partner.Department]
}

// NewKVDepartmentRepository creates a department repository seeded with the given departments
func NewKVDepartmentRepository(kv store.KeyValueStore, seed []partner.Department) *KVDepartmentRepository {
	return &KVDepartmentRepository{
		col: newCollection(kv, DepartmentsKey, func(d *partner.Department) string { return d.DepartmentCode }, seed),
	}
}

// FindByCode finds a department by its department code
func (r *KVDepartmentRepository) FindByCode(ctx context.Context, departmentCode string) (*partner.Department, error) {
	return r.col.find(ctx, departmentCode)
}

// FindAll returns all departments in insertion order
func (r *KVDepartmentRepository) FindAll(ctx context.Context) ([]partner.Department, error) {
	return r.col.load(ctx)
}

// Append adds a new department
func (r *KVDepartmentRepository) Append(ctx context.Context, department *partner.Department) error {
	return r.col.append(ctx, department)
}

// Update replaces an existing department
func (r *KVDepartmentRepository) Update(ctx context.Context, department *partner.Department) error {
	return r.col.update(ctx, department)
}

// KVUnitQuantityRepository implements partner.UnitQuantityRepository over a KeyValueStore
type KVUnitQuantityRepository struct {
	col collection[partner.UnitQuantity]
}

// NewKVUnitQuantityRepository creates a unit-of-measure repository seeded with the given records
func NewKVUnitQuantityRepository(kv store.KeyValueStore, seed []partner.UnitQuantity) *KVUnitQuantityRepository {
	return &KVUnitQuantityRepository{
		col: newCollection(kv, QuantitiesKey, func(q *partner.UnitQuantity) string { return q.QuantityID }, seed),
	}
}

// FindByID finds a unit-of-measure record by id
func (r *KVUnitQuantityRepository) FindByID(ctx context.Context, quantityID string) (*partner.UnitQuantity, error) {
	return r.col.find(ctx, quantityID)
}

// FindAll returns all unit-of-measure records in insertion order
func (r *KVUnitQuantityRepository) FindAll(ctx context.Context) ([]partner.UnitQuantity, error) {
	return r.col.load(ctx)
}

// Append adds a new unit-of-measure record
func (r *KVUnitQuantityRepository) Append(ctx context.Context, quantity *partner.UnitQuantity) error {
	return r.col.append(ctx, quantity)
}

// Update replaces an existing unit-of-measure record
func (r *KVUnitQuantityRepository) Update(ctx context.Context, quantity *partner.UnitQuantity) error {
	return r.col.update(ctx, quantity)
}

var (
	_ partner.VendorRepository       = (*KVVendorRepository)(nil)
	_ partner.DepartmentRepository   = (*KVDepartmentRepository)(nil)
	_ partner.UnitQuantityRepository = (*KVUnitQuantityRepository)(nil)
)
