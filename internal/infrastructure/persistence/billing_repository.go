package persistence

import (
	"context"

	"github.com/paperstock/backend/internal/domain/billing"
	"github.com/paperstock/backend/internal/infrastructure/store"
)

// Store keys for the billing collections
const (
	BillsKey          = "app_bills"
	VendorPaymentsKey = "app_vendor_payments"
)

// KVBillRepository implements billing.BillRepository over a KeyValueStore
type KVBillRepository struct {
	col collection[billing.Bill]
}

// NewKVBillRepository creates a bill repository seeded with the given bills
func NewKVBillRepository(kv store.KeyValueStore, seed []billing.Bill) *KVBillRepository {
	return &KVBillRepository{
		col: newCollection(kv, BillsKey, func(b *billing.Bill) string { return b.BillNo }, seed),
	}
}

// FindByNumber finds a bill by its bill number
func (r *KVBillRepository) FindByNumber(ctx context.Context, billNo string) (*billing.Bill, error) {
	return r.col.find(ctx, billNo)
}

// FindAll returns all bills in insertion order
func (r *KVBillRepository) FindAll(ctx context.Context) ([]billing.Bill, error) {
	return r.col.load(ctx)
}

// FindByVendor returns the bills for one vendor in insertion order
func (r *KVBillRepository) FindByVendor(ctx context.Context, vendorCode string) ([]billing.Bill, error) {
	return r.col.filter(ctx, func(b *billing.Bill) bool { return b.VendorCode == vendorCode })
}

// Append adds a new bill
func (r *KVBillRepository) Append(ctx context.Context, bill *billing.Bill) error {
	return r.col.append(ctx, bill)
}

// Update replaces an existing bill
func (r *KVBillRepository) Update(ctx context.Context, bill *billing.Bill) error {
	return r.col.update(ctx, bill)
}

// KVVendorPaymentRepository implements billing.VendorPaymentRepository over a
// KeyValueStore. Payments have no unique business key; their generated
// timestamps keep records distinct and the collection is append-only.
type KVVendorPaymentRepository struct {
	kv   store.KeyValueStore
	seed []billing.VendorPayment
}

// NewKVVendorPaymentRepository creates a vendor payment repository
func NewKVVendorPaymentRepository(kv store.KeyValueStore, seed []billing.VendorPayment) *KVVendorPaymentRepository {
	return &KVVendorPaymentRepository{kv: kv, seed: seed}
}

func (r *KVVendorPaymentRepository) load(ctx context.Context) ([]billing.VendorPayment, error) {
	var payments []billing.VendorPayment
	found, err := r.kv.Get(ctx, VendorPaymentsKey, &payments)
	if err != nil {
		return nil, persistenceError(err)
	}
	if !found {
		payments = append([]billing.VendorPayment(nil), r.seed...)
		if err := r.kv.Set(ctx, VendorPaymentsKey, payments); err != nil {
			return nil, persistenceError(err)
		}
	}
	return payments, nil
}

// FindAll returns all payments in insertion order
func (r *KVVendorPaymentRepository) FindAll(ctx context.Context) ([]billing.VendorPayment, error) {
	return r.load(ctx)
}

// FindByVendor returns the payments for one vendor in insertion order
func (r *KVVendorPaymentRepository) FindByVendor(ctx context.Context, vendorCode string) ([]billing.VendorPayment, error) {
	payments, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]billing.VendorPayment, 0)
	for _, p := range payments {
		if p.VendorCode == vendorCode {
			out = append(out, p)
		}
	}
	return out, nil
}

// Append adds a new payment record
func (r *KVVendorPaymentRepository) Append(ctx context.Context, payment *billing.VendorPayment) error {
	payments, err := r.load(ctx)
	if err != nil {
		return err
	}
	if err := r.kv.Set(ctx, VendorPaymentsKey, append(payments, *payment)); err != nil {
		return persistenceError(err)
	}
	return nil
}

var (
	_ billing.BillRepository          = (*KVBillRepository)(nil)
	_ billing.VendorPaymentRepository = (*KVVendorPaymentRepository)(nil)
)
