package persistence

import (
	"context"

	"github.com/paperstock/backend/internal/domain/trade"
	"github.com/paperstock/backend/internal/infrastructure/store"
)

// Store keys for the trade document collections
const (
	PurchaseOrdersKey = "app_purchase_orders"
	ChallansKey       = "app_challans"
	ItemIssuesKey     = "app_item_issues"
)

// KVPurchaseOrderRepository implements trade.PurchaseOrderRepository over a KeyValueStore
type KVPurchaseOrderRepository struct {
	col collection[trade.PurchaseOrder]
}

// NewKVPurchaseOrderRepository creates a purchase order repository seeded with the given orders
func NewKVPurchaseOrderRepository(kv store.KeyValueStore, seed []trade.PurchaseOrder) *KVPurchaseOrderRepository {
	return &KVPurchaseOrderRepository{
		col: newCollection(kv, PurchaseOrdersKey, func(o *trade.PurchaseOrder) string { return o.OrderNumber }, seed),
	}
}

// FindByNumber finds a purchase order by its order number
func (r *KVPurchaseOrderRepository) FindByNumber(ctx context.Context, orderNumber string) (*trade.PurchaseOrder, error) {
	return r.col.find(ctx, orderNumber)
}

// FindAll returns all purchase orders in insertion order
func (r *KVPurchaseOrderRepository) FindAll(ctx context.Context) ([]trade.PurchaseOrder, error) {
	return r.col.load(ctx)
}

// Append adds a new purchase order
func (r *KVPurchaseOrderRepository) Append(ctx context.Context, order *trade.PurchaseOrder) error {
	return r.col.append(ctx, order)
}

// Update replaces an existing purchase order
func (r *KVPurchaseOrderRepository) Update(ctx context.Context, order *trade.PurchaseOrder) error {
	return r.col.update(ctx, order)
}

// KVChallanRepository implements trade.ChallanRepository over a KeyValueStore
type KVChallanRepository struct {
	col collection[trade.Challan]
}

// NewKVChallanRepository creates a challan repository seeded with the given challans
func NewKVChallanRepository(kv store.KeyValueStore, seed []trade.Challan) *KVChallanRepository {
	return &KVChallanRepository{
		col: newCollection(kv, ChallansKey, func(c *trade.Challan) string { return c.ChallanNo }, seed),
	}
}

// FindByNumber finds a challan by its challan number
func (r *KVChallanRepository) FindByNumber(ctx context.Context, challanNo string) (*trade.Challan, error) {
	return r.col.find(ctx, challanNo)
}

// FindAll returns all challans in insertion order
func (r *KVChallanRepository) FindAll(ctx context.Context) ([]trade.Challan, error) {
	return r.col.load(ctx)
}

// FindByItem returns the challans for one item in insertion order
func (r *KVChallanRepository) FindByItem(ctx context.Context, itemNumber string) ([]trade.Challan, error) {
	return r.col.filter(ctx, func(c *trade.Challan) bool { return c.ItemNumber == itemNumber })
}

// Append adds a new challan
func (r *KVChallanRepository) Append(ctx context.Context, challan *trade.Challan) error {
	return r.col.append(ctx, challan)
}

// KVItemIssueRepository implements trade.ItemIssueRepository over a KeyValueStore
type KVItemIssueRepository struct {
	col collection[trade.ItemIssue]
}

// NewKVItemIssueRepository creates an item issue repository seeded with the given issues
func NewKVItemIssueRepository(kv store.KeyValueStore, seed []trade.ItemIssue) *KVItemIssueRepository {
	return &KVItemIssueRepository{
		col: newCollection(kv, ItemIssuesKey, func(i *trade.ItemIssue) string { return i.IssueNo }, seed),
	}
}

// FindByNumber finds an issue by its issue number
func (r *KVItemIssueRepository) FindByNumber(ctx context.Context, issueNo string) (*trade.ItemIssue, error) {
	return r.col.find(ctx, issueNo)
}

// FindAll returns all issues in insertion order
func (r *KVItemIssueRepository) FindAll(ctx context.Context) ([]trade.ItemIssue, error) {
	return r.col.load(ctx)
}

// FindByItem returns the issues for one item in insertion order
func (r *KVItemIssueRepository) FindByItem(ctx context.Context, itemNumber string) ([]trade.ItemIssue, error) {
	return r.col.filter(ctx, func(i *trade.ItemIssue) bool { return i.ItemNumber == itemNumber })
}

// Append adds a new issue
func (r *KVItemIssueRepository) Append(ctx context.Context, issue *trade.ItemIssue) error {
	return r.col.append(ctx, issue)
}

var (
	_ trade.PurchaseOrderRepository = (*KVPurchaseOrderRepository)(nil)
	_ trade.ChallanRepository       = (*KVChallanRepository)(nil)
	_ trade.ItemIssueRepository     = (*KVItemIssueRepository)(nil)
)
