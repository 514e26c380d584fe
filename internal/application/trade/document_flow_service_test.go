package trade

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appaudit "github.com/paperstock/backend/internal/application/audit"
	"github.com/paperstock/backend/internal/domain/audit"
	"github.com/paperstock/backend/internal/domain/catalog"
	"github.com/paperstock/backend/internal/domain/partner"
	"github.com/paperstock/backend/internal/domain/shared"
	"github.com/paperstock/backend/internal/domain/trade"
	"github.com/paperstock/backend/internal/infrastructure/persistence"
	"github.com/paperstock/backend/internal/infrastructure/store"
)

type flowFixture struct {
	service    *DocumentFlowService
	itemRepo   catalog.ItemRepository
	orderRepo  trade.PurchaseOrderRepository
	failedRepo audit.FailedTransactionRepository
}

func newFlowFixture(t *testing.T) *flowFixture {
	t.Helper()
	kv := store.NewMemoryStore()

	item, err := catalog.NewItem("001", "Standard Paper", "A4 white", "A4", "White", 100)
	require.NoError(t, err)
	vendor, err := partner.NewVendor("V001", "Paper Supplies Ltd", "123 Main St", "9876543210", "Paper")
	require.NoError(t, err)
	department, err := partner.NewDepartment("DEPT001", "IT Department", "John Smith", "9876543214")
	require.NoError(t, err)

	itemRepo := persistence.NewKVItemRepository(kv, []catalog.Item{*item})
	vendorRepo := persistence.NewKVVendorRepository(kv, []partner.Vendor{*vendor})
	departmentRepo := persistence.NewKVDepartmentRepository(kv, []partner.Department{*department})
	orderRepo := persistence.NewKVPurchaseOrderRepository(kv, nil)
	challanRepo := persistence.NewKVChallanRepository(kv, nil)
	issueRepo := persistence.NewKVItemIssueRepository(kv, nil)
	auditRepo := persistence.NewKVAuditLogRepository(kv)
	failedRepo := persistence.NewKVFailedTransactionRepository(kv)

	recorder := appaudit.NewRecorder(auditRepo, failedRepo, zap.NewNop())
	service := NewDocumentFlowService(orderRepo, challanRepo, issueRepo, itemRepo, vendorRepo, departmentRepo, recorder, zap.NewNop())

	return &flowFixture{
		service:    service,
		itemRepo:   itemRepo,
		orderRepo:  orderRepo,
		failedRepo: failedRepo,
	}
}

func testActor() appaudit.Actor {
	return appaudit.Actor{UserID: "admin-001", UserName: "Admin User"}
}

func TestCreateOrder(t *testing.T) {
	f := newFlowFixture(t)
	ctx := context.Background()

	resp, err := f.service.CreateOrder(ctx, testActor(), CreateOrderRequest{
		OrderNumber:     "PO100",
		OrderDate:       "2024-03-01",
		VendorCode:      "V001",
		ItemNumber:      "001",
		OrderedQuantity: 100,
		Unit:            "Ream",
	})

	require.NoError(t, err)
	assert.Equal(t, "Pending", resp.Status)
	assert.Equal(t, 0, resp.ReceivedQuantity)
	assert.Equal(t, 100, resp.RemainingQuantity)
}

func TestCreateOrder_UnknownVendor(t *testing.T) {
	f := newFlowFixture(t)

	_, err := f.service.CreateOrder(context.Background(), testActor(), CreateOrderRequest{
		OrderNumber:     "PO100",
		OrderDate:       "2024-03-01",
		VendorCode:      "V999",
		ItemNumber:      "001",
		OrderedQuantity: 100,
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestCreateOrder_DuplicateNumber(t *testing.T) {
	f := newFlowFixture(t)
	ctx := context.Background()

	req := CreateOrderRequest{
		OrderNumber:     "PO100",
		OrderDate:       "2024-03-01",
		VendorCode:      "V001",
		ItemNumber:      "001",
		OrderedQuantity: 100,
	}
	_, err := f.service.CreateOrder(ctx, testActor(), req)
	require.NoError(t, err)

	_, err = f.service.CreateOrder(ctx, testActor(), req)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
}

func TestReceiveGoods_PartialThenCompleted(t *testing.T) {
	f := newFlowFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateOrder(ctx, testActor(), CreateOrderRequest{
		OrderNumber:     "PO100",
		OrderDate:       "2024-03-01",
		VendorCode:      "V001",
		ItemNumber:      "001",
		OrderedQuantity: 100,
		Unit:            "Ream",
	})
	require.NoError(t, err)

	first, err := f.service.ReceiveGoods(ctx, testActor(), ReceiveGoodsRequest{
		ChallanNo:        "CH100",
		ChallanDate:      "2024-03-05",
		OrderNumber:      "PO100",
		VendorCode:       "V001",
		ItemNumber:       "001",
		ReceivedQuantity: 60,
		Unit:             "Ream",
	})
	require.NoError(t, err)
	require.NotNil(t, first.Order)
	assert.Equal(t, 60, first.Order.ReceivedQuantity)
	assert.Equal(t, "Partial", first.Order.Status)
	assert.Equal(t, 40, first.Order.RemainingQuantity)

	second, err := f.service.ReceiveGoods(ctx, testActor(), ReceiveGoodsRequest{
		ChallanNo:        "CH101",
		ChallanDate:      "2024-03-09",
		OrderNumber:      "PO100",
		VendorCode:       "V001",
		ItemNumber:       "001",
		ReceivedQuantity: 40,
		Unit:             "Ream",
	})
	require.NoError(t, err)
	assert.Equal(t, 100, second.Order.ReceivedQuantity)
	assert.Equal(t, "Completed", second.Order.Status)
	assert.Equal(t, 0, second.Order.RemainingQuantity)

	// Stored order reflects the accumulated receipts
	stored, err := f.orderRepo.FindByNumber(ctx, "PO100")
	require.NoError(t, err)
	assert.Equal(t, trade.OrderStatusCompleted, stored.Status)
}

func TestReceiveGoods_OverReceiptClampsStatus(t *testing.T) {
	f := newFlowFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateOrder(ctx, testActor(), CreateOrderRequest{
		OrderNumber:     "PO100",
		OrderDate:       "2024-03-01",
		VendorCode:      "V001",
		ItemNumber:      "001",
		OrderedQuantity: 100,
	})
	require.NoError(t, err)

	resp, err := f.service.ReceiveGoods(ctx, testActor(), ReceiveGoodsRequest{
		ChallanNo:        "CH100",
		ChallanDate:      "2024-03-05",
		OrderNumber:      "PO100",
		VendorCode:       "V001",
		ItemNumber:       "001",
		ReceivedQuantity: 130,
	})

	require.NoError(t, err)
	assert.Equal(t, 130, resp.Order.ReceivedQuantity)
	assert.Equal(t, "Completed", resp.Order.Status)
	assert.Equal(t, 0, resp.Order.RemainingQuantity)
}

func TestReceiveGoods_StandaloneChallan(t *testing.T) {
	f := newFlowFixture(t)

	resp, err := f.service.ReceiveGoods(context.Background(), testActor(), ReceiveGoodsRequest{
		ChallanNo:        "CH200",
		ChallanDate:      "2024-03-05",
		VendorCode:       "V001",
		ItemNumber:       "001",
		ReceivedQuantity: 25,
	})

	require.NoError(t, err)
	assert.Empty(t, resp.OrderNumber)
	assert.Nil(t, resp.Order)
}

func TestReceiveGoods_UnknownOrder(t *testing.T) {
	f := newFlowFixture(t)

	_, err := f.service.ReceiveGoods(context.Background(), testActor(), ReceiveGoodsRequest{
		ChallanNo:        "CH200",
		ChallanDate:      "2024-03-05",
		OrderNumber:      "PO999",
		VendorCode:       "V001",
		ItemNumber:       "001",
		ReceivedQuantity: 25,
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestIssueItem_DecrementsStock(t *testing.T) {
	f := newFlowFixture(t)
	ctx := context.Background()

	resp, err := f.service.IssueItem(ctx, testActor(), IssueItemRequest{
		IssueNo:        "ISS100",
		IssueDate:      "2024-03-10",
		ItemNumber:     "001",
		DepartmentCode: "DEPT001",
		IssuedQuantity: 30,
		Unit:           "Ream",
		IssuedTo:       "John Smith",
	})

	require.NoError(t, err)
	assert.Equal(t, 70, resp.RemainingStock)
	assert.Equal(t, "Admin User", resp.IssuedBy)

	item, err := f.itemRepo.FindByNumber(ctx, "001")
	require.NoError(t, err)
	assert.Equal(t, 70, item.CurrentStock)
}

func TestIssueItem_InsufficientStock(t *testing.T) {
	f := newFlowFixture(t)
	ctx := context.Background()

	_, err := f.service.IssueItem(ctx, testActor(), IssueItemRequest{
		IssueNo:        "ISS100",
		IssueDate:      "2024-03-10",
		ItemNumber:     "001",
		DepartmentCode: "DEPT001",
		IssuedQuantity: 150,
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)

	// Stock is untouched and the rejection landed in the failure log
	item, err := f.itemRepo.FindByNumber(ctx, "001")
	require.NoError(t, err)
	assert.Equal(t, 100, item.CurrentStock)

	failures, err := f.failedRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, ModuleIssues, failures[0].Module)

	issues, err := f.service.ListIssues(ctx)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestIssueItem_UnknownDepartment(t *testing.T) {
	f := newFlowFixture(t)

	_, err := f.service.IssueItem(context.Background(), testActor(), IssueItemRequest{
		IssueNo:        "ISS100",
		IssueDate:      "2024-03-10",
		ItemNumber:     "001",
		DepartmentCode: "DEPT999",
		IssuedQuantity: 10,
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestListOpenOrders_ExcludesCompleted(t *testing.T) {
	f := newFlowFixture(t)
	ctx := context.Background()

	for _, num := range []string{"PO100", "PO101"} {
		_, err := f.service.CreateOrder(ctx, testActor(), CreateOrderRequest{
			OrderNumber:     num,
			OrderDate:       "2024-03-01",
			VendorCode:      "V001",
			ItemNumber:      "001",
			OrderedQuantity: 50,
		})
		require.NoError(t, err)
	}

	_, err := f.service.ReceiveGoods(ctx, testActor(), ReceiveGoodsRequest{
		ChallanNo:        "CH100",
		ChallanDate:      "2024-03-05",
		OrderNumber:      "PO100",
		VendorCode:       "V001",
		ItemNumber:       "001",
		ReceivedQuantity: 50,
	})
	require.NoError(t, err)

	open, err := f.service.ListOpenOrders(ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "PO101", open[0].OrderNumber)
}
