package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appaudit "github.com/paperstock/backend/internal/application/audit"
	"github.com/paperstock/backend/internal/domain/partner"
	"github.com/paperstock/backend/internal/domain/shared"
	"github.com/paperstock/backend/internal/domain/trade"
	"github.com/paperstock/backend/internal/infrastructure/persistence"
	"github.com/paperstock/backend/internal/infrastructure/store"
)

func newBillService(t *testing.T) *BillService {
	t.Helper()
	kv := store.NewMemoryStore()

	vendor, err := partner.NewVendor("V001", "Paper Supplies Ltd", "123 Main St", "9876543210", "Paper")
	require.NoError(t, err)
	challan, err := trade.NewChallan("CH001", "2024-01-18", "PO001", "V001", "001", 40, "Ream")
	require.NoError(t, err)

	vendorRepo := persistence.NewKVVendorRepository(kv, []partner.Vendor{*vendor})
	challanRepo := persistence.NewKVChallanRepository(kv, []trade.Challan{*challan})
	billRepo := persistence.NewKVBillRepository(kv, nil)
	paymentRepo := persistence.NewKVVendorPaymentRepository(kv, nil)
	auditRepo := persistence.NewKVAuditLogRepository(kv)
	failedRepo := persistence.NewKVFailedTransactionRepository(kv)
	recorder := appaudit.NewRecorder(auditRepo, failedRepo, zap.NewNop())

	return NewBillService(billRepo, paymentRepo, challanRepo, vendorRepo, recorder)
}

func billActor() appaudit.Actor {
	return appaudit.Actor{UserID: "admin-001", UserName: "Admin User"}
}

func TestCreateBill_ComputesAmounts(t *testing.T) {
	s := newBillService(t)

	resp, err := s.CreateBill(context.Background(), billActor(), CreateBillRequest{
		BillNo:      "BILL100",
		BillDate:    "2024-03-01",
		ChallanNo:   "CH001",
		VendorCode:  "V001",
		ItemNumber:  "001",
		Quantity:    40,
		Unit:        "Ream",
		RatePerUnit: 500,
		CgstPercent: 9,
		SgstPercent: 9,
	})

	require.NoError(t, err)
	assert.InDelta(t, 20000.0, resp.Amount, 1e-9)
	assert.InDelta(t, 1800.0, resp.CgstAmount, 1e-9)
	assert.InDelta(t, 1800.0, resp.SgstAmount, 1e-9)
	assert.InDelta(t, 23600.0, resp.TotalAmount, 1e-9)
	assert.False(t, resp.IsPaid)
}

func TestCreateBill_UnknownChallan(t *testing.T) {
	s := newBillService(t)

	_, err := s.CreateBill(context.Background(), billActor(), CreateBillRequest{
		BillNo:      "BILL100",
		BillDate:    "2024-03-01",
		ChallanNo:   "CH999",
		VendorCode:  "V001",
		ItemNumber:  "001",
		Quantity:    10,
		RatePerUnit: 100,
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestUpdateBill_RecomputesDerivedFields(t *testing.T) {
	s := newBillService(t)
	ctx := context.Background()

	_, err := s.CreateBill(ctx, billActor(), CreateBillRequest{
		BillNo:      "BILL100",
		BillDate:    "2024-03-01",
		VendorCode:  "V001",
		ItemNumber:  "001",
		Quantity:    40,
		RatePerUnit: 500,
		CgstPercent: 9,
		SgstPercent: 9,
	})
	require.NoError(t, err)

	resp, err := s.UpdateBill(ctx, billActor(), "BILL100", UpdateBillRequest{
		Quantity:    10,
		RatePerUnit: 200,
		CgstPercent: 6,
		SgstPercent: 6,
	})

	require.NoError(t, err)
	assert.InDelta(t, 2000.0, resp.Amount, 1e-9)
	assert.InDelta(t, 120.0, resp.CgstAmount, 1e-9)
	assert.InDelta(t, 120.0, resp.SgstAmount, 1e-9)
	assert.InDelta(t, 2240.0, resp.TotalAmount, 1e-9)
}

func TestMarkBillPaid(t *testing.T) {
	s := newBillService(t)
	ctx := context.Background()

	_, err := s.CreateBill(ctx, billActor(), CreateBillRequest{
		BillNo:      "BILL100",
		BillDate:    "2024-03-01",
		VendorCode:  "V001",
		ItemNumber:  "001",
		Quantity:    10,
		RatePerUnit: 100,
	})
	require.NoError(t, err)

	resp, err := s.MarkBillPaid(ctx, billActor(), "BILL100")
	require.NoError(t, err)
	assert.True(t, resp.IsPaid)

	stored, err := s.GetBill(ctx, "BILL100")
	require.NoError(t, err)
	assert.True(t, stored.IsPaid)
}

func TestRecordPayment_UnknownVendor(t *testing.T) {
	s := newBillService(t)

	_, err := s.RecordPayment(context.Background(), billActor(), RecordPaymentRequest{
		VendorCode:    "V999",
		PaymentDate:   "2024-03-01",
		PaymentAmount: 5000,
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestVendorLedger_NetsInvoicesAgainstPayments(t *testing.T) {
	s := newBillService(t)
	ctx := context.Background()

	for _, b := range []struct {
		no   string
		qty  float64
		rate float64
	}{
		{"BILL100", 10, 500},  // 5000, no GST
		{"BILL101", 25, 500},  // 12500
		{"BILL102", 15, 500},  // 7500
	} {
		_, err := s.CreateBill(ctx, billActor(), CreateBillRequest{
			BillNo:      b.no,
			BillDate:    "2024-03-01",
			VendorCode:  "V001",
			ItemNumber:  "001",
			Quantity:    b.qty,
			RatePerUnit: b.rate,
		})
		require.NoError(t, err)
	}
	for _, amount := range []float64{5000, 10000} {
		_, err := s.RecordPayment(ctx, billActor(), RecordPaymentRequest{
			VendorCode:    "V001",
			PaymentDate:   "2024-03-10",
			ModeOfPayment: "NEFT",
			PaymentAmount: amount,
		})
		require.NoError(t, err)
	}

	ledger, err := s.VendorLedger(ctx, "V001")
	require.NoError(t, err)
	assert.Len(t, ledger.Bills, 3)
	assert.Len(t, ledger.Payments, 2)
	assert.InDelta(t, 25000.0, ledger.TotalInvoice, 1e-9)
	assert.InDelta(t, 15000.0, ledger.TotalPayment, 1e-9)
	assert.InDelta(t, 10000.0, ledger.Balance, 1e-9)
}

func TestVendorLedger_EmptyIsZero(t *testing.T) {
	s := newBillService(t)

	ledger, err := s.VendorLedger(context.Background(), "V001")

	require.NoError(t, err)
	assert.Empty(t, ledger.Bills)
	assert.Empty(t, ledger.Payments)
	assert.Zero(t, ledger.Balance)
}
