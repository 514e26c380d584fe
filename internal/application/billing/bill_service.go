// Package billing implements vendor invoicing with GST, payment recording,
// and the per-vendor ledger.
package billing

import (
	"context"
	"errors"
	"fmt"

	appaudit "github.com/paperstock/backend/internal/application/audit"
	"github.com/paperstock/backend/internal/domain/audit"
	"github.com/paperstock/backend/internal/domain/billing"
	"github.com/paperstock/backend/internal/domain/partner"
	"github.com/paperstock/backend/internal/domain/shared"
	"github.com/paperstock/backend/internal/domain/trade"
)

// Audit module names for billing mutations
const (
	ModuleBills    = "Bill Entry"
	ModulePayments = "Vendor Payment"
)

// BillService handles vendor invoice and payment operations
type BillService struct {
	billRepo    billing.BillRepository
	paymentRepo billing.VendorPaymentRepository
	challanRepo trade.ChallanRepository
	vendorRepo  partner.VendorRepository
	recorder    *appaudit.Recorder
}

// NewBillService creates a new billing service
func NewBillService(
	billRepo billing.BillRepository,
	paymentRepo billing.VendorPaymentRepository,
	challanRepo trade.ChallanRepository,
	vendorRepo partner.VendorRepository,
	recorder *appaudit.Recorder,
) *BillService {
	return &BillService{
		billRepo:    billRepo,
		paymentRepo: paymentRepo,
		challanRepo: challanRepo,
		vendorRepo:  vendorRepo,
		recorder:    recorder,
	}
}

// CreateBill records a vendor invoice with all derived amounts computed
func (s *BillService) CreateBill(ctx context.Context, actor appaudit.Actor, req CreateBillRequest) (*BillResponse, error) {
	if _, err := s.vendorRepo.FindByCode(ctx, req.VendorCode); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Vendor not found")
		}
		return nil, err
	}
	if req.ChallanNo != "" {
		if _, err := s.challanRepo.FindByNumber(ctx, req.ChallanNo); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("NOT_FOUND", "Challan not found")
			}
			return nil, err
		}
	}

	bill, err := billing.NewBill(req.BillNo, req.BillDate, req.ChallanNo, req.VendorCode, req.ItemNumber,
		req.Quantity, req.Unit, req.RatePerUnit, req.CgstPercent, req.SgstPercent)
	if err != nil {
		return nil, err
	}

	if err := s.billRepo.Append(ctx, bill); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Bill with this number already exists")
		}
		return nil, err
	}

	s.recorder.Record(ctx, actor, audit.ActionCreate, ModuleBills, bill.BillNo)
	return toBillResponse(bill), nil
}

// UpdateBill replaces the amount inputs of a bill and recomputes the derived
// amounts atomically
func (s *BillService) UpdateBill(ctx context.Context, actor appaudit.Actor, billNo string, req UpdateBillRequest) (*BillResponse, error) {
	bill, err := s.billRepo.FindByNumber(ctx, billNo)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Bill not found")
		}
		return nil, err
	}

	oldTotal := bill.TotalAmount
	if err := bill.UpdateInputs(req.Quantity, req.RatePerUnit, req.CgstPercent, req.SgstPercent); err != nil {
		return nil, err
	}

	if err := s.billRepo.Update(ctx, bill); err != nil {
		return nil, err
	}

	s.recorder.RecordFieldChange(ctx, actor, ModuleBills, bill.BillNo, "totalAmount",
		fmt.Sprintf("%g", oldTotal), fmt.Sprintf("%g", bill.TotalAmount))
	return toBillResponse(bill), nil
}

// MarkBillPaid flips a bill's paid flag
func (s *BillService) MarkBillPaid(ctx context.Context, actor appaudit.Actor, billNo string) (*BillResponse, error) {
	bill, err := s.billRepo.FindByNumber(ctx, billNo)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Bill not found")
		}
		return nil, err
	}

	bill.MarkPaid()
	if err := s.billRepo.Update(ctx, bill); err != nil {
		return nil, err
	}

	s.recorder.RecordFieldChange(ctx, actor, ModuleBills, bill.BillNo, "isPaid", "false", "true")
	return toBillResponse(bill), nil
}

// GetBill returns a single bill by number
func (s *BillService) GetBill(ctx context.Context, billNo string) (*BillResponse, error) {
	bill, err := s.billRepo.FindByNumber(ctx, billNo)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Bill not found")
		}
		return nil, err
	}
	return toBillResponse(bill), nil
}

// ListBills returns all bills in insertion order
func (s *BillService) ListBills(ctx context.Context) ([]BillResponse, error) {
	bills, err := s.billRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BillResponse, 0, len(bills))
	for i := range bills {
		out = append(out, *toBillResponse(&bills[i]))
	}
	return out, nil
}

// RecordPayment records a vendor payment. Payments are append-only and not
// tied to a specific bill.
func (s *BillService) RecordPayment(ctx context.Context, actor appaudit.Actor, req RecordPaymentRequest) (*PaymentResponse, error) {
	if _, err := s.vendorRepo.FindByCode(ctx, req.VendorCode); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Vendor not found")
		}
		return nil, err
	}

	payment, err := billing.NewVendorPayment(req.VendorCode, req.PaymentDate, req.ModeOfPayment, req.PaymentAmount)
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Append(ctx, payment); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actor, audit.ActionCreate, ModulePayments, payment.VendorCode+"/"+payment.PaymentDate)
	return toPaymentResponse(payment), nil
}

// ListPayments returns all vendor payments in insertion order
func (s *BillService) ListPayments(ctx context.Context) ([]PaymentResponse, error) {
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, *toPaymentResponse(&payments[i]))
	}
	return out, nil
}

// VendorLedger returns the per-vendor account statement: invoices, payments
// and the net balance (total invoiced minus total paid).
func (s *BillService) VendorLedger(ctx context.Context, vendorCode string) (*VendorLedgerResponse, error) {
	if _, err := s.vendorRepo.FindByCode(ctx, vendorCode); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Vendor not found")
		}
		return nil, err
	}

	bills, err := s.billRepo.FindByVendor(ctx, vendorCode)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.FindByVendor(ctx, vendorCode)
	if err != nil {
		return nil, err
	}

	invoiceAmounts := make([]float64, 0, len(bills))
	billResponses := make([]BillResponse, 0, len(bills))
	for i := range bills {
		invoiceAmounts = append(invoiceAmounts, bills[i].TotalAmount)
		billResponses = append(billResponses, *toBillResponse(&bills[i]))
	}
	paymentAmounts := make([]float64, 0, len(payments))
	paymentResponses := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		paymentAmounts = append(paymentAmounts, payments[i].PaymentAmount)
		paymentResponses = append(paymentResponses, *toPaymentResponse(&payments[i]))
	}

	balance := billing.ComputeLedgerBalance(invoiceAmounts, paymentAmounts)
	return &VendorLedgerResponse{
		VendorCode:   vendorCode,
		Bills:        billResponses,
		Payments:     paymentResponses,
		TotalInvoice: balance.TotalInvoice,
		TotalPayment: balance.TotalPayment,
		Balance:      balance.Balance,
	}, nil
}
