// Package report builds the read-only registers and per-item ledger from the
// persisted document collections.
package report

import (
	"context"
	"errors"

	"github.com/paperstock/backend/internal/domain/billing"
	"github.com/paperstock/backend/internal/domain/catalog"
	"github.com/paperstock/backend/internal/domain/shared"
	"github.com/paperstock/backend/internal/domain/trade"
)

// OrderRegisterRow is one line of the purchase order register
type OrderRegisterRow struct {
	OrderNumber       string `json:"orderNumber"`
	OrderDate         string `json:"orderDate"`
	VendorCode        string `json:"vendorCode"`
	ItemNumber        string `json:"itemNumber"`
	OrderedQuantity   int    `json:"orderedQuantity"`
	ReceivedQuantity  int    `json:"receivedQuantity"`
	RemainingQuantity int    `json:"remainingQuantity"`
	Unit              string `json:"unit"`
	Status            string `json:"status"`
}

// ChallanRegisterRow is one line of the goods receipt register
type ChallanRegisterRow struct {
	ChallanNo        string `json:"challanNo"`
	ChallanDate      string `json:"challanDate"`
	OrderNumber      string `json:"orderNumber,omitempty"`
	VendorCode       string `json:"vendorCode"`
	ItemNumber       string `json:"itemNumber"`
	ReceivedQuantity int    `json:"receivedQuantity"`
	Unit             string `json:"unit"`
}

// BillRegisterRow is one line of the invoice register
type BillRegisterRow struct {
	BillNo      string  `json:"billNo"`
	BillDate    string  `json:"billDate"`
	ChallanNo   string  `json:"challanNo"`
	VendorCode  string  `json:"vendorCode"`
	ItemNumber  string  `json:"itemNumber"`
	Quantity    float64 `json:"quantity"`
	TotalAmount float64 `json:"totalAmount"`
	IsPaid      bool    `json:"isPaid"`
}

// ItemLedgerResponse is the per-item ledger: the item identity and the
// chronological movement rows with a running balance.
type ItemLedgerResponse struct {
	ItemNumber   string                  `json:"itemNumber"`
	ItemName     string                  `json:"itemName"`
	CurrentStock int                     `json:"currentStock"`
	Rows         []billing.ItemLedgerRow `json:"rows"`
}

// ReportService builds registers and ledgers from the document collections
type ReportService struct {
	orderRepo   trade.PurchaseOrderRepository
	challanRepo trade.ChallanRepository
	issueRepo   trade.ItemIssueRepository
	billRepo    billing.BillRepository
	itemRepo    catalog.ItemRepository
}

// NewReportService creates a new report service
func NewReportService(
	orderRepo trade.PurchaseOrderRepository,
	challanRepo trade.ChallanRepository,
	issueRepo trade.ItemIssueRepository,
	billRepo billing.BillRepository,
	itemRepo catalog.ItemRepository,
) *ReportService {
	return &ReportService{
		orderRepo:   orderRepo,
		challanRepo: challanRepo,
		issueRepo:   issueRepo,
		billRepo:    billRepo,
		itemRepo:    itemRepo,
	}
}

// OrderRegister returns the purchase order register in insertion order
func (s *ReportService) OrderRegister(ctx context.Context) ([]OrderRegisterRow, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]OrderRegisterRow, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		rows = append(rows, OrderRegisterRow{
			OrderNumber:       o.OrderNumber,
			OrderDate:         o.OrderDate,
			VendorCode:        o.VendorCode,
			ItemNumber:        o.ItemNumber,
			OrderedQuantity:   o.OrderedQuantity,
			ReceivedQuantity:  o.ReceivedQuantity,
			RemainingQuantity: o.RemainingQuantity(),
			Unit:              o.Unit,
			Status:            o.Status.String(),
		})
	}
	return rows, nil
}

// ChallanRegister returns the goods receipt register in insertion order
func (s *ReportService) ChallanRegister(ctx context.Context) ([]ChallanRegisterRow, error) {
	challans, err := s.challanRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]ChallanRegisterRow, 0, len(challans))
	for i := range challans {
		c := &challans[i]
		rows = append(rows, ChallanRegisterRow{
			ChallanNo:        c.ChallanNo,
			ChallanDate:      c.ChallanDate,
			OrderNumber:      c.OrderNumber,
			VendorCode:       c.VendorCode,
			ItemNumber:       c.ItemNumber,
			ReceivedQuantity: c.ReceivedQuantity,
			Unit:             c.Unit,
		})
	}
	return rows, nil
}

// BillRegister returns the invoice register in insertion order
func (s *ReportService) BillRegister(ctx context.Context) ([]BillRegisterRow, error) {
	bills, err := s.billRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]BillRegisterRow, 0, len(bills))
	for i := range bills {
		b := &bills[i]
		rows = append(rows, BillRegisterRow{
			BillNo:      b.BillNo,
			BillDate:    b.BillDate,
			ChallanNo:   b.ChallanNo,
			VendorCode:  b.VendorCode,
			ItemNumber:  b.ItemNumber,
			Quantity:    b.Quantity,
			TotalAmount: b.TotalAmount,
			IsPaid:      b.IsPaid,
		})
	}
	return rows, nil
}

// ItemLedger builds the per-item movement ledger from the item's challans
// and issues, ordered by date with a running balance.
func (s *ReportService) ItemLedger(ctx context.Context, itemNumber string) (*ItemLedgerResponse, error) {
	item, err := s.itemRepo.FindByNumber(ctx, itemNumber)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Item not found")
		}
		return nil, err
	}

	challans, err := s.challanRepo.FindByItem(ctx, itemNumber)
	if err != nil {
		return nil, err
	}
	issues, err := s.issueRepo.FindByItem(ctx, itemNumber)
	if err != nil {
		return nil, err
	}

	events := make([]billing.ItemLedgerEvent, 0, len(challans)+len(issues))
	for i := range challans {
		events = append(events, billing.ItemLedgerEvent{
			Type:        billing.LedgerEventReceipt,
			Date:        challans[i].ChallanDate,
			ReferenceNo: challans[i].ChallanNo,
			Quantity:    challans[i].ReceivedQuantity,
		})
	}
	for i := range issues {
		events = append(events, billing.ItemLedgerEvent{
			Type:        billing.LedgerEventIssue,
			Date:        issues[i].IssueDate,
			ReferenceNo: issues[i].IssueNo,
			Quantity:    issues[i].IssuedQuantity,
			IssuedTo:    issues[i].IssuedTo,
		})
	}

	return &ItemLedgerResponse{
		ItemNumber:   item.ItemNumber,
		ItemName:     item.ItemName,
		CurrentStock: item.CurrentStock,
		Rows:         billing.BuildItemLedger(events),
	}, nil
}
