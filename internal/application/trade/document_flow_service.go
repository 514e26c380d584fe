// Package trade implements the document flow: purchase orders, goods
// receipts against them, and stock issues to departments.
package trade

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	appaudit "github.com/paperstock/backend/internal/application/audit"
	"github.com/paperstock/backend/internal/domain/audit"
	"github.com/paperstock/backend/internal/domain/catalog"
	"github.com/paperstock/backend/internal/domain/partner"
	"github.com/paperstock/backend/internal/domain/shared"
	"github.com/paperstock/backend/internal/domain/trade"
)

// Audit module names for document flow mutations
const (
	ModuleOrders   = "Purchase Order Entry"
	ModuleChallans = "Challan Entry"
	ModuleIssues   = "Item Issue Entry"
)

// DocumentFlowService drives the order / receipt / issue document flow
type DocumentFlowService struct {
	orderRepo      trade.PurchaseOrderRepository
	challanRepo    trade.ChallanRepository
	issueRepo      trade.ItemIssueRepository
	itemRepo       catalog.ItemRepository
	vendorRepo     partner.VendorRepository
	departmentRepo partner.DepartmentRepository
	recorder       *appaudit.Recorder
	logger         *zap.Logger
}

// NewDocumentFlowService creates a new document flow service
func NewDocumentFlowService(
	orderRepo trade.PurchaseOrderRepository,
	challanRepo trade.ChallanRepository,
	issueRepo trade.ItemIssueRepository,
	itemRepo catalog.ItemRepository,
	vendorRepo partner.VendorRepository,
	departmentRepo partner.DepartmentRepository,
	recorder *appaudit.Recorder,
	logger *zap.Logger,
) *DocumentFlowService {
	return &DocumentFlowService{
		orderRepo:      orderRepo,
		challanRepo:    challanRepo,
		issueRepo:      issueRepo,
		itemRepo:       itemRepo,
		vendorRepo:     vendorRepo,
		departmentRepo: departmentRepo,
		recorder:       recorder,
		logger:         logger,
	}
}

// CreateOrder records a new purchase order in Pending status
func (s *DocumentFlowService) CreateOrder(ctx context.Context, actor appaudit.Actor, req CreateOrderRequest) (*OrderResponse, error) {
	if _, err := s.vendorRepo.FindByCode(ctx, req.VendorCode); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Vendor not found")
		}
		return nil, err
	}
	if _, err := s.itemRepo.FindByNumber(ctx, req.ItemNumber); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Item not found")
		}
		return nil, err
	}

	order, err := trade.NewPurchaseOrder(req.OrderNumber, req.OrderDate, req.VendorCode, req.ItemNumber, req.OrderedQuantity, req.Unit)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Append(ctx, order); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Purchase order with this number already exists")
		}
		return nil, err
	}

	s.recorder.Record(ctx, actor, audit.ActionCreate, ModuleOrders, order.OrderNumber)
	return toOrderResponse(order), nil
}

// GetOrder returns a single purchase order by number
func (s *DocumentFlowService) GetOrder(ctx context.Context, orderNumber string) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Purchase order not found")
		}
		return nil, err
	}
	return toOrderResponse(order), nil
}

// ListOrders returns all purchase orders in insertion order
func (s *DocumentFlowService) ListOrders(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *toOrderResponse(&orders[i]))
	}
	return out, nil
}

// ListOpenOrders returns orders that can still receive goods, for the
// receipt entry form.
func (s *DocumentFlowService) ListOpenOrders(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		if orders[i].CanReceive() {
			out = append(out, *toOrderResponse(&orders[i]))
		}
	}
	return out, nil
}

// ReceiveGoods records a challan and, when it names an order, accumulates
// the received quantity onto that order and recomputes its status. The
// challan is written first; a failed order update is recorded in the
// failed-transaction log and surfaces as an error, with the challan kept.
func (s *DocumentFlowService) ReceiveGoods(ctx context.Context, actor appaudit.Actor, req ReceiveGoodsRequest) (*ChallanResponse, error) {
	var order *trade.PurchaseOrder
	if req.OrderNumber != "" {
		found, err := s.orderRepo.FindByNumber(ctx, req.OrderNumber)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("NOT_FOUND", "Purchase order not found")
			}
			return nil, err
		}
		order = found
	}

	challan, err := trade.NewChallan(req.ChallanNo, req.ChallanDate, req.OrderNumber, req.VendorCode, req.ItemNumber, req.ReceivedQuantity, req.Unit)
	if err != nil {
		return nil, err
	}

	if err := s.challanRepo.Append(ctx, challan); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Challan with this number already exists")
		}
		return nil, err
	}
	s.recorder.Record(ctx, actor, audit.ActionCreate, ModuleChallans, challan.ChallanNo)

	if order != nil {
		if err := order.AddReceipt(req.ReceivedQuantity); err != nil {
			return nil, err
		}
		if err := s.orderRepo.Update(ctx, order); err != nil {
			s.logger.Error("Failed to update order after receipt",
				zap.String("order_number", order.OrderNumber),
				zap.String("challan_no", challan.ChallanNo),
				zap.Error(err))
			s.recorder.RecordFailure(ctx, actor, ModuleOrders, "receive",
				err.Error(),
				fmt.Sprintf("challan %s against order %s", challan.ChallanNo, order.OrderNumber))
			return nil, shared.NewDomainError("PERSISTENCE", "Challan recorded but order update failed")
		}
		s.recorder.Record(ctx, actor, audit.ActionUpdate, ModuleOrders, order.OrderNumber)
	}

	return toChallanResponse(challan, order), nil
}

// GetChallan returns a single challan by number
func (s *DocumentFlowService) GetChallan(ctx context.Context, challanNo string) (*ChallanResponse, error) {
	challan, err := s.challanRepo.FindByNumber(ctx, challanNo)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Challan not found")
		}
		return nil, err
	}
	return toChallanResponse(challan, nil), nil
}

// ListChallans returns all challans in insertion order
func (s *DocumentFlowService) ListChallans(ctx context.Context) ([]ChallanResponse, error) {
	challans, err := s.challanRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ChallanResponse, 0, len(challans))
	for i := range challans {
		out = append(out, *toChallanResponse(&challans[i], nil))
	}
	return out, nil
}

// IssueItem records a stock issue to a department and decrements the item's
// current stock. An insufficient-stock rejection is written to the
// failed-transaction log and leaves both the item and the issue list
// untouched.
func (s *DocumentFlowService) IssueItem(ctx context.Context, actor appaudit.Actor, req IssueItemRequest) (*IssueResponse, error) {
	item, err := s.itemRepo.FindByNumber(ctx, req.ItemNumber)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Item not found")
		}
		return nil, err
	}
	if _, err := s.departmentRepo.FindByCode(ctx, req.DepartmentCode); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Department not found")
		}
		return nil, err
	}

	issue, err := trade.NewItemIssue(req.IssueNo, req.IssueDate, req.ItemNumber, req.DepartmentCode, req.IssuedQuantity, req.Unit, actor.UserName, req.IssuedTo)
	if err != nil {
		return nil, err
	}

	if err := item.Decrease(req.IssuedQuantity); err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == "INSUFFICIENT_STOCK" {
			s.recorder.RecordFailure(ctx, actor, ModuleIssues, "issue",
				domainErr.Message,
				fmt.Sprintf("item %s: requested %d, available %d", item.ItemNumber, req.IssuedQuantity, item.CurrentStock))
		}
		return nil, err
	}

	if err := s.issueRepo.Append(ctx, issue); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Issue with this number already exists")
		}
		return nil, err
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		s.logger.Error("Failed to update item stock after issue",
			zap.String("item_number", item.ItemNumber),
			zap.String("issue_no", issue.IssueNo),
			zap.Error(err))
		s.recorder.RecordFailure(ctx, actor, ModuleIssues, "issue",
			err.Error(),
			fmt.Sprintf("issue %s recorded but stock update for item %s failed", issue.IssueNo, item.ItemNumber))
		return nil, shared.NewDomainError("PERSISTENCE", "Issue recorded but stock update failed")
	}

	s.recorder.Record(ctx, actor, audit.ActionCreate, ModuleIssues, issue.IssueNo)
	return toIssueResponse(issue, item.CurrentStock), nil
}

// ListIssues returns all item issues in insertion order
func (s *DocumentFlowService) ListIssues(ctx context.Context) ([]IssueResponse, error) {
	issues, err := s.issueRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]IssueResponse, 0, len(issues))
	for i := range issues {
		item, err := s.itemRepo.FindByNumber(ctx, issues[i].ItemNumber)
		remaining := 0
		if err == nil {
			remaining = item.CurrentStock
		}
		out = append(out, *toIssueResponse(&issues[i], remaining))
	}
	return out, nil
}
