package trade

import (
	"time"

	"github.com/paperstock/backend/internal/domain/trade"
)

// CreateOrderRequest is the input for creating a purchase order
type CreateOrderRequest struct {
	OrderNumber     string `json:"orderNumber" binding:"required"`
	OrderDate       string `json:"orderDate" binding:"required,isodate"`
	VendorCode      string `json:"vendorCode" binding:"required"`
	ItemNumber      string `json:"itemNumber" binding:"required"`
	OrderedQuantity int    `json:"orderedQuantity" binding:"gt=0"`
	Unit            string `json:"unit"`
}

// OrderResponse is the outward representation of a purchase order
type OrderResponse struct {
	OrderNumber       string    `json:"orderNumber"`
	OrderDate         string    `json:"orderDate"`
	VendorCode        string    `json:"vendorCode"`
	ItemNumber        string    `json:"itemNumber"`
	OrderedQuantity   int       `json:"orderedQuantity"`
	ReceivedQuantity  int       `json:"receivedQuantity"`
	RemainingQuantity int       `json:"remainingQuantity"`
	Unit              string    `json:"unit"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func toOrderResponse(o *trade.PurchaseOrder) *OrderResponse {
	return &OrderResponse{
		OrderNumber:       o.OrderNumber,
		OrderDate:         o.OrderDate,
		VendorCode:        o.VendorCode,
		ItemNumber:        o.ItemNumber,
		OrderedQuantity:   o.OrderedQuantity,
		ReceivedQuantity:  o.ReceivedQuantity,
		RemainingQuantity: o.RemainingQuantity(),
		Unit:              o.Unit,
		Status:            o.Status.String(),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

// ReceiveGoodsRequest is the input for recording a goods receipt. OrderNumber
// is optional: when empty the challan is recorded standalone and no order is
// reconciled.
type ReceiveGoodsRequest struct {
	ChallanNo        string `json:"challanNo" binding:"required"`
	ChallanDate      string `json:"challanDate" binding:"required,isodate"`
	OrderNumber      string `json:"orderNumber"`
	VendorCode       string `json:"vendorCode" binding:"required"`
	ItemNumber       string `json:"itemNumber" binding:"required"`
	ReceivedQuantity int    `json:"receivedQuantity" binding:"gt=0"`
	Unit             string `json:"unit"`
}

// ChallanResponse is the outward representation of a challan; when an order
// was reconciled, Order carries its post-receipt state.
type ChallanResponse struct {
	ChallanNo        string         `json:"challanNo"`
	ChallanDate      string         `json:"challanDate"`
	OrderNumber      string         `json:"orderNumber,omitempty"`
	VendorCode       string         `json:"vendorCode"`
	ItemNumber       string         `json:"itemNumber"`
	ReceivedQuantity int            `json:"receivedQuantity"`
	Unit             string         `json:"unit"`
	CreatedAt        time.Time      `json:"createdAt"`
	Order            *OrderResponse `json:"order,omitempty"`
}

func toChallanResponse(c *trade.Challan, order *trade.PurchaseOrder) *ChallanResponse {
	resp := &ChallanResponse{
		ChallanNo:        c.ChallanNo,
		ChallanDate:      c.ChallanDate,
		OrderNumber:      c.OrderNumber,
		VendorCode:       c.VendorCode,
		ItemNumber:       c.ItemNumber,
		ReceivedQuantity: c.ReceivedQuantity,
		Unit:             c.Unit,
		CreatedAt:        c.CreatedAt,
	}
	if order != nil {
		resp.Order = toOrderResponse(order)
	}
	return resp
}

// IssueItemRequest is the input for issuing stock to a department
type IssueItemRequest struct {
	IssueNo        string `json:"issueNo" binding:"required"`
	IssueDate      string `json:"issueDate" binding:"required,isodate"`
	ItemNumber     string `json:"itemNumber" binding:"required"`
	DepartmentCode string `json:"departmentCode" binding:"required"`
	IssuedQuantity int    `json:"issuedQuantity" binding:"gt=0"`
	Unit           string `json:"unit"`
	IssuedTo       string `json:"issuedTo"`
}

// IssueResponse is the outward representation of an item issue, including
// the item's stock after the decrement.
type IssueResponse struct {
	IssueNo        string    `json:"issueNo"`
	IssueDate      string    `json:"issueDate"`
	ItemNumber     string    `json:"itemNumber"`
	DepartmentCode string    `json:"departmentCode"`
	IssuedQuantity int       `json:"issuedQuantity"`
	Unit           string    `json:"unit"`
	IssuedBy       string    `json:"issuedBy"`
	IssuedTo       string    `json:"issuedTo"`
	RemainingStock int       `json:"remainingStock"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toIssueResponse(issue *trade.ItemIssue, remainingStock int) *IssueResponse {
	return &IssueResponse{
		IssueNo:        issue.IssueNo,
		IssueDate:      issue.IssueDate,
		ItemNumber:     issue.ItemNumber,
		DepartmentCode: issue.DepartmentCode,
		IssuedQuantity: issue.IssuedQuantity,
		Unit:           issue.Unit,
		IssuedBy:       issue.IssuedBy,
		IssuedTo:       issue.IssuedTo,
		RemainingStock: remainingStock,
		CreatedAt:      issue.CreatedAt,
	}
}
