// Package seed carries the demo datasets the collections are initialized
// with the first time a store key is read. Values are passed into the
// repository layer at startup; nothing here is a process-wide singleton.
package seed

import (
	"github.com/paperstock/backend/internal/domain/billing"
	"github.com/paperstock/backend/internal/domain/catalog"
	"github.com/paperstock/backend/internal/domain/partner"
	"github.com/paperstock/backend/internal/domain/shared"
	"github.com/paperstock/backend/internal/domain/trade"
)

// Items returns the item master seed data
func Items() []catalog.Item {
	return []catalog.Item{
		{BaseEntity: shared.NewBaseEntity(), ItemNumber: "001", ItemName: "Standard Paper", Description: "A4 size white paper", Size: "A4", Color: "White", CurrentStock: 500},
		{BaseEntity: shared.NewBaseEntity(), ItemNumber: "002", ItemName: "Premium Paper", Description: "A4 size glossy paper", Size: "A4", Color: "Cream", CurrentStock: 300},
		{BaseEntity: shared.NewBaseEntity(), ItemNumber: "003", ItemName: "Answer Book", Description: "24 pages answer booklet", Size: "A5", Color: "Blue", CurrentStock: 1000},
		{BaseEntity: shared.NewBaseEntity(), ItemNumber: "004", ItemName: "Graph Paper", Description: "Grid pattern paper", Size: "A4", Color: "White", CurrentStock: 200},
		{BaseEntity: shared.NewBaseEntity(), ItemNumber: "005", ItemName: "OMR Sheet", Description: "Optical mark recognition sheet", Size: "A4", Color: "White", CurrentStock: 150},
	}
}

// Vendors returns the vendor master seed data
func Vendors() []partner.Vendor {
	return []partner.Vendor{
		{BaseEntity: shared.NewBaseEntity(), VendorCode: "V001", VendorName: "Paper Supplies Ltd", VendorAddress: "123 Main St, City", VendorContact: "9876543210", MaterialType: "Paper"},
		{BaseEntity: shared.NewBaseEntity(), VendorCode: "V002", VendorName: "Quality Stationery", VendorAddress: "456 Market Rd, Town", VendorContact: "9876543211", MaterialType: "Stationery"},
		{BaseEntity: shared.NewBaseEntity(), VendorCode: "V003", VendorName: "Print Masters", VendorAddress: "789 Industrial Area", VendorContact: "9876543212", MaterialType: "Printing Materials"},
		{BaseEntity: shared.NewBaseEntity(), VendorCode: "V004", VendorName: "Exam Supplies Co", VendorAddress: "321 Business Park", VendorContact: "9876543213", MaterialType: "Examination Materials"},
	}
}

// Departments returns the department master seed data
func Departments() []partner.Department {
	return []partner.Department{
		{BaseEntity: shared.NewBaseEntity(), DepartmentCode: "DEPT001", DepartmentName: "IT Department", DepartmentHead: "John Smith", ContactNumber: "9876543214"},
		{BaseEntity: shared.NewBaseEntity(), DepartmentCode: "DEPT002", DepartmentName: "HR Department", DepartmentHead: "Jane Doe", ContactNumber: "9876543215"},
		{BaseEntity: shared.NewBaseEntity(), DepartmentCode: "DEPT003", DepartmentName: "Finance Department", DepartmentHead: "Bob Johnson", ContactNumber: "9876543216"},
	}
}

// UnitQuantities returns the unit-of-measure seed data
func UnitQuantities() []partner.UnitQuantity {
	return []partner.UnitQuantity{
		{BaseEntity: shared.NewBaseEntity(), QuantityID: "Q001", QuantityName: "Ream", Quantity: 500},
		{BaseEntity: shared.NewBaseEntity(), QuantityID: "Q002", QuantityName: "Bundle", Quantity: 25},
		{BaseEntity: shared.NewBaseEntity(), QuantityID: "Q003", QuantityName: "Box", Quantity: 100},
	}
}

// PurchaseOrders returns the purchase order seed data
func PurchaseOrders() []trade.PurchaseOrder {
	return []trade.PurchaseOrder{
		{BaseEntity: shared.NewBaseEntity(), OrderNumber: "PO001", OrderDate: "2024-01-15", VendorCode: "V001", ItemNumber: "001", OrderedQuantity: 100, ReceivedQuantity: 60, Unit: "Ream", Status: trade.OrderStatusPartial},
		{BaseEntity: shared.NewBaseEntity(), OrderNumber: "PO002", OrderDate: "2024-01-20", VendorCode: "V002", ItemNumber: "003", OrderedQuantity: 200, ReceivedQuantity: 200, Unit: "Bundle", Status: trade.OrderStatusCompleted},
		{BaseEntity: shared.NewBaseEntity(), OrderNumber: "PO003", OrderDate: "2024-02-05", VendorCode: "V004", ItemNumber: "005", OrderedQuantity: 50, ReceivedQuantity: 0, Unit: "Box", Status: trade.OrderStatusPending},
	}
}

// Challans returns the challan seed data
func Challans() []trade.Challan {
	return []trade.Challan{
		{BaseEntity: shared.NewBaseEntity(), ChallanNo: "CH001", ChallanDate: "2024-01-18", OrderNumber: "PO001", VendorCode: "V001", ItemNumber: "001", ReceivedQuantity: 40, Unit: "Ream"},
		{BaseEntity: shared.NewBaseEntity(), ChallanNo: "CH002", ChallanDate: "2024-01-22", OrderNumber: "PO001", VendorCode: "V001", ItemNumber: "001", ReceivedQuantity: 20, Unit: "Ream"},
		{BaseEntity: shared.NewBaseEntity(), ChallanNo: "CH003", ChallanDate: "2024-01-25", OrderNumber: "PO002", VendorCode: "V002", ItemNumber: "003", ReceivedQuantity: 200, Unit: "Bundle"},
	}
}

// Bills returns the bill seed data
func Bills() []billing.Bill {
	return []billing.Bill{
		{
			BaseEntity: shared.NewBaseEntity(),
			BillNo:     "BILL001", BillDate: "2024-01-20", ChallanNo: "CH001", VendorCode: "V001", ItemNumber: "001",
			Quantity: 40, Unit: "Ream", RatePerUnit: 500, CgstPercent: 9, SgstPercent: 9,
			BillAmounts: billing.ComputeBillAmounts(40, 500, 9, 9),
			IsPaid:      false,
		},
		{
			BaseEntity: shared.NewBaseEntity(),
			BillNo:     "BILL002", BillDate: "2024-01-27", ChallanNo: "CH003", VendorCode: "V002", ItemNumber: "003",
			Quantity: 200, Unit: "Bundle", RatePerUnit: 25, CgstPercent: 9, SgstPercent: 9,
			BillAmounts: billing.ComputeBillAmounts(200, 25, 9, 9),
			IsPaid:      true,
		},
	}
}

// ItemIssues returns the issue seed data
func ItemIssues() []trade.ItemIssue {
	return []trade.ItemIssue{
		{BaseEntity: shared.NewBaseEntity(), IssueNo: "ISS001", IssueDate: "2024-01-28", ItemNumber: "001", DepartmentCode: "DEPT001", IssuedQuantity: 10, Unit: "Ream", IssuedBy: "Admin User", IssuedTo: "John Smith"},
		{BaseEntity: shared.NewBaseEntity(), IssueNo: "ISS002", IssueDate: "2024-02-02", ItemNumber: "003", DepartmentCode: "DEPT002", IssuedQuantity: 50, Unit: "Bundle", IssuedBy: "Admin User", IssuedTo: "Jane Doe"},
	}
}

// VendorPayments returns the payment seed data
func VendorPayments() []billing.VendorPayment {
	return []billing.VendorPayment{
		{BaseEntity: shared.NewBaseEntity(), VendorCode: "V001", PaymentDate: "2024-01-30", ModeOfPayment: "NEFT", PaymentAmount: 5000},
		{BaseEntity: shared.NewBaseEntity(), VendorCode: "V001", PaymentDate: "2024-02-15", ModeOfPayment: "Cheque", PaymentAmount: 10000},
	}
}
