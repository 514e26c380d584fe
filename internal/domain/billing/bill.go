package billing

import "github.com/paperstock/backend/internal/domain/shared"

// BillAmounts holds the derived money fields of a bill. They are a pure
// function of quantity, rate and the two GST percentages; no rounding is
// applied and values keep full floating-point precision. Display formatting
// is a presentation concern.
type BillAmounts struct {
	Amount      float64 `json:"amount"`
	CgstAmount  float64 `json:"cgstAmount"`
	SgstAmount  float64 `json:"sgstAmount"`
	TotalAmount float64 `json:"totalAmount"`
}

// ComputeBillAmounts derives all four amount fields from the bill inputs.
// Recomputing from the same inputs always yields identical outputs.
func ComputeBillAmounts(quantity, ratePerUnit, cgstPercent, sgstPercent float64) BillAmounts {
	amount := quantity * ratePerUnit
	cgstAmount := amount * cgstPercent / 100
	sgstAmount := amount * sgstPercent / 100
	return BillAmounts{
		Amount:      amount,
		CgstAmount:  cgstAmount,
		SgstAmount:  sgstAmount,
		TotalAmount: amount + cgstAmount + sgstAmount,
	}
}

// Bill is a vendor invoice against a challan. The derived fields (amount,
// cgstAmount, sgstAmount, totalAmount) are recomputed whenever any of the
// four inputs changes and are never independently settable; a bill with
// stale derived fields is never persisted.
type Bill struct {
	shared.BaseEntity
	BillNo      string  `json:"billNo"`
	BillDate    string  `json:"billDate"`
	ChallanNo   string  `json:"challanNo"`
	VendorCode  string  `json:"vendorCode"`
	ItemNumber  string  `json:"itemNumber"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	RatePerUnit float64 `json:"ratePerUnit"`
	CgstPercent float64 `json:"cgstPercent"`
	SgstPercent float64 `json:"sgstPercent"`
	BillAmounts
	IsPaid bool `json:"isPaid"`
}

// NewBill creates a new bill with derived fields computed from the inputs
func NewBill(billNo, billDate, challanNo, vendorCode, itemNumber string, quantity float64, unit string, ratePerUnit, cgstPercent, sgstPercent float64) (*Bill, error) {
	if billNo == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Bill number cannot be empty")
	}
	if billDate == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Bill date cannot be empty")
	}
	if vendorCode == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Vendor code cannot be empty")
	}
	if itemNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Item number cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}
	if ratePerUnit < 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Rate per unit cannot be negative")
	}
	if cgstPercent < 0 || sgstPercent < 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "GST percentage cannot be negative")
	}

	return &Bill{
		BaseEntity:  shared.NewBaseEntity(),
		BillNo:      billNo,
		BillDate:    billDate,
		ChallanNo:   challanNo,
		VendorCode:  vendorCode,
		ItemNumber:  itemNumber,
		Quantity:    quantity,
		Unit:        unit,
		RatePerUnit: ratePerUnit,
		CgstPercent: cgstPercent,
		SgstPercent: sgstPercent,
		BillAmounts: ComputeBillAmounts(quantity, ratePerUnit, cgstPercent, sgstPercent),
		IsPaid:      false,
	}, nil
}

// UpdateInputs replaces the four amount inputs and recomputes every derived
// field atomically.
func (b *Bill) UpdateInputs(quantity, ratePerUnit, cgstPercent, sgstPercent float64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}
	if ratePerUnit < 0 {
		return shared.NewDomainError("INVALID_INPUT", "Rate per unit cannot be negative")
	}
	if cgstPercent < 0 || sgstPercent < 0 {
		return shared.NewDomainError("INVALID_INPUT", "GST percentage cannot be negative")
	}

	b.Quantity = quantity
	b.RatePerUnit = ratePerUnit
	b.CgstPercent = cgstPercent
	b.SgstPercent = sgstPercent
	b.BillAmounts = ComputeBillAmounts(quantity, ratePerUnit, cgstPercent, sgstPercent)
	b.Touch()
	return nil
}

// MarkPaid marks the bill as paid
func (b *Bill) MarkPaid() {
	b.IsPaid = true
	b.Touch()
}
