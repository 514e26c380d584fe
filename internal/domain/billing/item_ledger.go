package billing

import "sort"

// LedgerEventType distinguishes receipts from issues in the item ledger
type LedgerEventType string

const (
	LedgerEventReceipt LedgerEventType = "Received"
	LedgerEventIssue   LedgerEventType = "Issued"
)

// ItemLedgerEvent is one stock movement for a single item: a challan receipt
// or a department issue.
type ItemLedgerEvent struct {
	Type        LedgerEventType
	Date        string
	ReferenceNo string
	Quantity    int
	IssuedTo    string
}

// ItemLedgerRow is one reporting row of the per-item ledger. Receipt rows
// fill the challan columns, issue rows the issue columns; BalanceQuantity is
// the running balance after this event.
type ItemLedgerRow struct {
	ChallanDate      string `json:"challanDate,omitempty"`
	ChallanNo        string `json:"challanNo,omitempty"`
	ReceivedQuantity int    `json:"receivedQuantity,omitempty"`
	IssueDate        string `json:"issueDate,omitempty"`
	IssuedTo         string `json:"issuedTo,omitempty"`
	Quantity         int    `json:"quantity,omitempty"`
	BalanceQuantity  int    `json:"balanceQuantity"`
}

// BuildItemLedger folds an event sequence into ledger rows with a running
// balance (previous balance + receipt − issue, implicit prior balance 0).
// Events are ordered by date with insertion order as the tie-break; the fold
// is order-sensitive, so no other re-sorting is applied. Dates are ISO
// yyyy-mm-dd strings and sort chronologically as plain strings.
func BuildItemLedger(events []ItemLedgerEvent) []ItemLedgerRow {
	ordered := make([]ItemLedgerEvent, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date < ordered[j].Date
	})

	rows := make([]ItemLedgerRow, 0, len(ordered))
	balance := 0
	for _, ev := range ordered {
		var row ItemLedgerRow
		switch ev.Type {
		case LedgerEventReceipt:
			balance += ev.Quantity
			row = ItemLedgerRow{
				ChallanDate:      ev.Date,
				ChallanNo:        ev.ReferenceNo,
				ReceivedQuantity: ev.Quantity,
			}
		case LedgerEventIssue:
			balance -= ev.Quantity
			row = ItemLedgerRow{
				IssueDate: ev.Date,
				IssuedTo:  ev.IssuedTo,
				Quantity:  ev.Quantity,
			}
		}
		row.BalanceQuantity = balance
		rows = append(rows, row)
	}
	return rows
}
