package billing

// LedgerBalance is the net position of a vendor account:
// total invoiced minus total paid.
type LedgerBalance struct {
	TotalInvoice float64 `json:"totalInvoice"`
	TotalPayment float64 `json:"totalPayment"`
	Balance      float64 `json:"balance"`
}

// ComputeLedgerBalance aggregates vendor-scoped invoice and payment amounts.
// Correct for empty inputs: an empty ledger has a zero balance.
func ComputeLedgerBalance(invoiceAmounts, paymentAmounts []float64) LedgerBalance {
	var totalInvoice, totalPayment float64
	for _, amount := range invoiceAmounts {
		totalInvoice += amount
	}
	for _, amount := range paymentAmounts {
		totalPayment += amount
	}
	return LedgerBalance{
		TotalInvoice: totalInvoice,
		TotalPayment: totalPayment,
		Balance:      totalInvoice - totalPayment,
	}
}
