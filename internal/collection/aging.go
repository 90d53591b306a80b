package collection

import "time"

// AgingUnknown marks a ledger with no temporal anchor: no parseable
// payment date and no contract start date.
const AgingUnknown = -1

// PaymentAging reports whole days elapsed since the most recent payment,
// falling back to the contract start date when no payment has a
// parseable date. A future-dated anchor reports 0, never a negative.
func PaymentAging(agg Aggregate, contractStart, asOf time.Time) int {
	anchor := agg.LastPaymentDate
	if !agg.HasLastPayment {
		if contractStart.IsZero() {
			return AgingUnknown
		}
		anchor = contractStart
	}

	days := int(asOf.Sub(anchor).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
