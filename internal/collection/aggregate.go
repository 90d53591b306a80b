package collection

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Aggregate is the rollup of a ledger's advance payment and payment
// history at a point in time.
type Aggregate struct {
	TotalPaid         float64
	CurrentPeriodPaid float64
	LastPaymentDate   time.Time
	LastPaymentAmount float64
	HasLastPayment    bool
	PaymentCount      int
}

// AggregateLedger combines the advance payment and the payment history
// into cumulative and current-month totals.
//
// Entries whose amount coerces to zero or below contribute nothing and
// are not counted as payments. The last payment is the chronological
// maximum over entries with a parseable date; history is not assumed to
// be sorted. Ties go to the later entry, since history is append-only.
func AggregateLedger(l Ledger, asOf time.Time) Aggregate {
	agg := Aggregate{TotalPaid: l.AdvancePayment}

	for _, entry := range l.Payments {
		amount := CoerceAmount(entry.Amount)
		if amount > 0 {
			agg.TotalPaid += amount
			agg.PaymentCount++
		}

		date, ok := NormalizeDate(entry.Date, asOf)
		if !ok {
			continue
		}
		if amount > 0 && sameMonth(date, asOf) {
			agg.CurrentPeriodPaid += amount
		}
		if !agg.HasLastPayment || !date.Before(agg.LastPaymentDate) {
			agg.HasLastPayment = true
			agg.LastPaymentDate = date
			if amount > 0 {
				agg.LastPaymentAmount = amount
			} else {
				agg.LastPaymentAmount = 0
			}
		}
	}

	return agg
}

// CoerceAmount reads a monetary value out of a free-form amount field.
// A value that parses as a plain number is taken as-is; otherwise all
// non-digit characters are stripped (handles "Rp 1.500.000" and
// similar) and the remaining digits are read as an integral amount.
// A value with no digits at all coerces to zero.
func CoerceAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}

	var digits strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
