package collection

import "math"

// OutstandingBalance splits the difference between price and total paid
// into the amount still owed and any overpayment. At most one of the
// two is non-zero.
func OutstandingBalance(price, totalPaid float64) (outstanding, creditBalance float64) {
	outstanding = math.Max(0, price-totalPaid)
	creditBalance = math.Max(0, totalPaid-price)
	return outstanding, creditBalance
}

// MonthsCovered reports how many installment periods the given amount
// satisfies. A zero or missing installment amount yields 0, which
// callers read as "no schedule defined" rather than zero progress.
func MonthsCovered(amount, installmentAmount float64) int {
	if installmentAmount <= 0 || amount <= 0 {
		return 0
	}
	return int(math.Floor(amount / installmentAmount))
}
