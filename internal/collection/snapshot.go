package collection

import "time"

// ComputeSnapshot derives the full financial state of a ledger as of
// the given reference time: aggregation, balances, coverage, aging,
// classification, and risk score, in one synchronous pass.
func ComputeSnapshot(l Ledger, asOf time.Time) Snapshot {
	agg := AggregateLedger(l, asOf)
	outstanding, creditBalance := OutstandingBalance(l.Price, agg.TotalPaid)

	snap := Snapshot{
		TotalPaid:           agg.TotalPaid,
		CurrentPeriodPaid:   agg.CurrentPeriodPaid,
		Outstanding:         outstanding,
		CreditBalance:       creditBalance,
		InstallmentAmount:   l.InstallmentAmount,
		MonthsCovered:       MonthsCovered(agg.TotalPaid, l.InstallmentAmount),
		MonthsCoveredByLast: MonthsCovered(agg.LastPaymentAmount, l.InstallmentAmount),
		LastPaymentDate:     agg.LastPaymentDate,
		HasLastPayment:      agg.HasLastPayment,
		PaymentCount:        agg.PaymentCount,
		AgingDays:           PaymentAging(agg, l.ContractStart, asOf),
	}
	snap.Status = Classify(snap)
	snap.RiskScore = ScoreRisk(snap, l)
	return snap
}

// ClassifyStatus re-derives the delinquency level from an existing
// snapshot, so presentation layers can reclassify without recomputing
// the whole pipeline.
func ClassifyStatus(snap Snapshot) StatusLevel {
	return Classify(snap)
}
