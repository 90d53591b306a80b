package collection

import "math"

// Risk weight table. Additive, then clamped to [0,100].
const (
	riskWeightOutstanding = 50

	riskAgingSevereDays  = 120
	riskAgingSevereBonus = 30
	riskAgingHighBonus   = 18
	riskAgingMildBonus   = 8

	riskThinHistoryBonus  = 12
	riskShortHistoryBonus = 6

	riskNoScheduleBonus  = 15
	riskThinAdvanceBonus = 10
	riskThinAdvanceRatio = 0.1
	riskDelinquencyBonus = 20
)

// ScoreRisk builds the composite 0-100 collection-priority score from
// an already-derived snapshot and its ledger. Pure function; identical
// inputs always score identically.
func ScoreRisk(snap Snapshot, l Ledger) int {
	score := riskWeightOutstanding * math.Min(1, snap.Outstanding/math.Max(1, l.Price))

	switch {
	case snap.AgingDays > riskAgingSevereDays:
		score += riskAgingSevereBonus
	case snap.AgingDays > AgingMacetDays:
		score += riskAgingHighBonus
	case snap.AgingDays > AgingJatuhTempoDays:
		score += riskAgingMildBonus
	}

	switch {
	case snap.PaymentCount < 3:
		score += riskThinHistoryBonus
	case snap.PaymentCount < 6:
		score += riskShortHistoryBonus
	}

	if l.InstallmentAmount == 0 && snap.Outstanding > 0 {
		score += riskNoScheduleBonus
	}
	if l.AdvancePayment/math.Max(1, l.Price) < riskThinAdvanceRatio {
		score += riskThinAdvanceBonus
	}
	if snap.Status == StatusMacet || snap.Status == StatusMacetTotal {
		score += riskDelinquencyBonus
	}

	score = math.Min(100, math.Max(0, score))
	return int(math.Round(score))
}
