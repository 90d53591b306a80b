package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreRisk(t *testing.T) {
	l := Ledger{
		Price:             10000000,
		AdvancePayment:    2000000,
		InstallmentAmount: 500000,
	}

	t.Run("outstanding share dominates", func(t *testing.T) {
		snap := Snapshot{Outstanding: 5000000, PaymentCount: 10}
		// 25 outstanding, no aging, history deep enough, advance 20%
		assert.Equal(t, 25, ScoreRisk(snap, l))
	})

	t.Run("aging bonus tiers", func(t *testing.T) {
		snap := Snapshot{Outstanding: 10000000, PaymentCount: 10}

		snap.AgingDays = 30
		assert.Equal(t, 50, ScoreRisk(snap, l))
		snap.AgingDays = 31
		assert.Equal(t, 58, ScoreRisk(snap, l))
		snap.AgingDays = 61
		assert.Equal(t, 68, ScoreRisk(snap, l))
		snap.AgingDays = 121
		assert.Equal(t, 80, ScoreRisk(snap, l))
	})

	t.Run("history thinness tiers", func(t *testing.T) {
		snap := Snapshot{Outstanding: 10000000}

		snap.PaymentCount = 2
		assert.Equal(t, 62, ScoreRisk(snap, l))
		snap.PaymentCount = 5
		assert.Equal(t, 56, ScoreRisk(snap, l))
		snap.PaymentCount = 6
		assert.Equal(t, 50, ScoreRisk(snap, l))
	})

	t.Run("no schedule but still owed", func(t *testing.T) {
		noSchedule := l
		noSchedule.InstallmentAmount = 0
		snap := Snapshot{Outstanding: 10000000, PaymentCount: 10}
		assert.Equal(t, 65, ScoreRisk(snap, noSchedule))
	})

	t.Run("thin advance payment", func(t *testing.T) {
		thin := l
		thin.AdvancePayment = 500000
		snap := Snapshot{Outstanding: 10000000, PaymentCount: 10}
		assert.Equal(t, 60, ScoreRisk(snap, thin))
	})

	t.Run("delinquent status bonus", func(t *testing.T) {
		snap := Snapshot{Outstanding: 10000000, PaymentCount: 10, Status: StatusMacet}
		assert.Equal(t, 70, ScoreRisk(snap, l))
		snap.Status = StatusMacetTotal
		assert.Equal(t, 70, ScoreRisk(snap, l))
		snap.Status = StatusJatuhTempo
		assert.Equal(t, 50, ScoreRisk(snap, l))
	})

	t.Run("clamped to 100 when every weight fires", func(t *testing.T) {
		worst := Ledger{Price: 1000000, AdvancePayment: 0, InstallmentAmount: 0}
		snap := Snapshot{
			Outstanding:  5000000, // ratio above 1 is capped
			AgingDays:    400,
			PaymentCount: 0,
			Status:       StatusMacetTotal,
		}
		assert.Equal(t, 100, ScoreRisk(snap, worst))
	})

	t.Run("zero price never divides by zero", func(t *testing.T) {
		empty := Ledger{}
		score := ScoreRisk(Snapshot{}, empty)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	})
}

func TestScoreRiskBounds(t *testing.T) {
	ledgers := []Ledger{
		{},
		{Price: 1, AdvancePayment: 0, InstallmentAmount: 0},
		{Price: 10000000, AdvancePayment: 20000000, InstallmentAmount: 500000},
	}
	snaps := []Snapshot{
		{},
		{Outstanding: 1e12, AgingDays: 10000, Status: StatusMacetTotal},
		{Outstanding: -5, AgingDays: AgingUnknown, PaymentCount: 100},
	}
	for _, l := range ledgers {
		for _, snap := range snaps {
			score := ScoreRisk(snap, l)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}
