package collection

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseLedger() Ledger {
	return Ledger{
		Price:             10000000,
		AdvancePayment:    2000000,
		InstallmentAmount: 500000,
		ContractStart:     time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		DueDayOfMonth:     5,
	}
}

func TestComputeSnapshotScenarios(t *testing.T) {
	t.Run("fresh contract, empty history", func(t *testing.T) {
		l := baseLedger()
		snap := ComputeSnapshot(l, l.ContractStart)

		assert.Equal(t, 2000000.0, snap.TotalPaid)
		assert.Equal(t, 8000000.0, snap.Outstanding)
		assert.Equal(t, 0.0, snap.CreditBalance)
		assert.Equal(t, 4, snap.MonthsCovered)
		assert.Equal(t, 0, snap.AgingDays)
		assert.Equal(t, StatusBelumBayar, snap.Status)
	})

	t.Run("payment 95 days stale is macet total regardless of size", func(t *testing.T) {
		asOf := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
		l := baseLedger()
		l.Payments = []PaymentEntry{
			{Date: asOf.AddDate(0, 0, -95).Format("2006-01-02"), Amount: "500000"},
		}
		snap := ComputeSnapshot(l, asOf)

		require.Greater(t, snap.Outstanding, 0.0)
		assert.Equal(t, 95, snap.AgingDays)
		assert.Equal(t, StatusMacetTotal, snap.Status)
	})

	t.Run("settled exactly", func(t *testing.T) {
		l := baseLedger()
		l.AdvancePayment = 10000000
		snap := ComputeSnapshot(l, time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC))

		assert.Equal(t, 0.0, snap.Outstanding)
		assert.Equal(t, 0.0, snap.CreditBalance)
		assert.Equal(t, StatusLunas, snap.Status)
	})

	t.Run("overpaid", func(t *testing.T) {
		l := baseLedger()
		l.AdvancePayment = 10500000
		snap := ComputeSnapshot(l, time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC))

		assert.Equal(t, 0.0, snap.Outstanding)
		assert.Equal(t, 500000.0, snap.CreditBalance)
		assert.Equal(t, StatusLunas, snap.Status)
	})

	t.Run("current month fully paid is lancar", func(t *testing.T) {
		asOf := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)
		l := baseLedger()
		l.Payments = []PaymentEntry{
			{Date: "2026-03-05", Amount: "500000"},
		}
		snap := ComputeSnapshot(l, asOf)

		assert.Equal(t, 500000.0, snap.CurrentPeriodPaid)
		assert.Equal(t, 1, snap.MonthsCoveredByLast)
		assert.Equal(t, StatusLancar, snap.Status)
	})
}

func TestComputeSnapshotIdempotent(t *testing.T) {
	asOf := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	l := baseLedger()
	l.Payments = []PaymentEntry{
		{Date: "2026-02-10", Amount: "Rp 500.000"},
		{Date: "10", Amount: "250000", Note: "transfer"},
		{Date: "tanggal lupa", Amount: "abc"},
	}

	first := ComputeSnapshot(l, asOf)
	second := ComputeSnapshot(l, asOf)
	assert.Equal(t, first, second)
}

func TestComputeSnapshotNonNegative(t *testing.T) {
	asOf := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	histories := [][]PaymentEntry{
		nil,
		{{Date: "2026-02-10", Amount: "-9000000"}},
		{{Date: "??", Amount: "??"}},
		{{Date: "2026-02-10", Amount: "99999999999"}},
	}
	for i, payments := range histories {
		l := baseLedger()
		l.Payments = payments
		snap := ComputeSnapshot(l, asOf)
		assert.GreaterOrEqual(t, snap.Outstanding, 0.0, "history %d", i)
		assert.GreaterOrEqual(t, snap.CreditBalance, 0.0, "history %d", i)
	}
}

func TestComputeSnapshotOutstandingMonotonicInPayments(t *testing.T) {
	asOf := time.Date(2026, time.December, 15, 0, 0, 0, 0, time.UTC)
	l := baseLedger()

	prev := ComputeSnapshot(l, asOf).Outstanding
	for i := 0; i < 30; i++ {
		l.Payments = append(l.Payments, PaymentEntry{
			Date:   fmt.Sprintf("2026-%02d-10", i%12+1),
			Amount: "500000",
		})
		outstanding := ComputeSnapshot(l, asOf).Outstanding
		require.LessOrEqual(t, outstanding, prev)
		prev = outstanding
	}
}

func TestClassifyStatusMatchesPipeline(t *testing.T) {
	asOf := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	l := baseLedger()
	l.Payments = []PaymentEntry{
		{Date: "2026-03-10", Amount: "500000"},
	}

	snap := ComputeSnapshot(l, asOf)
	assert.Equal(t, snap.Status, ClassifyStatus(snap))
}
