package collection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaymentAging(t *testing.T) {
	asOf := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	t.Run("counts days since the last payment", func(t *testing.T) {
		agg := Aggregate{
			HasLastPayment:  true,
			LastPaymentDate: asOf.AddDate(0, 0, -95),
		}
		assert.Equal(t, 95, PaymentAging(agg, start, asOf))
	})

	t.Run("falls back to contract start without payments", func(t *testing.T) {
		assert.Equal(t, 151, PaymentAging(Aggregate{}, start, asOf))
	})

	t.Run("no anchor at all yields the sentinel", func(t *testing.T) {
		assert.Equal(t, AgingUnknown, PaymentAging(Aggregate{}, time.Time{}, asOf))
	})

	t.Run("future anchor clamps to zero", func(t *testing.T) {
		agg := Aggregate{
			HasLastPayment:  true,
			LastPaymentDate: asOf.AddDate(0, 0, 3),
		}
		assert.Equal(t, 0, PaymentAging(agg, start, asOf))
	})

	t.Run("same day is zero", func(t *testing.T) {
		agg := Aggregate{HasLastPayment: true, LastPaymentDate: asOf}
		assert.Equal(t, 0, PaymentAging(agg, start, asOf))
	})
}
