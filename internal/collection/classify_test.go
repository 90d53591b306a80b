package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	base := Snapshot{
		Outstanding:       8000000,
		InstallmentAmount: 500000,
	}

	cases := []struct {
		name   string
		mutate func(*Snapshot)
		want   StatusLevel
	}{
		{"settled supersedes everything", func(s *Snapshot) {
			s.Outstanding = 0
			s.AgingDays = 400
		}, StatusLunas},
		{"aging over 90", func(s *Snapshot) { s.AgingDays = 91 }, StatusMacetTotal},
		{"aging exactly 90 stays macet", func(s *Snapshot) { s.AgingDays = 90 }, StatusMacet},
		{"aging over 60", func(s *Snapshot) { s.AgingDays = 61 }, StatusMacet},
		{"aging exactly 60 stays jatuh tempo", func(s *Snapshot) { s.AgingDays = 60 }, StatusJatuhTempo},
		{"aging over 30", func(s *Snapshot) { s.AgingDays = 31 }, StatusJatuhTempo},
		{"aging exactly 30 falls through", func(s *Snapshot) { s.AgingDays = 30 }, StatusBelumBayar},
		{"current period unpaid", func(s *Snapshot) { s.AgingDays = 5 }, StatusBelumBayar},
		{"current period partially paid", func(s *Snapshot) {
			s.AgingDays = 5
			s.CurrentPeriodPaid = 250000
		}, StatusBelumBayar},
		{"current period fully paid", func(s *Snapshot) {
			s.AgingDays = 5
			s.CurrentPeriodPaid = 500000
		}, StatusLancar},
		{"no schedule skips the current-period check", func(s *Snapshot) {
			s.AgingDays = 5
			s.InstallmentAmount = 0
		}, StatusLancar},
		{"aging sentinel classifies by the current period", func(s *Snapshot) {
			s.AgingDays = AgingUnknown
		}, StatusBelumBayar},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := base
			tc.mutate(&snap)
			assert.Equal(t, tc.want, Classify(snap))
		})
	}
}

func TestClassifySeverityMonotonicInAging(t *testing.T) {
	snap := Snapshot{
		Outstanding:       5000000,
		InstallmentAmount: 500000,
	}

	prev := StatusLancar
	for aging := 0; aging <= 200; aging++ {
		snap.AgingDays = aging
		got := Classify(snap)
		require.NotEqual(t, StatusLunas, got)
		require.GreaterOrEqual(t, got, prev, "severity regressed at aging %d", aging)
		prev = got
	}
}

func TestStatusLevelNames(t *testing.T) {
	t.Run("canonical names", func(t *testing.T) {
		assert.Equal(t, "Lancar", StatusLancar.String())
		assert.Equal(t, "BelumBayar", StatusBelumBayar.String())
		assert.Equal(t, "JatuhTempo", StatusJatuhTempo.String())
		assert.Equal(t, "Macet", StatusMacet.String())
		assert.Equal(t, "MacetTotal", StatusMacetTotal.String())
		assert.Equal(t, "Lunas", StatusLunas.String())
	})

	t.Run("display names", func(t *testing.T) {
		assert.Equal(t, "Belum Bayar", StatusBelumBayar.DisplayName())
		assert.Equal(t, "Jatuh Tempo", StatusJatuhTempo.DisplayName())
		assert.Equal(t, "Macet Total", StatusMacetTotal.DisplayName())
		assert.Equal(t, "Lancar", StatusLancar.DisplayName())
	})

	t.Run("json encodes the canonical name", func(t *testing.T) {
		b, err := StatusJatuhTempo.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `"JatuhTempo"`, string(b))
	})
}

func TestLevelFromLegacyName(t *testing.T) {
	cases := map[string]StatusLevel{
		"Lunas":              StatusLunas,
		"Hampir Lunas":       StatusLancar,
		"Lancar":             StatusLancar,
		"Jatuh Tempo":        StatusJatuhTempo,
		"Tertunggak Ringan":  StatusJatuhTempo,
		"Tertunggak Sedang":  StatusMacet,
		"Tunggakan Kritis":   StatusMacet,
		"Kredit Macet Total": StatusMacetTotal,
	}
	for name, want := range cases {
		level, ok := LevelFromLegacyName(name)
		require.True(t, ok, name)
		assert.Equal(t, want, level, name)
	}

	_, ok := LevelFromLegacyName("Status Baru")
	assert.False(t, ok)
}
