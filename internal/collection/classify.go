package collection

import "fmt"

// StatusLevel is the delinquency classification of a ledger. The five
// base levels are totally ordered by severity; StatusLunas is a
// terminal pseudo-state for a settled contract and supersedes them all.
type StatusLevel int

const (
	StatusLancar     StatusLevel = iota // current
	StatusBelumBayar                    // current period unpaid, within grace
	StatusJatuhTempo                    // past due, short aging
	StatusMacet                         // delinquent
	StatusMacetTotal                    // severely delinquent
	StatusLunas                         // settled
)

// Aging thresholds, in days, between consecutive delinquency levels.
// These match the aging buckets used by the reporting views.
const (
	AgingJatuhTempoDays = 30
	AgingMacetDays      = 60
	AgingMacetTotalDays = 90
)

func (s StatusLevel) String() string {
	switch s {
	case StatusLancar:
		return "Lancar"
	case StatusBelumBayar:
		return "BelumBayar"
	case StatusJatuhTempo:
		return "JatuhTempo"
	case StatusMacet:
		return "Macet"
	case StatusMacetTotal:
		return "MacetTotal"
	case StatusLunas:
		return "Lunas"
	}
	return fmt.Sprintf("StatusLevel(%d)", int(s))
}

// DisplayName is the human-facing Indonesian label for reports.
func (s StatusLevel) DisplayName() string {
	switch s {
	case StatusBelumBayar:
		return "Belum Bayar"
	case StatusJatuhTempo:
		return "Jatuh Tempo"
	case StatusMacetTotal:
		return "Macet Total"
	default:
		return s.String()
	}
}

// MarshalJSON encodes the level as its canonical name.
func (s StatusLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// legacyStatusNames maps the eight-level vocabulary used by the old
// reporting views onto the canonical levels. Presentation lookup only,
// never an input to classification.
var legacyStatusNames = map[string]StatusLevel{
	"Lunas":              StatusLunas,
	"Hampir Lunas":       StatusLancar,
	"Lancar":             StatusLancar,
	"Jatuh Tempo":        StatusJatuhTempo,
	"Tertunggak Ringan":  StatusJatuhTempo,
	"Tertunggak Sedang":  StatusMacet,
	"Tunggakan Kritis":   StatusMacet,
	"Kredit Macet Total": StatusMacetTotal,
}

// LevelFromLegacyName resolves a status label from the old reporting
// vocabulary to its canonical level.
func LevelFromLegacyName(name string) (StatusLevel, bool) {
	level, ok := legacyStatusNames[name]
	return level, ok
}

// Classify maps a snapshot to its delinquency level. Rules apply in
// order, first match wins; the ordering carries business consequences
// (who gets visited, called, or written off) and must not change.
func Classify(snap Snapshot) StatusLevel {
	switch {
	case snap.Outstanding <= 0:
		return StatusLunas
	case snap.AgingDays > AgingMacetTotalDays:
		return StatusMacetTotal
	case snap.AgingDays > AgingMacetDays:
		return StatusMacet
	case snap.AgingDays > AgingJatuhTempoDays:
		return StatusJatuhTempo
	case snap.InstallmentAmount > 0 && snap.CurrentPeriodPaid < snap.InstallmentAmount:
		return StatusBelumBayar
	default:
		return StatusLancar
	}
}
