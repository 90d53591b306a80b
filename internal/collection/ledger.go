// Package collection derives collection status from a consumer's raw
// financial ledger: outstanding balance, installment coverage, payment
// aging, a delinquency level, and a composite risk score.
//
// Every function is a pure computation over its inputs. The reference
// time is always passed in as asOf, never read from the wall clock, so
// identical inputs always produce identical snapshots.
package collection

import "time"

// PaymentEntry is a single raw payment-history record. Date and Amount
// are kept exactly as entered; records are uncurated and may contain
// non-numeric noise.
type PaymentEntry struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
	Note   string `json:"note,omitempty"`
}

// Ledger holds the source-of-truth financial facts for one contract.
// The engine treats it as read-only.
type Ledger struct {
	Price             float64        `json:"price"`
	AdvancePayment    float64        `json:"advance_payment"`
	InstallmentAmount float64        `json:"installment_amount"`
	ContractStart     time.Time      `json:"contract_start"`
	DueDayOfMonth     int            `json:"due_day_of_month"`
	Payments          []PaymentEntry `json:"payments"`
}

// Snapshot is the derived financial state of a ledger at a point in
// time. It is recomputed on every call and never persisted.
type Snapshot struct {
	TotalPaid           float64     `json:"total_paid"`
	CurrentPeriodPaid   float64     `json:"current_period_paid"`
	Outstanding         float64     `json:"outstanding"`
	CreditBalance       float64     `json:"credit_balance"`
	InstallmentAmount   float64     `json:"installment_amount"`
	MonthsCovered       int         `json:"months_covered"`
	MonthsCoveredByLast int         `json:"months_covered_by_last_payment"`
	LastPaymentDate     time.Time   `json:"last_payment_date,omitzero"`
	HasLastPayment      bool        `json:"has_last_payment"`
	PaymentCount        int         `json:"payment_count"`
	AgingDays           int         `json:"aging_days"`
	Status              StatusLevel `json:"status"`
	RiskScore           int         `json:"risk_score"`
}
