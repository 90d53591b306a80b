package models

import "time"

// Consumer represents one installment contract on a housing unit.
// Price, advance payment and the schedule fields are the source of
// truth the collection engine reads; they are never derived.
type Consumer struct {
	ID                int64     `json:"id"`
	UnitID            int64     `json:"unit_id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Price             float64   `json:"price"`
	AdvancePayment    float64   `json:"advance_payment"`
	InstallmentAmount float64   `json:"installment_amount"`
	ContractStart     time.Time `json:"contract_start"`
	DueDayOfMonth     int       `json:"due_day_of_month"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
