package models

// PaymentRecord is a single payment event on a contract. Date and
// Amount are stored exactly as entered by the admin; records are
// append-only and never reordered or edited.
type PaymentRecord struct {
	ID         int64  `json:"id"`
	ConsumerID int64  `json:"consumer_id"`
	Date       string `json:"date"`
	Amount     string `json:"amount"`
	Note       string `json:"note,omitempty"`
	CreatedAt  string `json:"created_at"`
}
