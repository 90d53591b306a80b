package models

// HousingUnit represents a unit in a housing development
type HousingUnit struct {
	ID        int64   `json:"id"`
	Block     string  `json:"block"`
	Number    string  `json:"number"`
	Type      string  `json:"type"` // e.g. "36/72", "45/90"
	Price     float64 `json:"price"`
	Status    string  `json:"status"` // available, booked, sold
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}
