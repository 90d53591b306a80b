package repository

import (
	"database/sql"
	"fmt"

	"github.com/propertysales/collection-service/internal/models"
)

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser creates a new admin user in the database
func (r *Repository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO sales.users (username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, user.Username, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM sales.users
		WHERE email = $1`
	err := r.db.QueryRow(query, email).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateHousingUnit creates a new housing unit in the database
func (r *Repository) CreateHousingUnit(unit *models.HousingUnit) error {
	query := `
		INSERT INTO sales.housing_units (block, number, type, price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, unit.Block, unit.Number, unit.Type, unit.Price, unit.Status).
		Scan(&unit.ID, &unit.CreatedAt, &unit.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create housing unit: %w", err)
	}
	return nil
}

// ListHousingUnits retrieves all housing units
func (r *Repository) ListHousingUnits() ([]models.HousingUnit, error) {
	query := `
		SELECT id, block, number, type, price, status, created_at, updated_at
		FROM sales.housing_units
		ORDER BY block, number`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list housing units: %w", err)
	}
	defer rows.Close()

	var units []models.HousingUnit
	for rows.Next() {
		var unit models.HousingUnit
		if err := rows.Scan(&unit.ID, &unit.Block, &unit.Number, &unit.Type,
			&unit.Price, &unit.Status, &unit.CreatedAt, &unit.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan housing unit: %w", err)
		}
		units = append(units, unit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate housing units: %w", err)
	}
	return units, nil
}

// CreateConsumer creates a new consumer contract in the database
func (r *Repository) CreateConsumer(consumer *models.Consumer) error {
	query := `
		INSERT INTO sales.consumers
			(unit_id, name, email, phone, price, advance_payment, installment_amount,
			 contract_start, due_day_of_month, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, active, created_at, updated_at`
	err := r.db.QueryRow(query, consumer.UnitID, consumer.Name, consumer.Email, consumer.Phone,
		consumer.Price, consumer.AdvancePayment, consumer.InstallmentAmount,
		consumer.ContractStart, consumer.DueDayOfMonth).
		Scan(&consumer.ID, &consumer.Active, &consumer.CreatedAt, &consumer.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}
	return nil
}

// FindConsumerByID retrieves a consumer contract by id
func (r *Repository) FindConsumerByID(id int64) (*models.Consumer, error) {
	consumer := &models.Consumer{}
	query := `
		SELECT id, unit_id, name, email, phone, price, advance_payment, installment_amount,
		       contract_start, due_day_of_month, active, created_at, updated_at
		FROM sales.consumers
		WHERE id = $1`
	err := r.db.QueryRow(query, id).
		Scan(&consumer.ID, &consumer.UnitID, &consumer.Name, &consumer.Email, &consumer.Phone,
			&consumer.Price, &consumer.AdvancePayment, &consumer.InstallmentAmount,
			&consumer.ContractStart, &consumer.DueDayOfMonth, &consumer.Active,
			&consumer.CreatedAt, &consumer.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("consumer not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find consumer: %w", err)
	}
	return consumer, nil
}

// ListActiveConsumers retrieves all active consumer contracts
func (r *Repository) ListActiveConsumers() ([]models.Consumer, error) {
	query := `
		SELECT id, unit_id, name, email, phone, price, advance_payment, installment_amount,
		       contract_start, due_day_of_month, active, created_at, updated_at
		FROM sales.consumers
		WHERE active = TRUE
		ORDER BY id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list consumers: %w", err)
	}
	defer rows.Close()

	var consumers []models.Consumer
	for rows.Next() {
		var c models.Consumer
		if err := rows.Scan(&c.ID, &c.UnitID, &c.Name, &c.Email, &c.Phone,
			&c.Price, &c.AdvancePayment, &c.InstallmentAmount,
			&c.ContractStart, &c.DueDayOfMonth, &c.Active,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan consumer: %w", err)
		}
		consumers = append(consumers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate consumers: %w", err)
	}
	return consumers, nil
}

// AppendPayment appends a payment record to a consumer's history.
// Records are insert-only; there is no update or delete.
func (r *Repository) AppendPayment(payment *models.PaymentRecord) error {
	query := `
		INSERT INTO sales.payment_records (consumer_id, date, amount, note, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, payment.ConsumerID, payment.Date, payment.Amount, payment.Note).
		Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append payment: %w", err)
	}
	return nil
}

// ListPaymentsByConsumer retrieves a consumer's payment history in
// entry order
func (r *Repository) ListPaymentsByConsumer(consumerID int64) ([]models.PaymentRecord, error) {
	query := `
		SELECT id, consumer_id, date, amount, note, created_at
		FROM sales.payment_records
		WHERE consumer_id = $1
		ORDER BY id`
	rows, err := r.db.Query(query, consumerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []models.PaymentRecord
	for rows.Next() {
		var p models.PaymentRecord
		if err := rows.Scan(&p.ID, &p.ConsumerID, &p.Date, &p.Amount, &p.Note, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}
	return payments, nil
}
