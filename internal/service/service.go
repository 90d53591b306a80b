package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/propertysales/collection-service/internal/collection"
	"github.com/propertysales/collection-service/internal/config"
	"github.com/propertysales/collection-service/internal/models"
	"github.com/propertysales/collection-service/internal/repository"
	"github.com/propertysales/collection-service/internal/utils/email"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Service handles business logic
type Service struct {
	repo   *repository.Repository
	log    *logrus.Logger
	config *config.Config
	mail   *email.Sender
}

// NewService initializes a new service
func NewService(repo *repository.Repository, log *logrus.Logger, cfg *config.Config, mail *email.Sender) *Service {
	return &Service{repo: repo, log: log, config: cfg, mail: mail}
}

// Register creates a new admin user with hashed password
func (s *Service) Register(username, email, password string) (*models.User, error) {
	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(email, password string) (string, error) {
	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	// Generate JWT
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, nil
}

// CreateHousingUnit creates a new housing unit
func (s *Service) CreateHousingUnit(unit *models.HousingUnit) error {
	if unit.Status == "" {
		unit.Status = "available"
	}
	if err := s.repo.CreateHousingUnit(unit); err != nil {
		return err
	}
	s.log.Infof("Housing unit created: %s-%s", unit.Block, unit.Number)
	return nil
}

// ListHousingUnits retrieves all housing units
func (s *Service) ListHousingUnits() ([]models.HousingUnit, error) {
	return s.repo.ListHousingUnits()
}

// CreateConsumer creates a new consumer contract
func (s *Service) CreateConsumer(consumer *models.Consumer) error {
	if err := s.repo.CreateConsumer(consumer); err != nil {
		return err
	}
	s.log.Infof("Consumer contract created: %s (unit %d)", consumer.Name, consumer.UnitID)
	return nil
}

// AppendPayment appends a payment record to a consumer's history
func (s *Service) AppendPayment(payment *models.PaymentRecord) error {
	if _, err := s.repo.FindConsumerByID(payment.ConsumerID); err != nil {
		return err
	}
	if err := s.repo.AppendPayment(payment); err != nil {
		return err
	}
	s.log.Infof("Payment recorded for consumer %d: %q", payment.ConsumerID, payment.Amount)
	return nil
}

// LedgerForConsumer assembles the read-only ledger the collection
// engine operates on
func (s *Service) LedgerForConsumer(id int64) (collection.Ledger, *models.Consumer, error) {
	consumer, err := s.repo.FindConsumerByID(id)
	if err != nil {
		return collection.Ledger{}, nil, err
	}
	payments, err := s.repo.ListPaymentsByConsumer(id)
	if err != nil {
		return collection.Ledger{}, nil, err
	}
	return buildLedger(*consumer, payments), consumer, nil
}

// SnapshotForConsumer computes the derived financial snapshot of one
// contract as of the given reference time
func (s *Service) SnapshotForConsumer(id int64, asOf time.Time) (collection.Snapshot, error) {
	ledger, _, err := s.LedgerForConsumer(id)
	if err != nil {
		return collection.Snapshot{}, err
	}
	return collection.ComputeSnapshot(ledger, asOf), nil
}

// CollectionReport snapshots every active contract and returns the
// collection priority queue, highest risk first
func (s *Service) CollectionReport(asOf time.Time) ([]models.CollectionItem, error) {
	consumers, err := s.repo.ListActiveConsumers()
	if err != nil {
		return nil, err
	}

	items := make([]models.CollectionItem, 0, len(consumers))
	for _, c := range consumers {
		payments, err := s.repo.ListPaymentsByConsumer(c.ID)
		if err != nil {
			return nil, err
		}
		snap := collection.ComputeSnapshot(buildLedger(c, payments), asOf)
		items = append(items, models.CollectionItem{Consumer: c, Snapshot: snap})
	}

	sortByRisk(items)
	return items, nil
}

// AgingBuckets counts active contracts per aging bucket as of the
// given reference time
func (s *Service) AgingBuckets(asOf time.Time) (models.AgingReport, error) {
	items, err := s.CollectionReport(asOf)
	if err != nil {
		return models.AgingReport{}, err
	}

	snapshots := make([]collection.Snapshot, len(items))
	for i, item := range items {
		snapshots[i] = item.Snapshot
	}
	return bucketSnapshots(snapshots), nil
}

// SendOverdueReminders emails every consumer classified past due or
// worse. Failures are logged and counted, never fatal; one bad address
// must not stall the rest of the run.
func (s *Service) SendOverdueReminders(asOf time.Time) (int, error) {
	items, err := s.CollectionReport(asOf)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, item := range items {
		snap := item.Snapshot
		if snap.Status < collection.StatusJatuhTempo || snap.Status == collection.StatusLunas {
			continue
		}
		if item.Consumer.Email == "" {
			s.log.Warnf("Consumer %d has no email, skipping reminder", item.Consumer.ID)
			continue
		}
		if err := s.mail.SendCollectionReminder(item.Consumer.Email, item.Consumer.Name,
			snap, item.Consumer.DueDayOfMonth); err != nil {
			s.log.Errorf("Reminder for consumer %d failed: %v", item.Consumer.ID, err)
			continue
		}
		sent++
	}

	s.log.Infof("Overdue reminder run complete: %d sent, %d contracts checked", sent, len(items))
	return sent, nil
}

// buildLedger maps persistence records onto the engine's input type
func buildLedger(c models.Consumer, payments []models.PaymentRecord) collection.Ledger {
	entries := make([]collection.PaymentEntry, len(payments))
	for i, p := range payments {
		entries[i] = collection.PaymentEntry{Date: p.Date, Amount: p.Amount, Note: p.Note}
	}
	return collection.Ledger{
		Price:             c.Price,
		AdvancePayment:    c.AdvancePayment,
		InstallmentAmount: c.InstallmentAmount,
		ContractStart:     c.ContractStart,
		DueDayOfMonth:     c.DueDayOfMonth,
		Payments:          entries,
	}
}

// sortByRisk orders the queue highest risk first, breaking ties by
// outstanding balance and then by consumer id for a stable report
func sortByRisk(items []models.CollectionItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Snapshot.RiskScore != items[j].Snapshot.RiskScore {
			return items[i].Snapshot.RiskScore > items[j].Snapshot.RiskScore
		}
		if items[i].Snapshot.Outstanding != items[j].Snapshot.Outstanding {
			return items[i].Snapshot.Outstanding > items[j].Snapshot.Outstanding
		}
		return items[i].Consumer.ID < items[j].Consumer.ID
	})
}

// bucketSnapshots tallies snapshots into the reporting aging buckets.
// Settled contracts are counted separately regardless of aging.
func bucketSnapshots(snapshots []collection.Snapshot) models.AgingReport {
	var report models.AgingReport
	for _, snap := range snapshots {
		switch {
		case snap.Status == collection.StatusLunas:
			report.Settled++
		case snap.AgingDays > collection.AgingMacetTotalDays:
			report.Over90++
		case snap.AgingDays > collection.AgingMacetDays:
			report.Days60to90++
		case snap.AgingDays > collection.AgingJatuhTempoDays:
			report.Days30to60++
		default:
			report.Under30++
		}
	}
	return report
}
