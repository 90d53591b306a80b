package email

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/propertysales/collection-service/internal/collection"
	"github.com/propertysales/collection-service/internal/config"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendCollectionReminder sends an overdue-installment reminder based on
// the consumer's current snapshot
func (s *Sender) SendCollectionReminder(to, name string, snap collection.Snapshot, dueDay int) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	if snap.Status >= collection.StatusMacet {
		e.Subject = "Overdue Installment Notification"
	} else {
		e.Subject = "Installment Payment Reminder"
	}

	// Format email body
	body := fmt.Sprintf(
		"Dear %s,\n\n", name,
	)
	if snap.Status >= collection.StatusMacet {
		body += fmt.Sprintf(
			"Our records show no payment on your housing installment for %d days.\n"+
				"Your contract status is now %q with an outstanding balance of Rp %.0f.\n"+
				"Please settle your installment immediately or contact our collections office.\n",
			snap.AgingDays, snap.Status.DisplayName(), snap.Outstanding,
		)
	} else {
		body += fmt.Sprintf(
			"This is a reminder that your monthly installment of Rp %.0f is due on day %d of each month.\n"+
				"Your current outstanding balance is Rp %.0f.\n"+
				"Please ensure the payment is made to keep your contract current.\n",
			snap.InstallmentAmount, dueDay, snap.Outstanding,
		)
	}
	body += "\nBest regards,\nCollections Department"
	e.Text = []byte(body)

	// Send email
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	err := e.Send(addr, auth)
	if err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
