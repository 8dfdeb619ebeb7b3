// Package email delivers outbound notifications for captured leads.
package email

import (
	"context"

	"bluepeak_backend/platform/config"
	"bluepeak_backend/platform/logger"
)

// LeadNotification is the payload forwarded to the lead inbox when a visitor
// submits contact details.
type LeadNotification struct {
	Kind            string // "viewing" or "contact"
	Reference       string
	Name            string
	Email           string
	Phone           string
	Message         string
	ListingTitle    string
	ListingLocation string
}

// Sender delivers lead notifications.
type Sender interface {
	SendLeadNotification(ctx context.Context, n LeadNotification) error
}

// NewSender returns the SMTP sender when email is configured, otherwise a
// log-only sender so lead capture keeps working without delivery.
func NewSender(cfg config.EmailConfig, log *logger.Logger) Sender {
	if !cfg.GetEmailEnabled() || cfg.GetLeadInboxAddress() == "" {
		log.Warn("email delivery not configured; lead notifications will only be logged")
		return &logSender{log: log}
	}
	return NewSMTPSender(cfg)
}

// logSender records notifications without delivering them.
type logSender struct {
	log *logger.Logger
}

func (s *logSender) SendLeadNotification(_ context.Context, n LeadNotification) error {
	s.log.Info("lead_notification",
		"kind", n.Kind,
		"reference", n.Reference,
		"name", n.Name,
		"email", n.Email,
		"phone", n.Phone,
	)
	return nil
}
