// Package service forwards captured viewing requests to the agency inbox.
// Leads are never persisted; they exist only within the request/response
// cycle.
package service

import (
	"context"

	"github.com/google/uuid"

	"bluepeak_backend/internal/email"
	"bluepeak_backend/internal/leads/transport"
	"bluepeak_backend/platform/apperr"
	"bluepeak_backend/platform/logger"
	"bluepeak_backend/platform/phone"
)

// ListingSummary is the minimal listing information the leads domain needs
// for the notification email.
type ListingSummary struct {
	ID       string
	Title    string
	Location string
}

// ListingReader resolves listing summaries for notification context. The
// implementation is provided by the composition root.
type ListingReader interface {
	Summary(id string) (ListingSummary, bool)
}

// Service handles lead capture and forwarding.
type Service struct {
	sender   email.Sender
	listings ListingReader
	log      *logger.Logger
}

// New creates a new leads service.
func New(sender email.Sender, listings ListingReader, log *logger.Logger) *Service {
	return &Service{sender: sender, listings: listings, log: log}
}

// SubmitViewing validates and forwards a viewing request, returning a
// reference id for the confirmation message.
func (s *Service) SubmitViewing(ctx context.Context, req transport.ViewingRequest) (transport.ViewingResponse, error) {
	notification := email.LeadNotification{
		Kind:      "contact",
		Reference: uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     phone.NormalizeE164(req.Phone),
		Message:   req.Message,
	}

	if req.ListingID != "" {
		summary, ok := s.listings.Summary(req.ListingID)
		if !ok {
			return transport.ViewingResponse{}, apperr.NotFound("listing not found")
		}
		notification.Kind = "viewing"
		notification.ListingTitle = summary.Title
		notification.ListingLocation = summary.Location
	}

	if err := s.sender.SendLeadNotification(ctx, notification); err != nil {
		s.log.EmailError(notification.Kind, req.Email, err)
		return transport.ViewingResponse{}, apperr.Wrap(apperr.KindUnavailable, "could not deliver your request", err).WithOp("leads.SubmitViewing")
	}

	return transport.ViewingResponse{
		Reference: notification.Reference,
		Status:    "received",
	}, nil
}
