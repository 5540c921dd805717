package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"infracore/internal/model"
	"infracore/internal/repository"
)

// LeadDispatcher performs the post-commit notification fan-out for a captured
// lead. It runs only after the row has been persisted; delivery failures
// inside the fan-out never undo or fail the capture, with the single
// exception of an unreadable settings row, which the dispatcher surfaces.
type LeadDispatcher interface {
	ContactCaptured(ctx context.Context, msg *model.ContactMessage) error
	QuoteCaptured(ctx context.Context, quotation *model.Quotation) error
}

// LeadService captures public form submissions.
type LeadService interface {
	SubmitContact(ctx context.Context, msg *model.ContactMessage) error
	SubmitQuote(ctx context.Context, quotation *model.Quotation) error
	// InsertQuotation persists a quotation without any notification fan-out.
	InsertQuotation(ctx context.Context, quotation *model.Quotation) error
}

type leadService struct {
	leads      repository.LeadRepository
	dispatcher LeadDispatcher
}

// NewLeadService creates a new lead capture service.
func NewLeadService(leads repository.LeadRepository, dispatcher LeadDispatcher) LeadService {
	return &leadService{leads: leads, dispatcher: dispatcher}
}

func (s *leadService) SubmitContact(ctx context.Context, msg *model.ContactMessage) error {
	msg.ID = uuid.New()
	if err := s.leads.CreateContact(ctx, msg); err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return s.dispatcher.ContactCaptured(ctx, msg)
}

func (s *leadService) SubmitQuote(ctx context.Context, quotation *model.Quotation) error {
	quotation.ID = uuid.New()
	quotation.Status = model.QuotationStatusPending
	if err := s.leads.CreateQuotation(ctx, quotation); err != nil {
		return fmt.Errorf("insert quotation: %w", err)
	}
	return s.dispatcher.QuoteCaptured(ctx, quotation)
}

func (s *leadService) InsertQuotation(ctx context.Context, quotation *model.Quotation) error {
	quotation.ID = uuid.New()
	quotation.Status = model.QuotationStatusPending
	if quotation.ClientName == "" {
		quotation.ClientName = quotation.FirstName + " " + quotation.LastName
	}
	if err := s.leads.CreateQuotation(ctx, quotation); err != nil {
		return fmt.Errorf("insert quotation: %w", err)
	}
	return nil
}
