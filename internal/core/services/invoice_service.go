package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/receivables_app/internal/apperrors"
	"github.com/SscSPs/receivables_app/internal/core/domain"
	portsrepo "github.com/SscSPs/receivables_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/receivables_app/internal/core/ports/services"
	"github.com/SscSPs/receivables_app/internal/dto"
)

// updateDateLayouts are the accepted formats for date fields in an invoice edit.
var updateDateLayouts = []string{"2006-01-02", time.RFC3339}

// invoiceService implements the InvoiceSvcFacade interface
type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	now         func() time.Time
	location    *time.Location
}

// NewInvoiceService creates a new invoice service. Edited dates are truncated to midnight in loc.
func NewInvoiceService(repo portsrepo.InvoiceRepositoryFacade, loc *time.Location) portssvc.InvoiceSvcFacade {
	if loc == nil {
		loc = time.Local
	}
	return &invoiceService{
		invoiceRepo: repo,
		now:         time.Now,
		location:    loc,
	}
}

// Ensure invoiceService implements the InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListActiveInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, err
	}
	return invoices, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, actor domain.Identity) (*domain.Invoice, error) {
	if req.IsEmpty() {
		return nil, apperrors.Validationf("no updatable fields supplied")
	}

	invoice, err := s.invoiceRepo.FindActiveInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice for update", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}

	if err := s.applyUpdate(invoice, req); err != nil {
		return nil, err
	}
	invoice.LastUpdatedAt = s.now()
	invoice.LastUpdatedBy = actor.UserID

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update invoice", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Invoice updated",
		slog.String("invoice_id", invoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber))
	return invoice, nil
}

// applyUpdate validates every supplied field before mutating inv.
func (s *invoiceService) applyUpdate(inv *domain.Invoice, req dto.UpdateInvoiceRequest) error {
	updated := *inv

	if req.Status != nil {
		status, err := domain.ParseInvoiceStatus(*req.Status)
		if err != nil {
			return apperrors.Validationf("%v", err)
		}
		updated.Status = status
	}
	if req.Priority != nil {
		priority, err := domain.ParseInvoicePriority(*req.Priority)
		if err != nil {
			return apperrors.Validationf("%v", err)
		}
		updated.Priority = priority
	}
	if req.NextFollowUpDate != nil {
		d, err := s.parseOptionalDate("nextFollowUpDate", *req.NextFollowUpDate)
		if err != nil {
			return err
		}
		updated.NextFollowUpDate = d
	}
	if req.PaymentDate != nil {
		d, err := s.parseOptionalDate("paymentDate", *req.PaymentDate)
		if err != nil {
			return err
		}
		updated.PaymentDate = d
	}
	if req.Notes != nil {
		updated.Notes = *req.Notes
	}

	*inv = updated
	return nil
}

// parseOptionalDate returns nil for an empty string, which clears the field.
func (s *invoiceService) parseOptionalDate(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range updateDateLayouts {
		t, err := time.ParseInLocation(layout, value, s.location)
		if err == nil {
			d := domain.StartOfDay(t, s.location)
			return &d, nil
		}
	}
	return nil, apperrors.Validationf("%s: unrecognized date %q", field, value)
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string, actor domain.Identity) error {
	if err := s.AuthorizeAdmin(ctx, actor, "delete invoice"); err != nil {
		return err
	}

	if err := s.invoiceRepo.MarkInvoiceDeleted(ctx, invoiceID, s.now(), actor.UserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		}
		return err
	}

	s.LogInfo(ctx, "Invoice soft-deleted", slog.String("invoice_id", invoiceID))
	return nil
}
