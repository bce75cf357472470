package services

import (
	"context"
	"io"

	"github.com/SscSPs/receivables_app/internal/core/domain"
)

// IngestionSvc turns uploaded spreadsheets into invoice records.
type IngestionSvc interface {
	// IngestSpreadsheet parses an uploaded file, classifies every usable row and reconciles the
	// result against stored invoices. It fails with apperrors.ErrInvalidUpload when the file is
	// not tabular or holds no valid rows.
	IngestSpreadsheet(ctx context.Context, filename string, r io.Reader, actor domain.Identity) (*domain.IngestionStats, error)

	// Reconcile updates or creates one invoice per candidate. A failing candidate is counted
	// and logged; it never aborts the batch.
	Reconcile(ctx context.Context, candidates []domain.InvoiceCandidate) domain.IngestionStats
}
