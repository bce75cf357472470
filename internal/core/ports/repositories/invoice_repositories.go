package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/receivables_app/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data.
// Every read only sees active (non-deleted) invoices.
type InvoiceReader interface {
	// FindActiveInvoiceByID retrieves an active invoice by its storage ID.
	FindActiveInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// FindActiveInvoiceByNumber retrieves the active invoice carrying the given business key.
	// It returns apperrors.ErrNotFound when none exists.
	FindActiveInvoiceByNumber(ctx context.Context, invoiceNumber string) (*domain.Invoice, error)

	// ListActiveInvoices retrieves all active invoices ordered by due date.
	ListActiveInvoices(ctx context.Context) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice inserts a new invoice.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// RefreshIngestedFields overwrites the spreadsheet-derived fields of an active invoice.
	RefreshIngestedFields(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoice persists the manually editable fields of an active invoice.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error
}

// InvoiceLifecycleManager defines operations for managing invoice lifecycle
type InvoiceLifecycleManager interface {
	// MarkInvoiceDeleted soft-deletes an active invoice.
	MarkInvoiceDeleted(ctx context.Context, invoiceID string, deletedAt time.Time, deletedBy string) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
	InvoiceLifecycleManager
}
