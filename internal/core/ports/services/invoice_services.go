package services

import (
	"context"

	"github.com/SscSPs/receivables_app/internal/core/domain"
	"github.com/SscSPs/receivables_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	// ListInvoices retrieves all active invoices.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
}

// InvoiceWriterSvc defines write operations for invoice data
type InvoiceWriterSvc interface {
	// UpdateInvoice applies an operator edit to an active invoice.
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, actor domain.Identity) (*domain.Invoice, error)
}

// InvoiceLifecycleSvc defines operations for managing invoice lifecycle
type InvoiceLifecycleSvc interface {
	// DeleteInvoice soft-deletes an active invoice. Only admins may delete.
	DeleteInvoice(ctx context.Context, invoiceID string, actor domain.Identity) error
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
	InvoiceLifecycleSvc
}
