package mapping

import (
	"github.com/SscSPs/receivables_app/internal/core/domain"
	"github.com/SscSPs/receivables_app/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:        d.InvoiceID,
		InvoiceNumber:    d.InvoiceNumber,
		ClientName:       d.ClientName,
		InvoiceDate:      d.InvoiceDate,
		DueDate:          d.DueDate,
		Amount:           d.Amount,
		Status:           string(d.Status),
		Priority:         string(d.Priority),
		PaymentDate:      d.PaymentDate,
		NextFollowUpDate: d.NextFollowUpDate,
		Notes:            d.Notes,
		AuditFields:      ToModelAuditFields(d.AuditFields),
		DeletedAt:        d.DeletedAt,
		DeletedBy:        d.DeletedBy,
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:        m.InvoiceID,
		InvoiceNumber:    m.InvoiceNumber,
		ClientName:       m.ClientName,
		InvoiceDate:      m.InvoiceDate,
		DueDate:          m.DueDate,
		Amount:           m.Amount,
		Status:           domain.InvoiceStatus(m.Status),
		Priority:         domain.InvoicePriority(m.Priority),
		PaymentDate:      m.PaymentDate,
		NextFollowUpDate: m.NextFollowUpDate,
		Notes:            m.Notes,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
		SoftDeleteFields: domain.SoftDeleteFields{
			DeletedAt: m.DeletedAt,
			DeletedBy: m.DeletedBy,
		},
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices to a slice of domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}
