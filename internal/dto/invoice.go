package dto

import (
	"time"

	"github.com/SscSPs/receivables_app/internal/core/domain"
)

// UpdateInvoiceRequest defines the fields an operator may edit on an invoice.
// Using pointers to differentiate between omitted fields and zero-value fields.
// Date fields take YYYY-MM-DD or RFC 3339; an empty string clears the date.
type UpdateInvoiceRequest struct {
	Status           *string `json:"status" binding:"omitempty,oneof=Pending Paid Overdue"`
	Priority         *string `json:"priority" binding:"omitempty,oneof=High Medium Low"`
	NextFollowUpDate *string `json:"nextFollowUpDate"`
	PaymentDate      *string `json:"paymentDate"`
	Notes            *string `json:"notes" binding:"omitempty,max=2000"`
}

// IsEmpty reports whether the request carries no recognized field.
func (r UpdateInvoiceRequest) IsEmpty() bool {
	return r.Status == nil && r.Priority == nil && r.NextFollowUpDate == nil && r.PaymentDate == nil && r.Notes == nil
}

// InvoiceResponse is the API representation of an active invoice.
type InvoiceResponse struct {
	InvoiceID        string     `json:"invoiceID"`
	InvoiceNumber    string     `json:"invoiceNumber"`
	ClientName       string     `json:"clientName"`
	InvoiceDate      time.Time  `json:"invoiceDate"`
	DueDate          time.Time  `json:"dueDate"`
	Amount           int64      `json:"amount"`
	Status           string     `json:"status"`
	Priority         string     `json:"priority"`
	PaymentDate      *time.Time `json:"paymentDate"`
	NextFollowUpDate *time.Time `json:"nextFollowUpDate"`
	Notes            string     `json:"notes"`
	CreatedBy        string     `json:"createdBy,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// ToInvoiceResponse converts a domain Invoice to its response DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:        inv.InvoiceID,
		InvoiceNumber:    inv.InvoiceNumber,
		ClientName:       inv.ClientName,
		InvoiceDate:      inv.InvoiceDate,
		DueDate:          inv.DueDate,
		Amount:           inv.Amount,
		Status:           string(inv.Status),
		Priority:         string(inv.Priority),
		PaymentDate:      inv.PaymentDate,
		NextFollowUpDate: inv.NextFollowUpDate,
		Notes:            inv.Notes,
		CreatedBy:        inv.CreatedBy,
		CreatedAt:        inv.CreatedAt,
		UpdatedAt:        inv.LastUpdatedAt,
	}
}

// ToInvoiceResponseSlice converts domain invoices to response DTOs, never returning nil.
func ToInvoiceResponseSlice(invoices []domain.Invoice) []InvoiceResponse {
	resp := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		resp[i] = ToInvoiceResponse(&invoices[i])
	}
	return resp
}

// IngestionStatistics reports the outcome of an upload.
type IngestionStatistics struct {
	TotalProcessed int `json:"totalProcessed"`
	Created        int `json:"created"`
	Updated        int `json:"updated"`
	Errors         int `json:"errors"`
	Skipped        int `json:"skipped"`
}

// UploadInvoicesResponse is returned after a spreadsheet has been ingested.
type UploadInvoicesResponse struct {
	Message    string              `json:"message"`
	Statistics IngestionStatistics `json:"statistics"`
}

// ToUploadInvoicesResponse wraps ingestion statistics in the upload response.
func ToUploadInvoicesResponse(stats *domain.IngestionStats) UploadInvoicesResponse {
	return UploadInvoicesResponse{
		Message: "File processed successfully",
		Statistics: IngestionStatistics{
			TotalProcessed: stats.TotalProcessed,
			Created:        stats.Created,
			Updated:        stats.Updated,
			Errors:         stats.Errors,
			Skipped:        stats.Skipped,
		},
	}
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}
