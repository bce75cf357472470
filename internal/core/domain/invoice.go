package domain

import (
	"fmt"
	"time"
)

// InvoiceStatus is the collection state of a receivable.
type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "Pending"
	StatusPaid    InvoiceStatus = "Paid"
	StatusOverdue InvoiceStatus = "Overdue"
)

// InvoicePriority drives the follow-up call schedule.
type InvoicePriority string

const (
	PriorityHigh   InvoicePriority = "High"
	PriorityMedium InvoicePriority = "Medium"
	PriorityLow    InvoicePriority = "Low"
)

// ParseInvoiceStatus returns the status named by s or an error if s is not one of the enumerated values.
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	switch st := InvoiceStatus(s); st {
	case StatusPending, StatusPaid, StatusOverdue:
		return st, nil
	}
	return "", fmt.Errorf("unknown invoice status %q", s)
}

// ParseInvoicePriority returns the priority named by s or an error if s is not one of the enumerated values.
func ParseInvoicePriority(s string) (InvoicePriority, error) {
	switch p := InvoicePriority(s); p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p, nil
	}
	return "", fmt.Errorf("unknown invoice priority %q", s)
}

// Invoice is an accounts-receivable record ("factura").
// InvoiceNumber is the business key; InvoiceID is the storage identity.
type Invoice struct {
	InvoiceID        string          `json:"invoiceID"`
	InvoiceNumber    string          `json:"invoiceNumber"`
	ClientName       string          `json:"clientName"`
	InvoiceDate      time.Time       `json:"invoiceDate"`
	DueDate          time.Time       `json:"dueDate"`
	Amount           int64           `json:"amount"`
	Status           InvoiceStatus   `json:"status"`
	Priority         InvoicePriority `json:"priority"`
	PaymentDate      *time.Time      `json:"paymentDate,omitempty"`
	NextFollowUpDate *time.Time      `json:"nextFollowUpDate,omitempty"`
	Notes            string          `json:"notes"`
	AuditFields
	SoftDeleteFields
}

// InvoiceCandidate is a normalized and classified spreadsheet row awaiting reconciliation.
type InvoiceCandidate struct {
	RowNumber        int // 1-based row in the uploaded sheet, for diagnostics
	InvoiceNumber    string
	ClientName       string
	InvoiceDate      time.Time
	DueDate          time.Time
	Amount           int64
	Status           InvoiceStatus
	Priority         InvoicePriority
	NextFollowUpDate *time.Time
	CreatedBy        string
}

// ApplyCandidate overwrites the ingestion-derived fields of inv with those of c.
// Manually maintained fields (notes, payment date) are left untouched.
func (inv *Invoice) ApplyCandidate(c InvoiceCandidate) {
	inv.ClientName = c.ClientName
	inv.InvoiceDate = c.InvoiceDate
	inv.DueDate = c.DueDate
	inv.Amount = c.Amount
	inv.Status = c.Status
	inv.Priority = c.Priority
	inv.NextFollowUpDate = c.NextFollowUpDate
}

// IngestionStats summarizes one upload.
type IngestionStats struct {
	TotalProcessed int `json:"totalProcessed"`
	Created        int `json:"created"`
	Updated        int `json:"updated"`
	Errors         int `json:"errors"`
	Skipped        int `json:"skipped"`
}
