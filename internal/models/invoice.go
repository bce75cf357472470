package models

import "time"

// Invoice is the persisted row of the invoices table.
type Invoice struct {
	InvoiceID        string     `db:"invoice_id"`
	InvoiceNumber    string     `db:"invoice_number"`
	ClientName       string     `db:"client_name"`
	InvoiceDate      time.Time  `db:"invoice_date"`
	DueDate          time.Time  `db:"due_date"`
	Amount           int64      `db:"amount"`
	Status           string     `db:"status"`
	Priority         string     `db:"priority"`
	PaymentDate      *time.Time `db:"payment_date"`
	NextFollowUpDate *time.Time `db:"next_follow_up_date"`
	Notes            string     `db:"notes"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
	DeletedBy *string    `db:"deleted_by"`
}
