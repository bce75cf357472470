package domain

import "time"

// DefaultGracePeriodDays is the interval between invoice date and due date.
const DefaultGracePeriodDays = 30

// followUpWindowDays is how close to its due date a pending invoice must be before a call is scheduled.
const followUpWindowDays = 3

// Classification holds the values derived from an invoice date on ingestion.
type Classification struct {
	InvoiceDate      time.Time
	DueDate          time.Time
	Status           InvoiceStatus
	Priority         InvoicePriority
	NextFollowUpDate *time.Time
}

// ClassifyInvoice derives due date, status, priority and next follow-up for an invoice.
// today must already be truncated to midnight in the business time zone.
// A nil invoiceDate (unparseable cell) is replaced by today.
// Paid is never produced here; it is only set by a manual edit.
func ClassifyInvoice(invoiceDate *time.Time, today time.Time, gracePeriodDays int) Classification {
	issued := today
	if invoiceDate != nil {
		issued = *invoiceDate
	}
	due := issued.AddDate(0, 0, gracePeriodDays)

	c := Classification{
		InvoiceDate: issued,
		DueDate:     due,
		Status:      StatusPending,
		Priority:    PriorityLow,
	}

	tomorrow := today.AddDate(0, 0, 1)
	switch {
	case due.Before(today):
		c.Status = StatusOverdue
		c.Priority = PriorityHigh
		c.NextFollowUpDate = &tomorrow
	case DaysBetween(today, due) <= followUpWindowDays:
		c.Priority = PriorityMedium
		c.NextFollowUpDate = &tomorrow
	}
	return c
}

// DaysBetween counts calendar days from a to b, ignoring time of day and DST shifts.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
