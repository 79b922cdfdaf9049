package domain

import "time"

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// StatusFromDates derives the non-draft status of an invoice. Paid always
// wins, even with a due date in the future. Otherwise an invoice is overdue
// once the clock passes midnight of its due date, and sent before that.
// Draft is never returned; it exists only as the pre-persistence default.
func StatusFromDates(dueDate Date, isPaid bool, now time.Time) InvoiceStatus {
	if isPaid {
		return InvoiceStatusPaid
	}
	if dueDate.Time().Before(now) {
		return InvoiceStatusOverdue
	}
	return InvoiceStatusSent
}
