package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromDates(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dueDate Date
		isPaid  bool
		want    InvoiceStatus
	}{
		{"paid with future due date", NewDate(2026, time.April, 1), true, InvoiceStatusPaid},
		{"paid with past due date", NewDate(2026, time.January, 1), true, InvoiceStatusPaid},
		{"due tomorrow", NewDate(2026, time.March, 11), false, InvoiceStatusSent},
		{"due next month", NewDate(2026, time.April, 10), false, InvoiceStatusSent},
		{"due yesterday", NewDate(2026, time.March, 9), false, InvoiceStatusOverdue},
		// Midnight of the due date has passed by noon, so due-today is
		// already overdue
		{"due today", NewDate(2026, time.March, 10), false, InvoiceStatusOverdue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromDates(tt.dueDate, tt.isPaid, now))
		})
	}
}

func TestDeriveStatusPaidIsSticky(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	inv := NewInvoice("inv-1", Business{Name: "Acme"}, now)
	inv.Status = InvoiceStatusPaid
	inv.DueDate = NewDate(2026, time.January, 1) // long past

	inv.DeriveStatus(now)
	assert.Equal(t, InvoiceStatusPaid, inv.Status)
}

func TestDeriveStatusDraftFlips(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	inv := NewInvoice("inv-1", Business{Name: "Acme"}, now)
	assert.Equal(t, InvoiceStatusDraft, inv.Status)

	// First derivation moves the draft to sent (net-30 due date is ahead)
	inv.DeriveStatus(now)
	assert.Equal(t, InvoiceStatusSent, inv.Status)
}
