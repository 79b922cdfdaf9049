package service

import (
	"context"
	"testing"
	"time"

	"github.com/andy/billfold/internal/domain"
)

func makeInvoice(id string, created domain.Date, clientName string, total float64, status domain.InvoiceStatus) domain.Invoice {
	return domain.Invoice{
		ID:            id,
		InvoiceNumber: "INV-2603-001",
		CreatedDate:   created,
		DueDate:       created.AddDays(30),
		PaymentTerms:  domain.TermsNet30,
		Client:        domain.Client{ID: "c-1", Name: clientName},
		GrandTotal:    total,
		Currency:      "$",
		Status:        status,
	}
}

func TestListSummariesNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := &mockInvoiceRepo{invoices: []domain.Invoice{
		makeInvoice("inv-1", domain.NewDate(2026, time.January, 5), "Globex", 100, domain.InvoiceStatusPaid),
		makeInvoice("inv-2", domain.NewDate(2026, time.March, 1), "Initech", 200, domain.InvoiceStatusSent),
		makeInvoice("inv-3", domain.NewDate(2026, time.February, 10), "Hooli", 300, domain.InvoiceStatusOverdue),
	}}

	svc := NewDashboardService(repo)
	summaries, err := svc.ListSummaries(ctx)
	if err != nil {
		t.Fatalf("ListSummaries: %v", err)
	}

	want := []string{"inv-2", "inv-3", "inv-1"}
	if len(summaries) != len(want) {
		t.Fatalf("got %d summaries, want %d", len(summaries), len(want))
	}
	for i, id := range want {
		if summaries[i].ID != id {
			t.Errorf("summaries[%d] = %s, want %s", i, summaries[i].ID, id)
		}
	}
}

func TestGetStats(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	repo := &mockInvoiceRepo{invoices: []domain.Invoice{
		makeInvoice("inv-1", domain.NewDate(2026, time.January, 5), "Globex", 100, domain.InvoiceStatusPaid),
		makeInvoice("inv-2", domain.NewDate(2026, time.March, 1), "Initech", 200, domain.InvoiceStatusSent),
		makeInvoice("inv-3", domain.NewDate(2026, time.February, 10), "Hooli", 300, domain.InvoiceStatusOverdue),
		makeInvoice("inv-4", domain.NewDate(2026, time.March, 5), "Globex", 400, domain.InvoiceStatusPaid),
		// Outside the trailing six months; still counts in the totals
		makeInvoice("inv-5", domain.NewDate(2025, time.June, 1), "Globex", 50, domain.InvoiceStatusSent),
	}}

	svc := NewDashboardService(repo)
	stats, err := svc.GetStats(ctx, now)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}

	if stats.TotalPaid != 500 {
		t.Errorf("TotalPaid = %g, want 500", stats.TotalPaid)
	}
	if stats.TotalOutstanding != 550 {
		t.Errorf("TotalOutstanding = %g, want 550", stats.TotalOutstanding)
	}
	if stats.OverdueCount != 1 {
		t.Errorf("OverdueCount = %d, want 1", stats.OverdueCount)
	}
	if stats.StatusCounts[domain.InvoiceStatusPaid] != 2 {
		t.Errorf("paid count = %d, want 2", stats.StatusCounts[domain.InvoiceStatusPaid])
	}
	if stats.StatusCounts[domain.InvoiceStatusSent] != 2 {
		t.Errorf("sent count = %d, want 2", stats.StatusCounts[domain.InvoiceStatusSent])
	}

	if len(stats.Recent) != 5 {
		t.Fatalf("recent = %d invoices, want 5", len(stats.Recent))
	}
	if stats.Recent[0].ID != "inv-4" {
		t.Errorf("most recent = %s, want inv-4", stats.Recent[0].ID)
	}
}

func TestMonthlyRevenueBuckets(t *testing.T) {
	// End of March 2026; the six buckets run Oct 2025 through Mar 2026
	now := time.Date(2026, time.March, 31, 12, 0, 0, 0, time.UTC)

	invoices := []domain.Invoice{
		makeInvoice("inv-1", domain.NewDate(2026, time.March, 1), "Globex", 100, domain.InvoiceStatusPaid),
		makeInvoice("inv-2", domain.NewDate(2026, time.March, 15), "Globex", 50, domain.InvoiceStatusSent),
		makeInvoice("inv-3", domain.NewDate(2025, time.October, 20), "Hooli", 70, domain.InvoiceStatusPaid),
		// Before the window; ignored
		makeInvoice("inv-4", domain.NewDate(2025, time.September, 1), "Hooli", 999, domain.InvoiceStatusPaid),
	}

	months := monthlyRevenue(invoices, now)
	if len(months) != 6 {
		t.Fatalf("months = %d, want 6", len(months))
	}

	if months[0].Label != "Oct" {
		t.Errorf("first bucket = %s, want Oct", months[0].Label)
	}
	if months[5].Label != "Mar" {
		t.Errorf("last bucket = %s, want Mar", months[5].Label)
	}

	if months[0].Paid != 70 {
		t.Errorf("Oct paid = %g, want 70", months[0].Paid)
	}
	if months[5].Paid != 100 {
		t.Errorf("Mar paid = %g, want 100", months[5].Paid)
	}
	if months[5].Pending != 50 {
		t.Errorf("Mar pending = %g, want 50", months[5].Pending)
	}

	for i := 1; i < 5; i++ {
		if months[i].Paid != 0 || months[i].Pending != 0 {
			t.Errorf("bucket %s should be empty", months[i].Label)
		}
	}
}
