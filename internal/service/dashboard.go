package service

import (
	"context"
	"sort"
	"time"

	"github.com/andy/billfold/internal/domain"
	"github.com/andy/billfold/internal/repository"
)

// MonthRevenue is one bucket of the trailing-months revenue series.
type MonthRevenue struct {
	Label   string // short month name, e.g. "Aug"
	Paid    float64
	Pending float64
}

// DashboardStats aggregates the invoice collection for the dashboard. All
// fields are derived read-only views; nothing here is stored.
type DashboardStats struct {
	TotalOutstanding float64
	TotalPaid        float64
	OverdueCount     int
	Recent           []domain.InvoiceSummary
	Monthly          []MonthRevenue
	StatusCounts     map[domain.InvoiceStatus]int
}

// DashboardService computes listing and dashboard projections.
type DashboardService struct {
	invoiceRepo repository.InvoiceRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(invoiceRepo repository.InvoiceRepository) *DashboardService {
	return &DashboardService{invoiceRepo: invoiceRepo}
}

// ListSummaries projects every stored invoice, newest first.
func (s *DashboardService) ListSummaries(ctx context.Context) ([]domain.InvoiceSummary, error) {
	invoices, err := s.invoiceRepo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.InvoiceSummary, 0, len(invoices))
	for i := range invoices {
		summaries = append(summaries, invoices[i].Summary())
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[j].CreatedDate.Before(summaries[i].CreatedDate)
	})
	return summaries, nil
}

// GetStats aggregates totals, counts, recent invoices, and the trailing
// six-month revenue series as of now.
func (s *DashboardService) GetStats(ctx context.Context, now time.Time) (*DashboardStats, error) {
	invoices, err := s.invoiceRepo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		StatusCounts: make(map[domain.InvoiceStatus]int),
	}

	for i := range invoices {
		inv := &invoices[i]
		if inv.Status == domain.InvoiceStatusPaid {
			stats.TotalPaid += inv.GrandTotal
		} else {
			stats.TotalOutstanding += inv.GrandTotal
		}
		if inv.Status == domain.InvoiceStatusOverdue {
			stats.OverdueCount++
		}
		stats.StatusCounts[inv.Status]++
	}

	summaries, err := s.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}
	if len(summaries) > 5 {
		summaries = summaries[:5]
	}
	stats.Recent = summaries

	stats.Monthly = monthlyRevenue(invoices, now)
	return stats, nil
}

// monthlyRevenue buckets grand totals into the six months ending at now,
// split by paid versus everything else.
func monthlyRevenue(invoices []domain.Invoice, now time.Time) []MonthRevenue {
	type bucket struct {
		year  int
		month time.Month
	}

	// Anchor on the first of the month so day-of-month overflow can't skip
	// or double a bucket.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	months := make([]MonthRevenue, 6)
	index := make(map[bucket]int, 6)
	for i := 0; i < 6; i++ {
		t := anchor.AddDate(0, i-5, 0)
		months[i] = MonthRevenue{Label: t.Format("Jan")}
		index[bucket{t.Year(), t.Month()}] = i
	}

	for i := range invoices {
		inv := &invoices[i]
		created := inv.CreatedDate.Time()
		pos, ok := index[bucket{created.Year(), created.Month()}]
		if !ok {
			continue
		}
		if inv.Status == domain.InvoiceStatusPaid {
			months[pos].Paid += inv.GrandTotal
		} else {
			months[pos].Pending += inv.GrandTotal
		}
	}

	return months
}
