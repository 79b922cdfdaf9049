package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/andy/billfold/internal/app"
	"github.com/andy/billfold/internal/domain"
	"github.com/andy/billfold/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DashboardModel represents the dashboard home screen
type DashboardModel struct {
	app *app.App

	stats   *service.DashboardStats
	loading bool
	err     error
}

type dashboardDataMsg struct {
	stats *service.DashboardStats
	err   error
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(a *app.App) tea.Model {
	return &DashboardModel{
		app:     a,
		loading: true,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	return m.loadData()
}

func (m *DashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.app.Dashboard.GetStats(context.Background(), time.Now())
		if err != nil {
			return dashboardDataMsg{err: err}
		}
		return dashboardDataMsg{stats: stats}
	}
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		m.stats = msg.stats
		return m, nil

	case RefreshDataMsg:
		m.loading = true
		return m, m.loadData()
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	if m.loading {
		return "Loading dashboard..."
	}

	if m.err != nil {
		return lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %v", m.err))
	}

	stats := m.stats

	var s string

	// Summary line
	s += fmt.Sprintf("  Outstanding: %-14s  Paid: %-14s  Overdue: %d\n",
		domain.FormatAmount(stats.TotalOutstanding, "$"),
		domain.FormatAmount(stats.TotalPaid, "$"),
		stats.OverdueCount,
	)

	// Status counts
	s += subtitleStyle.Render(fmt.Sprintf("  sent: %d  paid: %d  overdue: %d  draft: %d",
		stats.StatusCounts[domain.InvoiceStatusSent],
		stats.StatusCounts[domain.InvoiceStatusPaid],
		stats.StatusCounts[domain.InvoiceStatusOverdue],
		stats.StatusCounts[domain.InvoiceStatusDraft],
	)) + "\n"

	// Monthly revenue
	s += "\n" + m.renderMonthly()

	// Recent invoices
	s += "\n" + m.renderRecent()

	return s
}

func (m *DashboardModel) renderMonthly() string {
	s := "  Revenue (Last 6 Months)\n"

	max := 0.0
	for _, month := range m.stats.Monthly {
		if total := month.Paid + month.Pending; total > max {
			max = total
		}
	}

	if max == 0 {
		return s + subtitleStyle.Render("  No revenue yet") + "\n"
	}

	paidStyle := lipgloss.NewStyle().Foreground(successColor)
	pendingStyle := lipgloss.NewStyle().Foreground(warningColor)

	for _, month := range m.stats.Monthly {
		bar := paidStyle.Render(revenueBar(month.Paid, max, 30)) +
			pendingStyle.Render(revenueBar(month.Pending, max, 30))
		s += fmt.Sprintf("  %-4s %-12s %s\n",
			month.Label,
			domain.FormatAmount(month.Paid+month.Pending, "$"),
			bar,
		)
	}

	s += subtitleStyle.Render("  █ paid  █ pending") + "\n"
	return s
}

func (m *DashboardModel) renderRecent() string {
	header := "  Recent Invoices\n"
	if len(m.stats.Recent) == 0 {
		return header + subtitleStyle.Render("  No invoices yet") + "\n"
	}

	s := header
	for _, inv := range m.stats.Recent {
		s += fmt.Sprintf("  %-14s %-20s %-12s %12s  %s\n",
			inv.InvoiceNumber,
			truncateStr(inv.ClientName, 20),
			inv.CreatedDate,
			domain.FormatAmount(inv.GrandTotal, "$"),
			statusBadge(inv.Status),
		)
	}

	return s
}
