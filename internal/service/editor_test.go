package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/andy/billfold/internal/domain"
	"github.com/rs/zerolog"
)

// mock implementations
type mockInvoiceRepo struct {
	invoices []domain.Invoice
	upserts  int
}

func (m *mockInvoiceRepo) LoadAll(ctx context.Context) ([]domain.Invoice, error) {
	out := make([]domain.Invoice, len(m.invoices))
	copy(out, m.invoices)
	return out, nil
}

func (m *mockInvoiceRepo) FindByID(ctx context.Context, id string) (*domain.Invoice, error) {
	for i := range m.invoices {
		if m.invoices[i].ID == id {
			inv := m.invoices[i]
			return &inv, nil
		}
	}
	return nil, nil
}

func (m *mockInvoiceRepo) Upsert(ctx context.Context, invoice domain.Invoice) error {
	m.upserts++
	for i := range m.invoices {
		if m.invoices[i].ID == invoice.ID {
			m.invoices[i] = invoice
			return nil
		}
	}
	m.invoices = append(m.invoices, invoice)
	return nil
}

type mockBusinessRepo struct {
	businesses []domain.Business
}

func (m *mockBusinessRepo) LoadAll(ctx context.Context) ([]domain.Business, error) {
	return m.businesses, nil
}

func (m *mockBusinessRepo) FindByName(ctx context.Context, name string) (*domain.Business, error) {
	for i := range m.businesses {
		if m.businesses[i].Name == name {
			return &m.businesses[i], nil
		}
	}
	return nil, nil
}

func (m *mockBusinessRepo) Upsert(ctx context.Context, business domain.Business) error {
	m.businesses = append(m.businesses, business)
	return nil
}

type seqIDs struct {
	n int
}

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func newTestEditor(invoices *mockInvoiceRepo, businesses *mockBusinessRepo) *Editor {
	e := NewEditor(invoices, businesses, &seqIDs{}, zerolog.Nop())
	e.now = func() time.Time { return testNow }
	return e
}

func TestStartNewSeedsDefaults(t *testing.T) {
	ctx := context.Background()
	businesses := &mockBusinessRepo{businesses: []domain.Business{{Name: "Acme LLC"}, {Name: "Second"}}}
	e := newTestEditor(&mockInvoiceRepo{}, businesses)

	inv, err := e.StartNew(ctx)
	if err != nil {
		t.Fatalf("StartNew: %v", err)
	}

	if inv.Business.Name != "Acme LLC" {
		t.Errorf("business = %q, want first saved business", inv.Business.Name)
	}
	if inv.PaymentTerms != domain.TermsNet30 {
		t.Errorf("terms = %q, want net-30", inv.PaymentTerms)
	}
	if inv.Status != domain.InvoiceStatusDraft {
		t.Errorf("status = %q, want draft", inv.Status)
	}
	if got, want := inv.DueDate, domain.NewDate(2026, time.April, 9); got != want {
		t.Errorf("due date = %s, want %s", got, want)
	}
	if !e.IsNew() {
		t.Error("IsNew() = false after StartNew")
	}
}

func TestLoadNotFound(t *testing.T) {
	e := newTestEditor(&mockInvoiceRepo{}, &mockBusinessRepo{})

	_, err := e.Load(context.Background(), "missing")
	if !errors.Is(err, ErrInvoiceNotFound) {
		t.Fatalf("Load error = %v, want ErrInvoiceNotFound", err)
	}
}

func TestSaveRequiresClientName(t *testing.T) {
	ctx := context.Background()
	repo := &mockInvoiceRepo{}
	e := newTestEditor(repo, &mockBusinessRepo{})

	if _, err := e.StartNew(ctx); err != nil {
		t.Fatalf("StartNew: %v", err)
	}

	err := e.Save(ctx)
	if !errors.Is(err, ErrClientNameRequired) {
		t.Fatalf("Save error = %v, want ErrClientNameRequired", err)
	}
	if repo.upserts != 0 {
		t.Errorf("upserts = %d, want 0 (nothing written on validation failure)", repo.upserts)
	}
}

func TestSavePersistsAndClearsIsNew(t *testing.T) {
	ctx := context.Background()
	repo := &mockInvoiceRepo{}
	e := newTestEditor(repo, &mockBusinessRepo{})

	inv, _ := e.StartNew(ctx)
	e.SetClient(domain.Client{ID: "c-1", Name: "Globex"})

	if err := e.Save(ctx); err != nil {
		t.Fatalf("Save: %v", err)
	}

	stored, _ := repo.FindByID(ctx, inv.ID)
	if stored == nil {
		t.Fatal("invoice not stored after Save")
	}
	if stored.Client.Name != "Globex" {
		t.Errorf("stored client = %q", stored.Client.Name)
	}
	if e.IsNew() {
		t.Error("IsNew() = true after Save")
	}
}

func TestLineItemEditsRecompute(t *testing.T) {
	ctx := context.Background()
	e := newTestEditor(&mockInvoiceRepo{}, &mockBusinessRepo{})

	inv, _ := e.StartNew(ctx)

	item := e.AddLineItem()
	if item.Quantity != 1 {
		t.Errorf("new item quantity = %g, want 1", item.Quantity)
	}

	items := inv.LineItems
	items[0].Description = "Design"
	items[0].Quantity = 2
	items[0].UnitPrice = 30
	items[0].Tax = 5
	e.UpdateLineItems(items)

	second := e.AddLineItem()
	items = inv.LineItems
	items[1].UnitPrice = 20
	e.UpdateLineItems(items)

	if inv.SubTotal != 80 {
		t.Errorf("subtotal = %g, want 80", inv.SubTotal)
	}
	if inv.TaxTotal != 3 {
		t.Errorf("tax total = %g, want 3", inv.TaxTotal)
	}
	if inv.GrandTotal != 83 {
		t.Errorf("grand total = %g, want 83", inv.GrandTotal)
	}

	// The first recompute moved the draft to sent
	if inv.Status != domain.InvoiceStatusSent {
		t.Errorf("status = %q, want sent", inv.Status)
	}

	e.RemoveLineItem(second.ID)
	if len(inv.LineItems) != 1 {
		t.Fatalf("line items = %d, want 1", len(inv.LineItems))
	}
	if inv.SubTotal != 60 {
		t.Errorf("subtotal after remove = %g, want 60", inv.SubTotal)
	}
}

func TestDiscountEditsRecompute(t *testing.T) {
	ctx := context.Background()
	e := newTestEditor(&mockInvoiceRepo{}, &mockBusinessRepo{})

	inv, _ := e.StartNew(ctx)
	e.AddLineItem()
	items := inv.LineItems
	items[0].Quantity = 1
	items[0].UnitPrice = 100
	e.UpdateLineItems(items)

	e.UpdateDiscount(10)
	if inv.GrandTotal != 90 {
		t.Errorf("grand total with 10%% discount = %g, want 90", inv.GrandTotal)
	}

	e.UpdateDiscountType(domain.DiscountFixed)
	if inv.GrandTotal != 90 {
		t.Errorf("grand total with fixed 10 discount = %g, want 90", inv.GrandTotal)
	}

	e.UpdateDiscount(200)
	if inv.GrandTotal != -100 {
		t.Errorf("grand total with fixed 200 discount = %g, want -100 (no clamping)", inv.GrandTotal)
	}
}

func TestSetPaymentTermsRederivesDueDate(t *testing.T) {
	ctx := context.Background()
	e := newTestEditor(&mockInvoiceRepo{}, &mockBusinessRepo{})

	inv, _ := e.StartNew(ctx)
	before := inv.SubTotal

	e.SetPaymentTerms(domain.TermsNet7)

	if got, want := inv.DueDate, domain.NewDate(2026, time.March, 17); got != want {
		t.Errorf("due date = %s, want %s", got, want)
	}
	if inv.SubTotal != before {
		t.Error("totals changed on terms edit")
	}
	// Status is untouched until the next recompute
	if inv.Status != domain.InvoiceStatusDraft {
		t.Errorf("status = %q, want draft", inv.Status)
	}
}

func TestMarkPaidWritesThroughAndSticks(t *testing.T) {
	ctx := context.Background()

	stored := domain.NewInvoice("inv-1", domain.Business{Name: "Acme"}, testNow.AddDate(0, -2, 0))
	stored.Client = domain.Client{Name: "Globex"}
	stored.Status = domain.InvoiceStatusOverdue
	repo := &mockInvoiceRepo{invoices: []domain.Invoice{*stored}}

	e := newTestEditor(repo, &mockBusinessRepo{})
	if _, err := e.Load(ctx, "inv-1"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := e.MarkPaid(ctx); err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}

	persisted, _ := repo.FindByID(ctx, "inv-1")
	if persisted.Status != domain.InvoiceStatusPaid {
		t.Fatalf("stored status = %q, want paid (write-through)", persisted.Status)
	}

	// Paid survives later recomputes even though the due date is long past
	e.AddLineItem()
	if e.Invoice().Status != domain.InvoiceStatusPaid {
		t.Errorf("status after recompute = %q, want paid", e.Invoice().Status)
	}
}
