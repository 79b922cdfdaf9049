package service

import (
	"context"
	"errors"
	"time"

	"github.com/andy/billfold/internal/domain"
	"github.com/andy/billfold/internal/id"
	"github.com/andy/billfold/internal/repository"
	"github.com/rs/zerolog"
)

var (
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrClientNameRequired = errors.New("client name is required")
)

// Editor manages one invoice editing session. It owns a single in-memory
// invoice from load until save; every mutation entry point that can change
// money rederives the totals and the status before returning, so a
// subsequent save always observes consistent derived fields.
type Editor struct {
	invoiceRepo  repository.InvoiceRepository
	businessRepo repository.BusinessRepository
	ids          id.Provider
	now          func() time.Time
	log          zerolog.Logger

	invoice *domain.Invoice
	isNew   bool
}

// NewEditor creates an editor with no active session.
func NewEditor(
	invoiceRepo repository.InvoiceRepository,
	businessRepo repository.BusinessRepository,
	ids id.Provider,
	log zerolog.Logger,
) *Editor {
	return &Editor{
		invoiceRepo:  invoiceRepo,
		businessRepo: businessRepo,
		ids:          ids,
		now:          time.Now,
		log:          log,
	}
}

// StartNew begins a session on a fresh draft invoice. The business snapshot
// seeds from the first saved business, when one exists.
func (e *Editor) StartNew(ctx context.Context) (*domain.Invoice, error) {
	var business domain.Business
	businesses, err := e.businessRepo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(businesses) > 0 {
		business = businesses[0]
	}

	e.invoice = domain.NewInvoice(e.ids.NewID(), business, e.now())
	e.isNew = true
	return e.invoice, nil
}

// Load begins a session on a stored invoice.
func (e *Editor) Load(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := e.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	e.invoice = invoice
	e.isNew = false
	return e.invoice, nil
}

// Invoice returns the invoice owned by the current session, or nil.
func (e *Editor) Invoice() *domain.Invoice {
	return e.invoice
}

// IsNew reports whether the session invoice has never been saved.
func (e *Editor) IsNew() bool {
	return e.isNew
}

// AddLineItem appends an empty line item with a generated ID and recomputes.
func (e *Editor) AddLineItem() *domain.LineItem {
	e.invoice.LineItems = append(e.invoice.LineItems, domain.NewLineItem(e.ids.NewID()))
	e.recompute()
	return &e.invoice.LineItems[len(e.invoice.LineItems)-1]
}

// UpdateLineItems replaces the line items and recomputes.
func (e *Editor) UpdateLineItems(items []domain.LineItem) {
	e.invoice.LineItems = items
	e.recompute()
}

// RemoveLineItem deletes the line item with the given ID and recomputes.
func (e *Editor) RemoveLineItem(itemID string) {
	items := e.invoice.LineItems
	kept := items[:0]
	for _, item := range items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	e.invoice.LineItems = kept
	e.recompute()
}

// UpdateDiscount sets the discount value and recomputes.
func (e *Editor) UpdateDiscount(discount float64) {
	e.invoice.Discount = discount
	e.recompute()
}

// UpdateDiscountType sets the discount type and recomputes.
func (e *Editor) UpdateDiscountType(discountType domain.DiscountType) {
	e.invoice.DiscountType = discountType
	e.recompute()
}

// SetPaymentTerms sets the terms and rederives the due date from the
// creation date. Totals are untouched; status is not rederived until the
// next recompute event.
func (e *Editor) SetPaymentTerms(terms domain.PaymentTerms) {
	e.invoice.PaymentTerms = terms
	e.invoice.DueDate = domain.DueDateFromTerms(terms, e.invoice.CreatedDate)
}

// SetClient replaces the embedded client snapshot.
func (e *Editor) SetClient(client domain.Client) {
	e.invoice.Client = client
}

// SetBusiness replaces the embedded business snapshot.
func (e *Editor) SetBusiness(business domain.Business) {
	e.invoice.Business = business
}

// SetNotes sets the free-text notes.
func (e *Editor) SetNotes(notes string) {
	e.invoice.Notes = notes
}

// SetCurrency sets the display currency symbol.
func (e *Editor) SetCurrency(currency string) {
	e.invoice.Currency = currency
}

// Save validates and persists the session invoice as-is. No status
// derivation happens here; the last recompute already left the invoice
// consistent. On validation failure nothing is written.
func (e *Editor) Save(ctx context.Context) error {
	if e.invoice.Client.Name == "" {
		return ErrClientNameRequired
	}

	if err := e.invoiceRepo.Upsert(ctx, *e.invoice); err != nil {
		return err
	}

	e.log.Info().Str("invoice", e.invoice.InvoiceNumber).Bool("new", e.isNew).Msg("invoice saved")
	e.isNew = false
	return nil
}

// MarkPaid forces the status to paid and writes through to the repository
// immediately, even when the session has unsaved edits elsewhere. Paid is
// terminal: later recomputes keep it.
func (e *Editor) MarkPaid(ctx context.Context) error {
	e.invoice.Status = domain.InvoiceStatusPaid

	if err := e.invoiceRepo.Upsert(ctx, *e.invoice); err != nil {
		return err
	}

	e.log.Info().Str("invoice", e.invoice.InvoiceNumber).Msg("invoice marked paid")
	e.isNew = false
	return nil
}

// recompute rederives all four money fields atomically, then the status.
// A draft flips to sent or overdue on its first recompute and never
// returns; paid survives any recompute.
func (e *Editor) recompute() {
	e.invoice.Recalculate()
	e.invoice.DeriveStatus(e.now())
}
