package repository

import (
	"context"
	"fmt"

	"github.com/andy/billfold/internal/domain"
	"github.com/andy/billfold/internal/store"
)

// InvoiceRepo is a KV-backed implementation of InvoiceRepository
type InvoiceRepo struct {
	kv store.KV
}

// NewInvoiceRepo creates a new InvoiceRepo
func NewInvoiceRepo(kv store.KV) *InvoiceRepo {
	return &InvoiceRepo{kv: kv}
}

// LoadAll retrieves every stored invoice in insertion order
func (r *InvoiceRepo) LoadAll(ctx context.Context) ([]domain.Invoice, error) {
	return loadCollection[domain.Invoice](ctx, r.kv, keyInvoices)
}

// FindByID retrieves an invoice by ID, or nil if absent
func (r *InvoiceRepo) FindByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoices, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		if invoices[i].ID == invoiceID {
			return &invoices[i], nil
		}
	}
	return nil, nil
}

// Upsert replaces the invoice with the same ID in place, preserving its
// position in the collection, or appends a new one.
func (r *InvoiceRepo) Upsert(ctx context.Context, invoice domain.Invoice) error {
	if err := invoice.Validate(); err != nil {
		return fmt.Errorf("invalid invoice: %w", err)
	}

	invoices, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range invoices {
		if invoices[i].ID == invoice.ID {
			invoices[i] = invoice
			replaced = true
			break
		}
	}
	if !replaced {
		invoices = append(invoices, invoice)
	}

	return saveCollection(ctx, r.kv, keyInvoices, invoices)
}
