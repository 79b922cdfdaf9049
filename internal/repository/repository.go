package repository

import (
	"context"

	"github.com/andy/billfold/internal/domain"
)

// Storage keys, one whole collection per key.
const (
	keyBusinesses = "businesses"
	keyClients    = "clients"
	keyInvoices   = "invoices"
	keyDarkMode   = "darkMode"
)

// BusinessRepository manages the saved-business collection. Identity is the
// exact business name.
type BusinessRepository interface {
	LoadAll(ctx context.Context) ([]domain.Business, error)
	FindByName(ctx context.Context, name string) (*domain.Business, error)
	Upsert(ctx context.Context, business domain.Business) error
}

// ClientRepository manages the saved-client collection. Identity is the
// client ID, with (name, email) as the secondary match when the ID is empty.
type ClientRepository interface {
	LoadAll(ctx context.Context) ([]domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	// Upsert stores the client, minting an ID when it has none, and returns
	// the stored record.
	Upsert(ctx context.Context, client domain.Client) (domain.Client, error)
	Remove(ctx context.Context, id string) error
}

// InvoiceRepository manages the invoice collection, keyed by invoice ID.
type InvoiceRepository interface {
	LoadAll(ctx context.Context) ([]domain.Invoice, error)
	FindByID(ctx context.Context, id string) (*domain.Invoice, error)
	Upsert(ctx context.Context, invoice domain.Invoice) error
}

// SettingsRepository manages display preferences stored alongside the
// entity collections.
type SettingsRepository interface {
	DarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, enabled bool) error
}
