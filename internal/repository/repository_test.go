package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/andy/billfold/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memKV is an in-memory KV for repository tests
type memKV struct {
	data map[string][]byte
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *memKV) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

// seqIDs hands out id-1, id-2, ... deterministically
type seqIDs struct {
	n int
}

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func TestInvoiceRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewInvoiceRepo(newMemKV())

	// Empty store reads as an empty collection
	invoices, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, invoices)

	inv := domain.NewInvoice("inv-1", domain.Business{Name: "Acme"}, time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC))
	inv.Client = domain.Client{ID: "c-1", Name: "Globex", Email: "ap@globex.test"}
	inv.LineItems = []domain.LineItem{{ID: "li-1", Description: "Work", Quantity: 2, UnitPrice: 100, Tax: 10}}
	inv.Notes = "thanks"
	inv.Recalculate()

	require.NoError(t, repo.Upsert(ctx, *inv))

	got, err := repo.FindByID(ctx, "inv-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *inv, *got)
}

func TestInvoiceRepoUpsertPreservesPosition(t *testing.T) {
	ctx := context.Background()
	repo := NewInvoiceRepo(newMemKV())

	now := time.Now()
	for _, id := range []string{"inv-1", "inv-2", "inv-3"} {
		inv := domain.NewInvoice(id, domain.Business{Name: "Acme"}, now)
		inv.Client = domain.Client{Name: "Globex"}
		require.NoError(t, repo.Upsert(ctx, *inv))
	}

	// Replace the middle invoice
	middle, err := repo.FindByID(ctx, "inv-2")
	require.NoError(t, err)
	middle.Notes = "updated"
	require.NoError(t, repo.Upsert(ctx, *middle))

	invoices, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 3)
	assert.Equal(t, []string{"inv-1", "inv-2", "inv-3"},
		[]string{invoices[0].ID, invoices[1].ID, invoices[2].ID})
	assert.Equal(t, "updated", invoices[1].Notes)
}

func TestInvoiceRepoFindMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewInvoiceRepo(newMemKV())

	got, err := repo.FindByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInvoiceRepoRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	repo := NewInvoiceRepo(newMemKV())

	inv := domain.NewInvoice("inv-1", domain.Business{Name: "Acme"}, time.Now())
	// No client name
	assert.Error(t, repo.Upsert(ctx, *inv))

	invoices, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, invoices)
}

func TestClientRepoMintsID(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepo(newMemKV(), &seqIDs{})

	saved, err := repo.Upsert(ctx, domain.Client{Name: "Globex", Email: "ap@globex.test"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", saved.ID)

	got, err := repo.FindByID(ctx, "id-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, saved, *got)
}

func TestClientRepoDeduplicatesByNameEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepo(newMemKV(), &seqIDs{})

	first, err := repo.Upsert(ctx, domain.Client{Name: "Globex", Email: "ap@globex.test"})
	require.NoError(t, err)

	// Saving the same (name, email) without an ID reuses the stored identity
	second, err := repo.Upsert(ctx, domain.Client{Name: "Globex", Email: "ap@globex.test", Phone: "555-0100"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	clients, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "555-0100", clients[0].Phone)
}

func TestClientRepoUpsertByID(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepo(newMemKV(), &seqIDs{})

	saved, err := repo.Upsert(ctx, domain.Client{Name: "Globex", Email: "ap@globex.test"})
	require.NoError(t, err)

	// Same ID with a new name and email replaces, never duplicates
	saved.Name = "Globex Corp"
	saved.Email = "billing@globex.test"
	updated, err := repo.Upsert(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)

	clients, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Globex Corp", clients[0].Name)
}

func TestClientRepoDistinctEmailsAreDistinctClients(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepo(newMemKV(), &seqIDs{})

	a, err := repo.Upsert(ctx, domain.Client{Name: "Globex", Email: "east@globex.test"})
	require.NoError(t, err)
	b, err := repo.Upsert(ctx, domain.Client{Name: "Globex", Email: "west@globex.test"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)

	clients, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 2)
}

func TestClientRepoRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepo(newMemKV(), &seqIDs{})

	saved, err := repo.Upsert(ctx, domain.Client{Name: "Globex", Email: "ap@globex.test"})
	require.NoError(t, err)

	require.NoError(t, repo.Remove(ctx, saved.ID))

	clients, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)

	// Removing an unknown ID is a no-op
	require.NoError(t, repo.Remove(ctx, "nope"))
}

func TestClientRepoRejectsEmptyName(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepo(newMemKV(), &seqIDs{})

	_, err := repo.Upsert(ctx, domain.Client{Email: "ap@globex.test"})
	assert.Error(t, err)

	_, err = repo.Upsert(ctx, domain.Client{Name: "   "})
	assert.Error(t, err)
}

func TestBusinessRepoUpsertByName(t *testing.T) {
	ctx := context.Background()
	repo := NewBusinessRepo(newMemKV())

	require.NoError(t, repo.Upsert(ctx, domain.Business{Name: "Acme", Email: "old@acme.test"}))
	require.NoError(t, repo.Upsert(ctx, domain.Business{Name: "Other"}))

	// Same name replaces in place
	require.NoError(t, repo.Upsert(ctx, domain.Business{Name: "Acme", Email: "new@acme.test"}))

	businesses, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, businesses, 2)
	assert.Equal(t, "Acme", businesses[0].Name)
	assert.Equal(t, "new@acme.test", businesses[0].Email)

	got, err := repo.FindByName(ctx, "Acme")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "new@acme.test", got.Email)

	missing, err := repo.FindByName(ctx, "Nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSettingsRepoDarkMode(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepo(newMemKV())

	// Defaults to false when never written
	dark, err := repo.DarkMode(ctx)
	require.NoError(t, err)
	assert.False(t, dark)

	require.NoError(t, repo.SetDarkMode(ctx, true))
	dark, err = repo.DarkMode(ctx)
	require.NoError(t, err)
	assert.True(t, dark)

	require.NoError(t, repo.SetDarkMode(ctx, false))
	dark, err = repo.DarkMode(ctx)
	require.NoError(t, err)
	assert.False(t, dark)
}
