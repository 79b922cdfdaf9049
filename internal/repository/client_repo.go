package repository

import (
	"context"
	"fmt"

	"github.com/andy/billfold/internal/domain"
	"github.com/andy/billfold/internal/id"
	"github.com/andy/billfold/internal/store"
)

// ClientRepo is a KV-backed implementation of ClientRepository
type ClientRepo struct {
	kv  store.KV
	ids id.Provider
}

// NewClientRepo creates a new ClientRepo
func NewClientRepo(kv store.KV, ids id.Provider) *ClientRepo {
	return &ClientRepo{kv: kv, ids: ids}
}

// LoadAll retrieves every saved client
func (r *ClientRepo) LoadAll(ctx context.Context) ([]domain.Client, error) {
	return loadCollection[domain.Client](ctx, r.kv, keyClients)
}

// FindByID retrieves a client by ID, or nil if absent
func (r *ClientRepo) FindByID(ctx context.Context, clientID string) (*domain.Client, error) {
	clients, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].ID == clientID {
			return &clients[i], nil
		}
	}
	return nil, nil
}

// Upsert stores the client. An existing client is matched by ID, or by
// (name, email) when the incoming record has no ID yet, and replaced in
// place; a new client gets a generated ID and is appended. Saving the same
// client twice never produces two records.
func (r *ClientRepo) Upsert(ctx context.Context, client domain.Client) (domain.Client, error) {
	if err := client.Validate(); err != nil {
		return domain.Client{}, fmt.Errorf("invalid client: %w", err)
	}

	clients, err := r.LoadAll(ctx)
	if err != nil {
		return domain.Client{}, err
	}

	existing := -1
	for i := range clients {
		if clients[i].Matches(client) {
			existing = i
			break
		}
	}

	if client.ID == "" {
		if existing >= 0 {
			// Keep the identity already on file for this (name, email)
			client.ID = clients[existing].ID
		} else {
			client.ID = r.ids.NewID()
		}
	}

	if existing >= 0 {
		clients[existing] = client
	} else {
		clients = append(clients, client)
	}

	if err := saveCollection(ctx, r.kv, keyClients, clients); err != nil {
		return domain.Client{}, err
	}
	return client, nil
}

// Remove filters out the client with the given ID. Removing an unknown ID
// is a no-op.
func (r *ClientRepo) Remove(ctx context.Context, clientID string) error {
	clients, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}

	kept := clients[:0]
	for _, c := range clients {
		if c.ID != clientID {
			kept = append(kept, c)
		}
	}

	return saveCollection(ctx, r.kv, keyClients, kept)
}
