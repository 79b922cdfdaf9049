package repository

import (
	"context"
	"fmt"

	"github.com/andy/billfold/internal/domain"
	"github.com/andy/billfold/internal/store"
)

// BusinessRepo is a KV-backed implementation of BusinessRepository
type BusinessRepo struct {
	kv store.KV
}

// NewBusinessRepo creates a new BusinessRepo
func NewBusinessRepo(kv store.KV) *BusinessRepo {
	return &BusinessRepo{kv: kv}
}

// LoadAll retrieves every saved business
func (r *BusinessRepo) LoadAll(ctx context.Context) ([]domain.Business, error) {
	return loadCollection[domain.Business](ctx, r.kv, keyBusinesses)
}

// FindByName retrieves a business by exact name, or nil if absent
func (r *BusinessRepo) FindByName(ctx context.Context, name string) (*domain.Business, error) {
	businesses, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range businesses {
		if businesses[i].Name == name {
			return &businesses[i], nil
		}
	}
	return nil, nil
}

// Upsert replaces the business with the same name in place, or appends it.
// At most one business per name is ever stored.
func (r *BusinessRepo) Upsert(ctx context.Context, business domain.Business) error {
	if err := business.Validate(); err != nil {
		return fmt.Errorf("invalid business: %w", err)
	}

	businesses, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range businesses {
		if businesses[i].Name == business.Name {
			businesses[i] = business
			replaced = true
			break
		}
	}
	if !replaced {
		businesses = append(businesses, business)
	}

	return saveCollection(ctx, r.kv, keyBusinesses, businesses)
}
