package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/andy/billfold/internal/store"
)

// SettingsRepo is a KV-backed implementation of SettingsRepository
type SettingsRepo struct {
	kv store.KV
}

// NewSettingsRepo creates a new SettingsRepo
func NewSettingsRepo(kv store.KV) *SettingsRepo {
	return &SettingsRepo{kv: kv}
}

// DarkMode returns the stored dark-mode preference, defaulting to false
func (r *SettingsRepo) DarkMode(ctx context.Context) (bool, error) {
	data, ok, err := r.kv.Get(ctx, keyDarkMode)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	var enabled bool
	if err := json.Unmarshal(data, &enabled); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", keyDarkMode, err)
	}
	return enabled, nil
}

// SetDarkMode stores the dark-mode preference
func (r *SettingsRepo) SetDarkMode(ctx context.Context, enabled bool) error {
	data, err := json.Marshal(enabled)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", keyDarkMode, err)
	}
	return r.kv.Set(ctx, keyDarkMode, data)
}
