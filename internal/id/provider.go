// Package id supplies entity identifiers. Generation sits behind an
// interface so entity-creating code stays deterministic under test.
package id

import "github.com/google/uuid"

// Provider produces unique string identifiers on demand.
type Provider interface {
	NewID() string
}

type uuidProvider struct{}

// NewProvider returns the default UUIDv4-backed provider.
func NewProvider() Provider {
	return uuidProvider{}
}

func (uuidProvider) NewID() string {
	return uuid.NewString()
}
