package domain

import (
	"errors"
	"strings"
)

// Business is the issuing party on an invoice. It has no generated ID;
// businesses are matched by exact name when saved and loaded.
type Business struct {
	Name    string `json:"name"`
	Logo    string `json:"logo"` // data-URI image, or empty
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Validate returns an error if the business is invalid.
func (b *Business) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return errors.New("business name is required")
	}
	return nil
}
