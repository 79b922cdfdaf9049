package domain

import (
	"errors"
	"strings"
)

// Client is the billed party. Identity is the generated ID; a client with no
// ID is matched by (name, email) on save and assigned one then.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Phone   string `json:"phone"`
}

// Matches reports whether other refers to the same client: same ID, or same
// (name, email) pair when the ID is not yet assigned.
func (c *Client) Matches(other Client) bool {
	if c.ID != "" && c.ID == other.ID {
		return true
	}
	return c.Name == other.Name && c.Email == other.Email
}

// Validate returns an error if the client is invalid.
func (c *Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("client name is required")
	}
	return nil
}
