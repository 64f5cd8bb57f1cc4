// go-bank-ledger/models/client.go
package models

import "time"

// Client is a registered bank client. NationalID is the primary lookup key
// and must be unique across the registry. The client owns its accounts; the
// accounts only hold the national ID back, never a second ownership path.
type Client struct {
	NationalID string             `json:"national_id"`
	Name       string             `json:"name"`
	BirthDate  string             `json:"birth_date"`
	Address    string             `json:"address"`
	Accounts   []*CheckingAccount `json:"-"`
	CreatedAt  time.Time          `json:"created_at"`
}

// AddAccount appends a newly opened account to the client's ordered list.
func (c *Client) AddAccount(account *CheckingAccount) {
	c.Accounts = append(c.Accounts, account)
}

// CreateClientRequest is the payload for registering a new client.
type CreateClientRequest struct {
	NationalID string `json:"national_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	BirthDate  string `json:"birth_date" binding:"required"`
	Address    string `json:"address" binding:"required"`
}
