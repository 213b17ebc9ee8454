// internal/service/types.go
package service

import (
	"encoding/json"
	"fmt"
	"time"
)

// Address is the structured postal address carried on the wire.
// It is stored as an opaque serialized blob on the user record.
type Address struct {
	Line1    string `json:"line1"`
	Town     string `json:"town"`
	County   string `json:"county"`
	Postcode string `json:"postcode"`
}

// CreateUserRequest is the wire shape for creating a user.
type CreateUserRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phoneNumber"`
	Address     *Address `json:"address"`
}

// UserResponse is the wire shape returned for user operations.
// ID carries the wire identifier, e.g. "usr-42".
type UserResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PhoneNumber      string    `json:"phoneNumber"`
	Address          Address   `json:"address"`
	CreatedTimestamp time.Time `json:"createdTimestamp"`
	UpdatedTimestamp time.Time `json:"updatedTimestamp"`
}

// CreateBankAccountRequest is the wire shape for creating a bank account.
type CreateBankAccountRequest struct {
	Name        string `json:"name"`
	AccountType string `json:"accountType"`
}

// BankAccountResponse is the wire shape returned for bank account operations.
type BankAccountResponse struct {
	AccountNumber    string    `json:"accountNumber"`
	SortCode         string    `json:"sortCode"`
	Name             string    `json:"name"`
	AccountType      string    `json:"accountType"`
	Balance          float64   `json:"balance"`
	Currency         string    `json:"currency"`
	CreatedTimestamp time.Time `json:"createdTimestamp"`
	UpdatedTimestamp time.Time `json:"updatedTimestamp"`
}

// serializeAddress renders the structured address as the blob stored on the
// user record. The counterpart deserializeAddress must restore it exactly.
func serializeAddress(address *Address) (string, error) {
	data, err := json.Marshal(address)
	if err != nil {
		return "", fmt.Errorf("failed to serialize address: %w", err)
	}
	return string(data), nil
}

// deserializeAddress restores the structured address from a stored blob.
func deserializeAddress(blob string) (Address, error) {
	var address Address
	if err := json.Unmarshal([]byte(blob), &address); err != nil {
		return Address{}, fmt.Errorf("failed to deserialize address: %w", err)
	}
	return address, nil
}
