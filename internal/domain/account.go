// internal/domain/account.go
package domain

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal" // For precise monetary storage
)

// Fixed attributes shared by every account the bank issues.
// Only one sort code, account type and currency exist today.
const (
	SortCode            = "10-10-10"
	AccountTypePersonal = "personal"
	CurrencyGBP         = "GBP"
)

// BankAccount represents a stored bank account record.
// AccountNumber is the external key and is never reassigned once issued.
type BankAccount struct {
	AccountNumber string          `db:"account_number" json:"account_number"` // Unique external key, format 01XXXXXX
	OwnerID       sql.NullInt64   `db:"owner_id" json:"owner_id"`             // Optional back-reference to the owning user
	SortCode      string          `db:"sort_code" json:"sort_code"`
	Name          string          `db:"name" json:"name"`
	AccountType   string          `db:"account_type" json:"account_type"`
	Balance       decimal.Decimal `db:"balance" json:"balance"`     // NUMERIC(20, 4) in DB, zero at creation
	Currency      string          `db:"currency" json:"currency"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"` // Timestamp of creation
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"` // Timestamp of last update
}

// NewBankAccount creates a new BankAccount instance with the bank's fixed
// sort code and currency and a zero opening balance. The account number is
// assigned separately by the generator before insert.
func NewBankAccount(name, accountType string) *BankAccount {
	now := time.Now().UTC()
	return &BankAccount{
		SortCode:    SortCode,
		Name:        name,
		AccountType: accountType,
		Balance:     decimal.Zero, // Opening balance is always zero
		Currency:    CurrencyGBP,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
