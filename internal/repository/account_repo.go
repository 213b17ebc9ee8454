// internal/repository/account_repo.go
package repository

import (
	"context"

	"eagle-bank-api/internal/domain"
)

// BankAccountRepository defines the interface for bank account record operations.
type BankAccountRepository interface {
	// CreateBankAccount inserts a new account record using the provided DBExecutor.
	// Returns util.ErrDuplicateEntry if the account number is already taken.
	CreateBankAccount(ctx context.Context, q DBExecutor, account *domain.BankAccount) error
	// GetBankAccountByNumber retrieves an account by its account number using the provided DBExecutor.
	GetBankAccountByNumber(ctx context.Context, q DBExecutor, accountNumber string) (*domain.BankAccount, error)
	// DeleteBankAccount removes the given account record using the provided DBExecutor.
	DeleteBankAccount(ctx context.Context, q DBExecutor, account *domain.BankAccount) error
}
