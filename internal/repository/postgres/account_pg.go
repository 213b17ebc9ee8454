// internal/repository/postgres/account_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eagle-bank-api/internal/domain"
	"eagle-bank-api/internal/repository"
	"eagle-bank-api/internal/util"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// pqUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pqUniqueViolation = "23505"

// BankAccountRepository implements repository.BankAccountRepository for PostgreSQL.
type BankAccountRepository struct {
	// No longer holds *sqlx.DB as methods receive DBExecutor directly
}

// NewBankAccountRepository creates a new BankAccountRepository.
func NewBankAccountRepository(db *sqlx.DB) repository.BankAccountRepository {
	return &BankAccountRepository{}
}

// CreateBankAccount inserts a new account into the database using the provided DBExecutor.
// A unique index on account_number backs the generate-then-insert sequence: if two
// creations race on the same number, the loser gets util.ErrDuplicateEntry.
func (r *BankAccountRepository) CreateBankAccount(ctx context.Context, q repository.DBExecutor, account *domain.BankAccount) error {
	query := `INSERT INTO bank_accounts (account_number, owner_id, sort_code, name, account_type, balance, currency, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := q.ExecContext(ctx, query,
		account.AccountNumber, account.OwnerID, account.SortCode, account.Name,
		account.AccountType, account.Balance, account.Currency, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return fmt.Errorf("%w: account number %s already exists", util.ErrDuplicateEntry, account.AccountNumber)
		}
		return fmt.Errorf("failed to create bank account: %w", err)
	}
	return nil
}

// GetBankAccountByNumber retrieves an account by its account number using the provided DBExecutor.
func (r *BankAccountRepository) GetBankAccountByNumber(ctx context.Context, q repository.DBExecutor, accountNumber string) (*domain.BankAccount, error) {
	var account domain.BankAccount
	query := `SELECT account_number, owner_id, sort_code, name, account_type, balance, currency, created_at, updated_at
              FROM bank_accounts WHERE account_number = $1`
	err := q.GetContext(ctx, &account, query, accountNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bank account by number %s: %w", accountNumber, err)
	}
	return &account, nil
}

// DeleteBankAccount removes the given account record using the provided DBExecutor.
func (r *BankAccountRepository) DeleteBankAccount(ctx context.Context, q repository.DBExecutor, account *domain.BankAccount) error {
	query := `DELETE FROM bank_accounts WHERE account_number = $1`
	result, err := q.ExecContext(ctx, query, account.AccountNumber)
	if err != nil {
		return fmt.Errorf("failed to delete bank account %s: %w", account.AccountNumber, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting bank account %s: %w", account.AccountNumber, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
