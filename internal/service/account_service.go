// internal/service/account_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"eagle-bank-api/internal/domain"
	"eagle-bank-api/internal/repository"
	"eagle-bank-api/internal/util"
)

// BankAccountService defines the interface for bank account business logic.
type BankAccountService interface {
	CreateBankAccount(ctx context.Context, req *CreateBankAccountRequest) (*BankAccountResponse, error)
	FetchByAccountNumber(ctx context.Context, accountNumber string) (*BankAccountResponse, error)
	DeleteBankAccount(ctx context.Context, accountNumber string) error
}

// bankAccountService implements the BankAccountService interface.
type bankAccountService struct {
	dbExecutor  repository.DBExecutor // For store access (e.g., *sqlx.DB)
	accountRepo repository.BankAccountRepository
}

// NewBankAccountService creates a new instance of BankAccountService.
func NewBankAccountService(dbExecutor repository.DBExecutor, accountRepo repository.BankAccountRepository) BankAccountService {
	return &bankAccountService{
		dbExecutor:  dbExecutor,
		accountRepo: accountRepo,
	}
}

// CreateBankAccount validates the request, assigns a fresh account number
// and stores the record. Every new account opens with the bank's fixed sort
// code and currency and a zero balance.
func (s *bankAccountService) CreateBankAccount(ctx context.Context, req *CreateBankAccountRequest) (*BankAccountResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: create bank account request must be valid", util.ErrBadRequest)
	}
	if violations := validateCreateBankAccountRequest(req); len(violations) > 0 {
		return nil, fmt.Errorf("%w: %s", util.ErrValidation, strings.Join(violations, ", "))
	}

	account := domain.NewBankAccount(req.Name, strings.ToLower(strings.TrimSpace(req.AccountType)))

	accountNumber, err := s.generateAccountNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("create bank account: %w", err)
	}
	account.AccountNumber = accountNumber

	if err := s.accountRepo.CreateBankAccount(ctx, s.dbExecutor, account); err != nil {
		return nil, fmt.Errorf("create bank account: %w", err)
	}

	return accountToResponse(account), nil
}

// FetchByAccountNumber returns the record behind a well-formed account number.
func (s *bankAccountService) FetchByAccountNumber(ctx context.Context, accountNumber string) (*BankAccountResponse, error) {
	if err := checkAccountNumber(accountNumber); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.GetBankAccountByNumber(ctx, s.dbExecutor, accountNumber)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, fmt.Errorf("%w with account number: %s", util.ErrAccountNotFound, accountNumber)
		}
		return nil, fmt.Errorf("fetch bank account: %w", err)
	}

	return accountToResponse(account), nil
}

// DeleteBankAccount removes the record behind a well-formed account number.
// The store delete is only invoked once the lookup has succeeded.
func (s *bankAccountService) DeleteBankAccount(ctx context.Context, accountNumber string) error {
	if err := checkAccountNumber(accountNumber); err != nil {
		return err
	}

	account, err := s.accountRepo.GetBankAccountByNumber(ctx, s.dbExecutor, accountNumber)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return fmt.Errorf("%w while attempting deletion. Account number: %s", util.ErrAccountNotFound, accountNumber)
		}
		return fmt.Errorf("delete bank account: %w", err)
	}

	if err := s.accountRepo.DeleteBankAccount(ctx, s.dbExecutor, account); err != nil {
		return fmt.Errorf("delete bank account: %w", err)
	}
	return nil
}

// checkAccountNumber rejects absent or malformed account numbers before any
// store lookup happens.
func checkAccountNumber(accountNumber string) error {
	if strings.TrimSpace(accountNumber) == "" {
		return fmt.Errorf("%w: account number is required", util.ErrInvalidAccountNumber)
	}
	if !domain.ValidAccountNumber(accountNumber) {
		return fmt.Errorf("%w: expected format 01XXXXXX (8 digits starting with 01), got '%s'", util.ErrInvalidAccountNumber, accountNumber)
	}
	return nil
}

// accountToResponse maps a stored record to its wire shape.
func accountToResponse(account *domain.BankAccount) *BankAccountResponse {
	return &BankAccountResponse{
		AccountNumber:    account.AccountNumber,
		SortCode:         account.SortCode,
		Name:             account.Name,
		AccountType:      account.AccountType,
		Balance:          account.Balance.InexactFloat64(),
		Currency:         account.Currency,
		CreatedTimestamp: account.CreatedAt,
		UpdatedTimestamp: account.UpdatedAt,
	}
}
