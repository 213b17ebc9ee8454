// internal/service/mocks_test.go
package service

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"

	"eagle-bank-api/internal/domain"
	"eagle-bank-api/internal/repository"
)

// MockDBExecutor is a mock implementation of repository.DBExecutor.
// The services only hand it through to repositories, so no expectations
// are ever set on it directly.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	argsCalled := m.Called(ctx, query, args)
	return argsCalled.Get(0).(sql.Result), argsCalled.Error(1)
}

func (m *MockDBExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	m.Called(ctx, query, args)
	return &sql.Row{}
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	args := m.Called(ctx, q, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	args := m.Called(ctx, q, user)
	return args.Error(0)
}

// MockBankAccountRepository is a mock implementation of repository.BankAccountRepository.
type MockBankAccountRepository struct {
	mock.Mock
}

func (m *MockBankAccountRepository) CreateBankAccount(ctx context.Context, q repository.DBExecutor, account *domain.BankAccount) error {
	args := m.Called(ctx, q, account)
	return args.Error(0)
}

func (m *MockBankAccountRepository) GetBankAccountByNumber(ctx context.Context, q repository.DBExecutor, accountNumber string) (*domain.BankAccount, error) {
	args := m.Called(ctx, q, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) DeleteBankAccount(ctx context.Context, q repository.DBExecutor, account *domain.BankAccount) error {
	args := m.Called(ctx, q, account)
	return args.Error(0)
}
