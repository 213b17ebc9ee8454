// internal/repository/user_repo.go
package repository

import (
	"context"

	"eagle-bank-api/internal/domain"
)

// UserRepository defines the interface for user record operations.
type UserRepository interface {
	// CreateUser inserts a new user record and assigns its ID using the provided DBExecutor.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetUserByID retrieves a user by their numeric ID using the provided DBExecutor.
	GetUserByID(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
	// DeleteUser removes the given user record using the provided DBExecutor.
	DeleteUser(ctx context.Context, q DBExecutor, user *domain.User) error
}
