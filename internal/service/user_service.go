// internal/service/user_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"eagle-bank-api/internal/domain"
	"eagle-bank-api/internal/repository"
	"eagle-bank-api/internal/util"
)

// UserService defines the interface for user record business logic.
type UserService interface {
	CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error)
	FetchUserByID(ctx context.Context, userID string) (*UserResponse, error)
	DeleteUser(ctx context.Context, userID string) error
}

// userService implements the UserService interface.
type userService struct {
	dbExecutor repository.DBExecutor // For store access (e.g., *sqlx.DB)
	userRepo   repository.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(dbExecutor repository.DBExecutor, userRepo repository.UserRepository) UserService {
	return &userService{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
	}
}

// CreateUser validates the request, stores the user record and returns its
// wire representation. All field violations are reported in one error.
func (s *userService) CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: create user request must be valid", util.ErrBadRequest)
	}
	if violations := validateCreateUserRequest(req); len(violations) > 0 {
		return nil, fmt.Errorf("%w: %s", util.ErrValidation, strings.Join(violations, ", "))
	}

	addressBlob, err := serializeAddress(req.Address)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	user := domain.NewUser(req.Name, req.Email, req.PhoneNumber, addressBlob)
	if err := s.userRepo.CreateUser(ctx, s.dbExecutor, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return userToResponse(user)
}

// FetchUserByID decodes the wire identifier and returns the matching record.
func (s *userService) FetchUserByID(ctx context.Context, userID string) (*UserResponse, error) {
	id, err := domain.ParseUserID(userID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, fmt.Errorf("%w with ID: %s", util.ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("fetch user: %w", err)
	}

	return userToResponse(user)
}

// DeleteUser removes the record behind the wire identifier. The store delete
// is only invoked once the lookup has succeeded. Accounts owned by the user
// are not cascaded.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	id, err := domain.ParseUserID(userID)
	if err != nil {
		return err
	}

	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return fmt.Errorf("%w while attempting deletion. User ID: %s", util.ErrUserNotFound, userID)
		}
		return fmt.Errorf("delete user: %w", err)
	}

	if err := s.userRepo.DeleteUser(ctx, s.dbExecutor, user); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// userToResponse maps a stored record to its wire shape, rendering the
// numeric id as a wire identifier and restoring the structured address.
func userToResponse(user *domain.User) (*UserResponse, error) {
	address, err := deserializeAddress(user.Address)
	if err != nil {
		return nil, err
	}
	return &UserResponse{
		ID:               domain.FormatUserID(user.ID),
		Name:             user.Name,
		Email:            user.Email,
		PhoneNumber:      user.PhoneNumber,
		Address:          address,
		CreatedTimestamp: user.CreatedAt,
		UpdatedTimestamp: user.UpdatedAt,
	}, nil
}
