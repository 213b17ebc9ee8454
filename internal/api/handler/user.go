// internal/api/handler/user.go
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"eagle-bank-api/internal/service"
	"eagle-bank-api/internal/util"
)

// userIDPathPattern is the transport-boundary shape of a user id path
// parameter. It is a superset of what the identifier codec accepts; the
// service layer further restricts the suffix to digits.
var userIDPathPattern = regexp.MustCompile(`^usr-[A-Za-z0-9]+$`)

// UserHandler handles HTTP requests for user records.
type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateUser handles the create user request.
// POST /v1/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req service.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, fmt.Errorf("%w: create user request must be valid", util.ErrBadRequest))
		return
	}

	resp, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, resp)
}

// FetchUserByID handles the fetch user request.
// GET /v1/users/{userId}
func (h *UserHandler) FetchUserByID(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if !userIDPathPattern.MatchString(userID) {
		respondWithError(h.logger, w, fmt.Errorf("%w: expected format usr-<number>, got '%s'", util.ErrInvalidUserID, userID))
		return
	}

	resp, err := h.service.FetchUserByID(r.Context(), userID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, resp)
}

// DeleteUserByID handles the delete user request.
// DELETE /v1/users/{userId}
func (h *UserHandler) DeleteUserByID(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if !userIDPathPattern.MatchString(userID) {
		respondWithError(h.logger, w, fmt.Errorf("%w: expected format usr-<number>, got '%s'", util.ErrInvalidUserID, userID))
		return
	}

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
