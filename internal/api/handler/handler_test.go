// internal/api/handler/handler_test.go
package handler_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eagle-bank-api/internal/api"
	"eagle-bank-api/internal/api/handler"
	"eagle-bank-api/internal/service"
	"eagle-bank-api/internal/util"
)

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req *service.CreateUserRequest) (*service.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UserResponse), args.Error(1)
}

func (m *MockUserService) FetchUserByID(ctx context.Context, userID string) (*service.UserResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UserResponse), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockBankAccountService is a mock implementation of service.BankAccountService.
type MockBankAccountService struct {
	mock.Mock
}

func (m *MockBankAccountService) CreateBankAccount(ctx context.Context, req *service.CreateBankAccountRequest) (*service.BankAccountResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BankAccountResponse), args.Error(1)
}

func (m *MockBankAccountService) FetchByAccountNumber(ctx context.Context, accountNumber string) (*service.BankAccountResponse, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BankAccountResponse), args.Error(1)
}

func (m *MockBankAccountService) DeleteBankAccount(ctx context.Context, accountNumber string) error {
	args := m.Called(ctx, accountNumber)
	return args.Error(0)
}

func newTestServer(t *testing.T) (*httptest.Server, *MockUserService, *MockBankAccountService) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userSvc := new(MockUserService)
	accountSvc := new(MockBankAccountService)
	userHandler := handler.NewUserHandler(userSvc, logger)
	accountHandler := handler.NewBankAccountHandler(accountSvc, logger)
	server := httptest.NewServer(api.NewRouter(userHandler, accountHandler, logger))
	t.Cleanup(server.Close)
	return server, userSvc, accountSvc
}

func doRequest(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestCreateUserEndpoint(t *testing.T) {
	t.Run("returns 201 with the created record", func(t *testing.T) {
		server, userSvc, _ := newTestServer(t)

		userSvc.On("CreateUser", mock.Anything, mock.AnythingOfType("*service.CreateUserRequest")).
			Return(&service.UserResponse{
				ID:               "usr-1",
				Name:             "Jane Doe",
				Email:            "jane@example.com",
				PhoneNumber:      "+441234567890",
				CreatedTimestamp: time.Now().UTC(),
				UpdatedTimestamp: time.Now().UTC(),
			}, nil).Once()

		resp := doRequest(t, http.MethodPost, server.URL+"/v1/users",
			`{"name":"Jane Doe","email":"jane@example.com","phoneNumber":"+441234567890","address":{"line1":"123 Main St","town":"London","county":"Greater London","postcode":"E1 6AN"}}`)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), `"id":"usr-1"`)
	})

	t.Run("returns 400 with every violation listed", func(t *testing.T) {
		server, userSvc, _ := newTestServer(t)

		userSvc.On("CreateUser", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: Name is required and cannot be empty, Email format is invalid", util.ErrValidation)).Once()

		resp := doRequest(t, http.MethodPost, server.URL+"/v1/users", `{"email":"invalid-email"}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "Name is required and cannot be empty")
		assert.Contains(t, string(body), "Email format is invalid")
	})

	t.Run("returns 400 on a malformed body without calling the service", func(t *testing.T) {
		server, userSvc, _ := newTestServer(t)

		resp := doRequest(t, http.MethodPost, server.URL+"/v1/users", `{not json`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		userSvc.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})
}

func TestFetchUserEndpoint(t *testing.T) {
	t.Run("returns 200 for an existing user", func(t *testing.T) {
		server, userSvc, _ := newTestServer(t)

		userSvc.On("FetchUserByID", mock.Anything, "usr-42").
			Return(&service.UserResponse{ID: "usr-42", Name: "Jane Doe"}, nil).Once()

		resp := doRequest(t, http.MethodGet, server.URL+"/v1/users/usr-42", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("returns 404 when the user is absent", func(t *testing.T) {
		server, userSvc, _ := newTestServer(t)

		userSvc.On("FetchUserByID", mock.Anything, "usr-99").
			Return(nil, fmt.Errorf("%w with ID: usr-99", util.ErrUserNotFound)).Once()

		resp := doRequest(t, http.MethodGet, server.URL+"/v1/users/usr-99", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "usr-99")
	})

	t.Run("returns 400 for a path id outside the boundary pattern", func(t *testing.T) {
		server, userSvc, _ := newTestServer(t)

		resp := doRequest(t, http.MethodGet, server.URL+"/v1/users/usr-!!", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		userSvc.AssertNotCalled(t, "FetchUserByID", mock.Anything, mock.Anything)
	})
}

func TestDeleteUserEndpoint(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		server, userSvc, _ := newTestServer(t)

		userSvc.On("DeleteUser", mock.Anything, "usr-1").Return(nil).Once()

		resp := doRequest(t, http.MethodDelete, server.URL+"/v1/users/usr-1", "")
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("returns 404 when the user is absent", func(t *testing.T) {
		server, userSvc, _ := newTestServer(t)

		userSvc.On("DeleteUser", mock.Anything, "usr-99").
			Return(fmt.Errorf("%w while attempting deletion. User ID: usr-99", util.ErrUserNotFound)).Once()

		resp := doRequest(t, http.MethodDelete, server.URL+"/v1/users/usr-99", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestBankAccountEndpoints(t *testing.T) {
	t.Run("create returns 201 with the fixed attributes", func(t *testing.T) {
		server, _, accountSvc := newTestServer(t)

		accountSvc.On("CreateBankAccount", mock.Anything, mock.AnythingOfType("*service.CreateBankAccountRequest")).
			Return(&service.BankAccountResponse{
				AccountNumber: "01234567",
				SortCode:      "10-10-10",
				Name:          "My Savings",
				AccountType:   "personal",
				Balance:       0,
				Currency:      "GBP",
			}, nil).Once()

		resp := doRequest(t, http.MethodPost, server.URL+"/v1/accounts",
			`{"name":"My Savings","accountType":"personal"}`)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), `"sortCode":"10-10-10"`)
		assert.Contains(t, string(body), `"currency":"GBP"`)
	})

	t.Run("fetch returns 400 for a malformed account number", func(t *testing.T) {
		server, _, accountSvc := newTestServer(t)

		accountSvc.On("FetchByAccountNumber", mock.Anything, "02123456").
			Return(nil, fmt.Errorf("%w: expected format 01XXXXXX (8 digits starting with 01), got '02123456'", util.ErrInvalidAccountNumber)).Once()

		resp := doRequest(t, http.MethodGet, server.URL+"/v1/accounts/02123456", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("fetch returns 404 when the account is absent", func(t *testing.T) {
		server, _, accountSvc := newTestServer(t)

		accountSvc.On("FetchByAccountNumber", mock.Anything, "01234567").
			Return(nil, fmt.Errorf("%w with account number: 01234567", util.ErrAccountNotFound)).Once()

		resp := doRequest(t, http.MethodGet, server.URL+"/v1/accounts/01234567", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "01234567")
	})

	t.Run("create maps a uniqueness conflict to 409", func(t *testing.T) {
		server, _, accountSvc := newTestServer(t)

		accountSvc.On("CreateBankAccount", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("create bank account: %w", util.ErrDuplicateEntry)).Once()

		resp := doRequest(t, http.MethodPost, server.URL+"/v1/accounts",
			`{"name":"My Savings","accountType":"personal"}`)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("delete returns 204 on success", func(t *testing.T) {
		server, _, accountSvc := newTestServer(t)

		accountSvc.On("DeleteBankAccount", mock.Anything, "01234567").Return(nil).Once()

		resp := doRequest(t, http.MethodDelete, server.URL+"/v1/accounts/01234567", "")
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})
}
