// internal/api/types/response.go
package types

// ErrorResponse is the envelope for every error the API returns.
// The message carries all violated rules for validation failures and
// echoes the identifier for not-found failures.
type ErrorResponse struct {
	Error string `json:"error"`
}
