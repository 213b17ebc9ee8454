// internal/service/validation.go
package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"eagle-bank-api/internal/domain"
)

// Patterns applied to create-user fields. The email rule wants an ASCII
// local part, a domain with at least one dot and a TLD of two or more
// letters; the phone rule is E.164: leading +, first digit 1-9, at most
// 15 digits in total.
var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)*\.[A-Za-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
)

// maxAccountNameLength bounds the account display name after trimming.
const maxAccountNameLength = 100

// validateCreateUserRequest checks every field rule and returns the complete
// list of violations in field order. It never stops at the first failure,
// so a single error response can report everything that is wrong.
func validateCreateUserRequest(req *CreateUserRequest) []string {
	var violations []string

	if strings.TrimSpace(req.Name) == "" {
		violations = append(violations, "Name is required and cannot be empty")
	}

	switch {
	case strings.TrimSpace(req.Email) == "":
		violations = append(violations, "Email is required and cannot be empty")
	case !emailPattern.MatchString(req.Email):
		violations = append(violations, "Email format is invalid")
	}

	switch {
	case strings.TrimSpace(req.PhoneNumber) == "":
		violations = append(violations, "Phone number is required and cannot be empty")
	case !phonePattern.MatchString(req.PhoneNumber):
		violations = append(violations, "Phone number format is invalid")
	}

	if req.Address == nil {
		violations = append(violations, "Address is required")
	} else {
		if strings.TrimSpace(req.Address.Line1) == "" {
			violations = append(violations, "Address line 1 is required")
		}
		if strings.TrimSpace(req.Address.Town) == "" {
			violations = append(violations, "Town is required")
		}
		if strings.TrimSpace(req.Address.County) == "" {
			violations = append(violations, "County is required")
		}
		if strings.TrimSpace(req.Address.Postcode) == "" {
			violations = append(violations, "Postcode is required")
		}
	}

	return violations
}

// validateCreateBankAccountRequest checks every field rule and returns the
// complete list of violations in field order.
func validateCreateBankAccountRequest(req *CreateBankAccountRequest) []string {
	var violations []string

	name := strings.TrimSpace(req.Name)
	switch {
	case name == "":
		violations = append(violations, "Name is required and cannot be empty")
	case utf8.RuneCountInString(name) > maxAccountNameLength:
		violations = append(violations, "Name cannot exceed 100 characters")
	}

	accountType := strings.ToLower(strings.TrimSpace(req.AccountType))
	switch {
	case accountType == "":
		violations = append(violations, "Account type is required")
	case accountType != domain.AccountTypePersonal:
		violations = append(violations, "Account type must be 'personal'")
	}

	return violations
}
