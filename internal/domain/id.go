// internal/domain/id.go
package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"eagle-bank-api/internal/util"
)

// UserIDPrefix is the literal prefix of every wire-level user identifier.
const UserIDPrefix = "usr-"

// accountNumberPattern matches an 8-character account number: the literal
// prefix 01 followed by six decimal digits.
var accountNumberPattern = regexp.MustCompile(`^01\d{6}$`)

// FormatUserID renders a numeric user id in its wire form, e.g. 42 -> "usr-42".
func FormatUserID(id int64) string {
	return fmt.Sprintf("%s%d", UserIDPrefix, id)
}

// ParseUserID decodes a wire-level user identifier back to its numeric id.
// The input must carry the literal "usr-" prefix followed by an unsigned
// decimal integer; signs, non-digit characters and overflow are all
// rejected with util.ErrInvalidUserID.
func ParseUserID(userID string) (int64, error) {
	if !strings.HasPrefix(userID, UserIDPrefix) {
		return 0, fmt.Errorf("%w: expected format usr-<number>, got '%s'", util.ErrInvalidUserID, userID)
	}
	// ParseUint rejects sign prefixes, so "usr--5" and "usr-+5" fail here.
	id, err := strconv.ParseUint(userID[len(UserIDPrefix):], 10, 63)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid numeric part of user ID '%s'", util.ErrInvalidUserID, userID)
	}
	return int64(id), nil
}

// ValidAccountNumber reports whether s is a well-formed account number.
func ValidAccountNumber(s string) bool {
	return accountNumberPattern.MatchString(s)
}
