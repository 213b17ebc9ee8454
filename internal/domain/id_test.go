// internal/domain/id_test.go
package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eagle-bank-api/internal/util"
)

func TestFormatUserID(t *testing.T) {
	assert.Equal(t, "usr-42", FormatUserID(42))
	assert.Equal(t, "usr-0", FormatUserID(0))
}

func TestParseUserID(t *testing.T) {
	t.Run("decodes a well-formed identifier", func(t *testing.T) {
		id, err := ParseUserID("usr-42")
		assert.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("round trips with FormatUserID", func(t *testing.T) {
		id, err := ParseUserID(FormatUserID(123456789))
		assert.NoError(t, err)
		assert.Equal(t, int64(123456789), id)
	})

	t.Run("rejects a wrong prefix", func(t *testing.T) {
		_, err := ParseUserID("foo-42")
		assert.ErrorIs(t, err, util.ErrInvalidUserID)
		assert.Contains(t, err.Error(), "foo-42")
	})

	t.Run("rejects a non-numeric suffix", func(t *testing.T) {
		_, err := ParseUserID("usr-abc")
		assert.ErrorIs(t, err, util.ErrInvalidUserID)
		assert.Contains(t, err.Error(), "usr-abc")
	})

	t.Run("rejects a signed suffix", func(t *testing.T) {
		_, err := ParseUserID("usr--5")
		assert.ErrorIs(t, err, util.ErrInvalidUserID)

		_, err = ParseUserID("usr-+5")
		assert.ErrorIs(t, err, util.ErrInvalidUserID)
	})

	t.Run("rejects an overflowing suffix", func(t *testing.T) {
		_, err := ParseUserID("usr-99999999999999999999999999")
		assert.ErrorIs(t, err, util.ErrInvalidUserID)
	})

	t.Run("rejects an empty suffix and missing prefix", func(t *testing.T) {
		_, err := ParseUserID("usr-")
		assert.ErrorIs(t, err, util.ErrInvalidUserID)

		_, err = ParseUserID("42")
		assert.ErrorIs(t, err, util.ErrInvalidUserID)

		_, err = ParseUserID("")
		assert.ErrorIs(t, err, util.ErrInvalidUserID)
	})
}

func TestValidAccountNumber(t *testing.T) {
	valid := []string{"01234567", "01000000", "01999999"}
	for _, number := range valid {
		assert.True(t, ValidAccountNumber(number), number)
	}

	invalid := []string{
		"",
		"02123456",   // wrong prefix
		"0123456",    // too short
		"012345678",  // too long
		"01abc123",   // non-digit suffix
		" 01234567",  // leading whitespace
		"01234567 ",  // trailing whitespace
		"usr-123456", // not an account number at all
	}
	for _, number := range invalid {
		assert.False(t, ValidAccountNumber(number), number)
	}
}
