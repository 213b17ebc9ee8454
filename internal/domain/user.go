// internal/domain/user.go
package domain

import "time"

// User represents a stored customer record.
// Address holds the structured address serialized to an opaque blob; the
// service layer owns the serialize/deserialize pair, so a fetched record
// always round-trips losslessly back to its structured form.
type User struct {
	ID          int64     `db:"id" json:"id"`                     // Primary key, BIGSERIAL in DB
	Name        string    `db:"name" json:"name"`                 // Full name
	Email       string    `db:"email" json:"email"`               // Contact email
	PhoneNumber string    `db:"phone_number" json:"phone_number"` // E.164 phone number
	Address     string    `db:"address" json:"address"`           // Serialized address blob
	CreatedAt   time.Time `db:"created_at" json:"created_at"`     // Timestamp of creation
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`     // Timestamp of last update
}

// NewUser creates a new User instance. The ID is assigned by the store on insert.
func NewUser(name, email, phoneNumber, address string) *User {
	now := time.Now().UTC()
	return &User{
		Name:        name,
		Email:       email,
		PhoneNumber: phoneNumber,
		Address:     address,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
