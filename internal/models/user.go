package models

// User represents a registered user account.
//
// PasswordHash holds the bcrypt hash of the user's password. It is never
// serialized in API responses; the server layer maps users to response
// DTOs that omit it.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Name is the display name of the user.
	Name string

	// Email is the user's email address (unique across users).
	// Used for login and for joining groups by email lookup.
	Email string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last profile update.
	UpdatedAt int64
}
