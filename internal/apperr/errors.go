// Package apperr defines the error kinds surfaced to API callers.
//
// Each sentinel classifies a failure; callers wrap them with context via
// fmt.Errorf("%w: ...") and the server layer maps each kind to an HTTP
// status. Failures are local to one request and never fatal.
package apperr

import "errors"

var (
	// ErrNotFound indicates a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a missing or malformed required field.
	ErrValidation = errors.New("validation failed")

	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized indicates a missing, invalid, or expired bearer
	// credential on a protected endpoint.
	ErrUnauthorized = errors.New("authorization required")

	// ErrInvalidGroupState indicates a balance was requested for a group
	// with no members.
	ErrInvalidGroupState = errors.New("group has no members")

	// ErrInconsistentData indicates relational data that violates an
	// invariant, such as an expense whose payer is not a group member.
	ErrInconsistentData = errors.New("inconsistent group data")
)
