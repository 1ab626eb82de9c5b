package auth

import (
	"context"

	"github.com/spliteasy/spliteasy/internal/models"
)

// Authenticator defines the interface for credential verification.
// The abstraction keeps the service layer independent of the hashing
// scheme, so passwords could be swapped for passkeys or OAuth without
// touching the handlers.
type Authenticator interface {
	// Register creates a new user account with the given name, email,
	// and credential. Returns the created user or an error if the email
	// is taken or the credential is rejected.
	Register(ctx context.Context, name, email, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user
	// if successful.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the
	// implementation's requirements (length, format, ...).
	ValidateCredential(credential string) error
}
