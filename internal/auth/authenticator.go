package auth

import (
	"context"

	"github.com/mmynk/billkeeper/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods
// (password, OAuth, etc.) without changing the handler layer.
type Authenticator interface {
	// Register creates a new user account with the given credential.
	// Returns ErrEmailExists if the email is already taken.
	Register(ctx context.Context, firstName, lastName, email, credential string) (*models.User, error)

	// Authenticate verifies the user's credential and returns the user
	// if successful. Returns ErrUserNotFound when no account exists for
	// the email and ErrInvalidPassword when the credential does not
	// match — callers need to tell the two apart.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)
}
