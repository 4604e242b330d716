package ports

import (
	"context"

	"github.com/vendly/auction-api/internal/core/domain"
)

// RegisterInput is the DTO passed from the transport layer to AuthService.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
}

// AuthService covers registration, credential login, and the per-request
// resolution of a bearer token back to a live user record.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login accepts an email or a username as identifier and returns a signed
	// bearer token on success. Unknown identifier and wrong password collapse
	// into the same domain.ErrInvalidCredentials.
	Login(ctx context.Context, identifier, password string) (string, error)
	// Authenticate decodes a bearer token and re-reads the user it speaks
	// for. Every failure mode maps to domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, tokenString string) (*domain.User, error)
}

// LoginLimiter throttles repeated failed logins per identifier.
type LoginLimiter interface {
	TooManyFailures(ctx context.Context, identifier string) (bool, error)
	RecordFailure(ctx context.Context, identifier string) error
	Reset(ctx context.Context, identifier string) error
}
