package ports

import (
	"context"

	"github.com/vendly/auction-api/internal/core/domain"
)

// UserRepository defines the persistence contract for user records.
// Implementations return domain.ErrUserNotFound when no record matches and
// domain.ErrEmailAlreadyRegistered on a unique-email violation.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByIdentifier looks up a user whose email OR username equals the
	// identifier. Usernames are not unique; the first match wins.
	FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

// ClientProfileRepository persists the dependent profile created for
// client-role users.
type ClientProfileRepository interface {
	Create(ctx context.Context, profile *domain.ClientProfile) error
}
