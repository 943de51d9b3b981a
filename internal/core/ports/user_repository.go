package ports

import (
	"context"

	"github.com/retailrelay/commerce-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Create must surface a duplicate-key violation as domain.ErrEmailTaken;
// the store's unique index on email is the final arbiter under races.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
