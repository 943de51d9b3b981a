package ports

import (
	"context"

	"github.com/retailrelay/commerce-api/internal/core/domain"
)

// RegisterInput carries the fields a new account is created from.
// Role is deliberately absent: registration always yields a CUSTOMER.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthResult is returned by the flows that end in token issuance.
type AuthResult struct {
	User   *domain.User
	Tokens TokenPair
}

// AuthService defines the authentication use cases.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	// Refresh redeems a valid refresh token for a fresh token pair.
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
}
