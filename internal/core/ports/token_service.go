package ports

import "github.com/retailrelay/commerce-api/internal/core/domain"

// TokenClaims is the identity payload carried inside a signed token.
type TokenClaims struct {
	UserID string
	Email  string
	Role   domain.Role
}

// TokenPair bundles the access token with its longer-lived refresh companion.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenService issues and verifies self-contained signed tokens. Verification
// depends only on the token bytes and a fixed secret; there is no server-side
// session state.
type TokenService interface {
	Issue(user *domain.User) (TokenPair, error)
	// Verify checks an access token and returns its claims, or
	// domain.ErrTokenExpired / domain.ErrInvalidToken.
	Verify(token string) (*TokenClaims, error)
	// VerifyRefresh checks a refresh token against the refresh secret.
	VerifyRefresh(token string) (*TokenClaims, error)
}
