package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/retailrelay/commerce-api/internal/core/domain"
	"github.com/retailrelay/commerce-api/internal/core/ports"
)

const refreshTokenUse = "refresh"

// tokenClaims is the wire shape of both token types. TokenUse distinguishes
// refresh tokens so an access secret leak cannot be parlayed into refreshes.
type tokenClaims struct {
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
	TokenUse string      `json:"token_use,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed JWTs. Access and refresh
// tokens use distinct secrets and lifetimes.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// Issue signs an access/refresh pair for the given user.
func (s *TokenService) Issue(user *domain.User) (ports.TokenPair, error) {
	access, err := s.sign(user, s.accessSecret, s.accessTTL, "")
	if err != nil {
		return ports.TokenPair{}, err
	}
	refresh, err := s.sign(user, s.refreshSecret, s.refreshTTL, refreshTokenUse)
	if err != nil {
		return ports.TokenPair{}, err
	}
	return ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Verify parses an access token. It returns domain.ErrTokenExpired when the
// token is well-formed but past its expiry, and domain.ErrInvalidToken for
// every other failure (malformed, wrong signature, wrong token use).
func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	return s.parse(token, s.accessSecret, "")
}

// VerifyRefresh parses a refresh token against the refresh secret.
func (s *TokenService) VerifyRefresh(token string) (*ports.TokenClaims, error) {
	return s.parse(token, s.refreshSecret, refreshTokenUse)
}

func (s *TokenService) sign(user *domain.User, secret []byte, ttl time.Duration, use string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Email:    user.Email,
		Role:     user.Role,
		TokenUse: use,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (s *TokenService) parse(token string, secret []byte, wantUse string) (*ports.TokenClaims, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}
	if !parsed.Valid || claims.TokenUse != wantUse {
		return nil, domain.ErrInvalidToken
	}
	return &ports.TokenClaims{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
