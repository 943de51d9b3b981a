package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/retailrelay/commerce-api/internal/core/domain"
	"github.com/retailrelay/commerce-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	// Mirrors the unique index on email.
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user_%d", r.nextID)
	r.byEmail[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newAuthService(repo *stubUserRepo) *AuthService {
	tokens := NewTokenService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	return NewAuthService(repo, tokens, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestAuthService_Register_Success(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	res, err := svc.Register(context.Background(), registerIn("a@b.com", "secret1"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if res.User.PasswordHash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(res.User.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if res.User.Role != domain.RoleCustomer {
		t.Fatalf("expected CUSTOMER role, got %s", res.User.Role)
	}
	if res.Tokens.AccessToken == "" || res.Tokens.RefreshToken == "" {
		t.Fatalf("expected token pair, got %+v", res.Tokens)
	}
}

func TestAuthService_Register_NormalizesEmail(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	res, err := svc.Register(context.Background(), registerIn("  Alice@Example.COM ", "secret1"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if res.User.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", res.User.Email)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	cases := []struct {
		email    string
		password string
	}{
		{"", "secret1"},
		{"a@b.com", ""},
		{"a@b.com", "short"}, // under 6 characters
	}
	for _, tc := range cases {
		if _, err := svc.Register(context.Background(), registerIn(tc.email, tc.password)); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("email=%q password=%q: expected ErrValidation, got %v", tc.email, tc.password, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), registerIn("bob@example.com", "secret1")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	// Same address modulo case and whitespace.
	if _, err := svc.Register(context.Background(), registerIn(" BOB@example.com ", "secret2")); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), registerIn("carol@example.com", "s3cret1")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	res, err := svc.Login(context.Background(), "Carol@Example.com", "s3cret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.Tokens.AccessToken == "" {
		t.Fatalf("expected access token")
	}

	claims, err := svc.tokens.Verify(res.Tokens.AccessToken)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != res.User.ID || claims.Email != "carol@example.com" || claims.Role != domain.RoleCustomer {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	_, _ = svc.Register(context.Background(), registerIn("dave@example.com", "goodpass"))
	if _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUserIndistinguishable(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	// A missing account must yield the same error as a wrong password.
	if _, err := svc.Login(context.Background(), "ghost@example.com", "whatever1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Profile / Refresh
// ---------------------------------------------------------------------------

func TestAuthService_Profile(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	res, err := svc.Register(context.Background(), registerIn("erin@example.com", "secret1"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.Profile(context.Background(), res.User.ID)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if user.Email != "erin@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.Profile(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Refresh(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	res, err := svc.Register(context.Background(), registerIn("frank@example.com", "secret1"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	renewed, err := svc.Refresh(context.Background(), res.Tokens.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if renewed.Tokens.AccessToken == "" || renewed.User.ID != res.User.ID {
		t.Fatalf("unexpected refresh result: %+v", renewed)
	}

	// An access token is not redeemable.
	if _, err := svc.Refresh(context.Background(), res.Tokens.AccessToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func registerIn(email, password string) ports.RegisterInput {
	return ports.RegisterInput{
		Email:     email,
		Password:  password,
		FirstName: "Test",
		LastName:  "User",
	}
}
