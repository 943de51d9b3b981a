package handler

import (
	"github.com/retailrelay/commerce-api/internal/core/domain"
	"github.com/retailrelay/commerce-api/internal/core/ports"
)

type registerRequest struct {
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=6"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// authData is the payload under "data" for register/login/refresh. The user
// serializes through the domain type, whose password hash is json:"-".
type authData struct {
	User   *domain.User    `json:"user"`
	Tokens ports.TokenPair `json:"tokens"`
}
