// Package services – AuthService
//
// AuthService issues the credential exchange calls. Neither method touches
// the session store: the caller receives the JWT inside AuthResponse and
// stores it explicitly. This keeps token custody in exactly one place
// (session.Store) and makes the services stateless.
package services

import (
	"context"
	"net/http"

	"github.com/mkarimli/go-adboard-client/internal/domain"
)

const (
	loginPath    = "/api/auth/local"
	registerPath = "/api/auth/local/register"
)

// AuthService exchanges credentials for a JWT and user record.
type AuthService struct {
	TP Transport
}

// NewAuthService constructs an AuthService over the shared transport.
func NewAuthService(tp Transport) *AuthService {
	return &AuthService{TP: tp}
}

// Login authenticates with an email-or-username identifier and password.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	resp, err := s.TP.JSON(ctx, http.MethodPost, loginPath, req)
	var out domain.AuthResponse
	if err := outcome(resp, err, "credentials", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account. A 409 means the email or username is
// already taken, which gets its own message instead of the generic conflict.
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	resp, err := s.TP.JSON(ctx, http.MethodPost, registerPath, req)
	if err == nil && resp.StatusCode == http.StatusConflict {
		return nil, &Error{Status: http.StatusConflict, Message: "email or username already exists"}
	}
	var out domain.AuthResponse
	if err := outcome(resp, err, "registration", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
