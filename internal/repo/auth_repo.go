package repo

import (
	"context"
	"time"

	"github.com/mkarimli/go-adboard-client/internal/domain"
	"github.com/mkarimli/go-adboard-client/internal/resource"
)

// AuthCaller defines the service contract required by AuthRepository.
type AuthCaller interface {
	Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)
}

// Authenticator is the capability surface UI code depends on for auth flows.
type Authenticator interface {
	Login(ctx context.Context, req domain.LoginRequest) <-chan resource.Result[*domain.AuthResponse]
	Register(ctx context.Context, req domain.RegisterRequest) <-chan resource.Result[*domain.AuthResponse]
}

// AuthRepository wraps the auth service in the tri-state lifecycle.
type AuthRepository struct {
	Svc AuthCaller
	// Delay is the optional UX smoothing pause before terminal states.
	Delay time.Duration
}

var _ Authenticator = (*AuthRepository)(nil)

// NewAuthRepository constructs an AuthRepository.
func NewAuthRepository(svc AuthCaller, delay time.Duration) *AuthRepository {
	return &AuthRepository{Svc: svc, Delay: delay}
}

// Login emits Loading, performs the credential exchange, and emits the
// terminal state. Storing the returned JWT is the caller's move.
func (r *AuthRepository) Login(ctx context.Context, req domain.LoginRequest) <-chan resource.Result[*domain.AuthResponse] {
	return run(ctx, r.Delay, "login", func(ctx context.Context) (*domain.AuthResponse, error) {
		return r.Svc.Login(ctx, req)
	})
}

// Register emits Loading, creates the account, and emits the terminal state.
func (r *AuthRepository) Register(ctx context.Context, req domain.RegisterRequest) <-chan resource.Result[*domain.AuthResponse] {
	return run(ctx, r.Delay, "register", func(ctx context.Context) (*domain.AuthResponse, error) {
		return r.Svc.Register(ctx, req)
	})
}
