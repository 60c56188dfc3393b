package repo

import (
	"context"
	"time"

	"github.com/mkarimli/go-adboard-client/internal/domain"
	"github.com/mkarimli/go-adboard-client/internal/resource"
)

// UserCaller defines the service contract required by UserRepository.
type UserCaller interface {
	Get(ctx context.Context, id int) (*domain.User, error)
	Me(ctx context.Context) (*domain.User, error)
	Update(ctx context.Context, id int, req domain.UserUpdateRequest) (*domain.User, error)
}

// ProfileManager is the capability surface UI code depends on for profiles.
type ProfileManager interface {
	Get(ctx context.Context, id int) <-chan resource.Result[*domain.User]
	Me(ctx context.Context) <-chan resource.Result[*domain.User]
	Update(ctx context.Context, id int, req domain.UserUpdateRequest) <-chan resource.Result[*domain.User]
}

// UserRepository wraps the user service in the tri-state lifecycle.
type UserRepository struct {
	Svc   UserCaller
	Delay time.Duration
}

var _ ProfileManager = (*UserRepository)(nil)

// NewUserRepository constructs a UserRepository.
func NewUserRepository(svc UserCaller, delay time.Duration) *UserRepository {
	return &UserRepository{Svc: svc, Delay: delay}
}

// Get emits the lifecycle for fetching a profile by ID.
func (r *UserRepository) Get(ctx context.Context, id int) <-chan resource.Result[*domain.User] {
	return run(ctx, r.Delay, "get user", func(ctx context.Context) (*domain.User, error) {
		return r.Svc.Get(ctx, id)
	})
}

// Me emits the lifecycle for fetching the authenticated profile.
func (r *UserRepository) Me(ctx context.Context) <-chan resource.Result[*domain.User] {
	return run(ctx, r.Delay, "get profile", func(ctx context.Context) (*domain.User, error) {
		return r.Svc.Me(ctx)
	})
}

// Update emits the lifecycle for a profile update.
func (r *UserRepository) Update(ctx context.Context, id int, req domain.UserUpdateRequest) <-chan resource.Result[*domain.User] {
	return run(ctx, r.Delay, "update user", func(ctx context.Context) (*domain.User, error) {
		return r.Svc.Update(ctx, id, req)
	})
}
