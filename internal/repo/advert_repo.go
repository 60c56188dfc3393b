package repo

import (
	"context"
	"time"

	"github.com/mkarimli/go-adboard-client/internal/domain"
	"github.com/mkarimli/go-adboard-client/internal/resource"
)

// AdvertCaller defines the service contract required by AdvertRepository.
type AdvertCaller interface {
	List(ctx context.Context) ([]domain.Advert, error)
	Get(ctx context.Context, id int) (*domain.Advert, error)
	ListByUser(ctx context.Context, userID int) ([]domain.Advert, error)
}

// AdvertProvider is the capability surface UI code depends on for listings.
type AdvertProvider interface {
	List(ctx context.Context) <-chan resource.Result[[]domain.Advert]
	Get(ctx context.Context, id int) <-chan resource.Result[*domain.Advert]
	ListByUser(ctx context.Context, userID int) <-chan resource.Result[[]domain.Advert]
}

// AdvertRepository wraps the advert service in the tri-state lifecycle.
type AdvertRepository struct {
	Svc   AdvertCaller
	Delay time.Duration
}

var _ AdvertProvider = (*AdvertRepository)(nil)

// NewAdvertRepository constructs an AdvertRepository.
func NewAdvertRepository(svc AdvertCaller, delay time.Duration) *AdvertRepository {
	return &AdvertRepository{Svc: svc, Delay: delay}
}

// List emits the lifecycle for fetching all adverts.
func (r *AdvertRepository) List(ctx context.Context) <-chan resource.Result[[]domain.Advert] {
	return run(ctx, r.Delay, "list adverts", func(ctx context.Context) ([]domain.Advert, error) {
		return r.Svc.List(ctx)
	})
}

// Get emits the lifecycle for fetching one advert.
func (r *AdvertRepository) Get(ctx context.Context, id int) <-chan resource.Result[*domain.Advert] {
	return run(ctx, r.Delay, "get advert", func(ctx context.Context) (*domain.Advert, error) {
		return r.Svc.Get(ctx, id)
	})
}

// ListByUser emits the lifecycle for fetching one user's adverts.
func (r *AdvertRepository) ListByUser(ctx context.Context, userID int) <-chan resource.Result[[]domain.Advert] {
	return run(ctx, r.Delay, "list user adverts", func(ctx context.Context) ([]domain.Advert, error) {
		return r.Svc.ListByUser(ctx, userID)
	})
}
