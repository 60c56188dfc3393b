package repo

import (
	"context"
	"time"

	"github.com/mkarimli/go-adboard-client/internal/domain"
	"github.com/mkarimli/go-adboard-client/internal/resource"
)

// AddressCaller defines the service contract required by AddressRepository.
type AddressCaller interface {
	List(ctx context.Context, userID int) ([]domain.Address, error)
	Create(ctx context.Context, req domain.AddressRequest) (*domain.Address, error)
	Update(ctx context.Context, id int, req domain.AddressRequest) (*domain.Address, error)
	Delete(ctx context.Context, id int) error
}

// AddressManager is the capability surface UI code depends on for addresses.
type AddressManager interface {
	List(ctx context.Context, userID int) <-chan resource.Result[[]domain.Address]
	Create(ctx context.Context, req domain.AddressRequest) <-chan resource.Result[*domain.Address]
	Update(ctx context.Context, id int, req domain.AddressRequest) <-chan resource.Result[*domain.Address]
	Delete(ctx context.Context, id int) <-chan resource.Result[struct{}]
}

// AddressRepository wraps the address service in the tri-state lifecycle.
type AddressRepository struct {
	Svc   AddressCaller
	Delay time.Duration
}

var _ AddressManager = (*AddressRepository)(nil)

// NewAddressRepository constructs an AddressRepository.
func NewAddressRepository(svc AddressCaller, delay time.Duration) *AddressRepository {
	return &AddressRepository{Svc: svc, Delay: delay}
}

// List emits the lifecycle for fetching a user's addresses.
func (r *AddressRepository) List(ctx context.Context, userID int) <-chan resource.Result[[]domain.Address] {
	return run(ctx, r.Delay, "list addresses", func(ctx context.Context) ([]domain.Address, error) {
		return r.Svc.List(ctx, userID)
	})
}

// Create emits the lifecycle for storing a new address.
func (r *AddressRepository) Create(ctx context.Context, req domain.AddressRequest) <-chan resource.Result[*domain.Address] {
	return run(ctx, r.Delay, "create address", func(ctx context.Context) (*domain.Address, error) {
		return r.Svc.Create(ctx, req)
	})
}

// Update emits the lifecycle for replacing an address.
func (r *AddressRepository) Update(ctx context.Context, id int, req domain.AddressRequest) <-chan resource.Result[*domain.Address] {
	return run(ctx, r.Delay, "update address", func(ctx context.Context) (*domain.Address, error) {
		return r.Svc.Update(ctx, id, req)
	})
}

// Delete emits the lifecycle for removing an address. The success value is
// empty; only the state matters to consumers.
func (r *AddressRepository) Delete(ctx context.Context, id int) <-chan resource.Result[struct{}] {
	return run(ctx, r.Delay, "delete address", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, r.Svc.Delete(ctx, id)
	})
}
