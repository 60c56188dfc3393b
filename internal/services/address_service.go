package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mkarimli/go-adboard-client/internal/domain"
)

const addressesPath = "/api/addresses"

// AddressService manages the delivery addresses attached to a profile.
type AddressService struct {
	TP Transport
}

// NewAddressService constructs an AddressService over the shared transport.
func NewAddressService(tp Transport) *AddressService {
	return &AddressService{TP: tp}
}

// List returns the addresses belonging to userID.
func (s *AddressService) List(ctx context.Context, userID int) ([]domain.Address, error) {
	resp, err := s.TP.Get(ctx, fmt.Sprintf("%s?user=%d", addressesPath, userID))
	var out []domain.Address
	if err := outcome(resp, err, "address", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create stores a new address. The backend answers 200 or 201 depending on
// its version; both are success.
func (s *AddressService) Create(ctx context.Context, req domain.AddressRequest) (*domain.Address, error) {
	resp, err := s.TP.JSON(ctx, http.MethodPost, addressesPath, req)
	var out domain.Address
	if err := outcome(resp, err, "address", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the address identified by id.
func (s *AddressService) Update(ctx context.Context, id int, req domain.AddressRequest) (*domain.Address, error) {
	resp, err := s.TP.JSON(ctx, http.MethodPut, fmt.Sprintf("%s/%d", addressesPath, id), req)
	var out domain.Address
	if err := outcome(resp, err, "address", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the address identified by id.
func (s *AddressService) Delete(ctx context.Context, id int) error {
	resp, err := s.TP.JSON(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", addressesPath, id), nil)
	return outcome(resp, err, "address", nil)
}
