package services

import (
	"context"
	"fmt"

	"github.com/mkarimli/go-adboard-client/internal/domain"
)

const advertsPath = "/api/adverts"

// AdvertService retrieves published listings.
type AdvertService struct {
	TP Transport
}

// NewAdvertService constructs an AdvertService over the shared transport.
func NewAdvertService(tp Transport) *AdvertService {
	return &AdvertService{TP: tp}
}

// List returns all published adverts.
func (s *AdvertService) List(ctx context.Context) ([]domain.Advert, error) {
	resp, err := s.TP.Get(ctx, advertsPath)
	var out []domain.Advert
	if err := outcome(resp, err, "advert", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns a single advert by ID.
func (s *AdvertService) Get(ctx context.Context, id int) (*domain.Advert, error) {
	resp, err := s.TP.Get(ctx, fmt.Sprintf("%s/%d", advertsPath, id))
	var out domain.Advert
	if err := outcome(resp, err, "advert", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByUser returns the adverts published by one user.
func (s *AdvertService) ListByUser(ctx context.Context, userID int) ([]domain.Advert, error) {
	resp, err := s.TP.Get(ctx, fmt.Sprintf("%s?user=%d", advertsPath, userID))
	var out []domain.Advert
	if err := outcome(resp, err, "advert", &out); err != nil {
		return nil, err
	}
	return out, nil
}
