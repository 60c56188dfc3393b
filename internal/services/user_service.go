package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mkarimli/go-adboard-client/internal/domain"
)

const usersPath = "/api/users"

// UserService reads and updates user profiles.
type UserService struct {
	TP Transport
}

// NewUserService constructs a UserService over the shared transport.
func NewUserService(tp Transport) *UserService {
	return &UserService{TP: tp}
}

// Get returns the user identified by id.
func (s *UserService) Get(ctx context.Context, id int) (*domain.User, error) {
	resp, err := s.TP.Get(ctx, fmt.Sprintf("%s/%d", usersPath, id))
	var out domain.User
	if err := outcome(resp, err, "user", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the profile of the authenticated user.
func (s *UserService) Me(ctx context.Context) (*domain.User, error) {
	resp, err := s.TP.Get(ctx, usersPath+"/me")
	var out domain.User
	if err := outcome(resp, err, "user", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update modifies the profile fields supplied in req (nil fields untouched).
func (s *UserService) Update(ctx context.Context, id int, req domain.UserUpdateRequest) (*domain.User, error) {
	resp, err := s.TP.JSON(ctx, http.MethodPut, fmt.Sprintf("%s/%d", usersPath, id), req)
	var out domain.User
	if err := outcome(resp, err, "user", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
