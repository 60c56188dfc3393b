package repo

import (
	"context"
	"testing"

	"github.com/mkarimli/go-adboard-client/internal/domain"
	"github.com/mkarimli/go-adboard-client/internal/services"
)

type fakeUserCaller struct {
	user *domain.User
	err  error

	updateID  int
	updateReq domain.UserUpdateRequest
}

func (f *fakeUserCaller) Get(ctx context.Context, id int) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeUserCaller) Me(ctx context.Context) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeUserCaller) Update(ctx context.Context, id int, req domain.UserUpdateRequest) (*domain.User, error) {
	f.updateID, f.updateReq = id, req
	return f.user, f.err
}

func TestUserRepository_Me(t *testing.T) {
	fake := &fakeUserCaller{user: &domain.User{ID: 2, Username: "ben"}}
	r := NewUserRepository(fake, 0)

	got := collect(r.Me(context.Background()))
	if len(got) != 2 || !got[1].IsSuccess() || got[1].Value.Username != "ben" {
		t.Fatalf("states = %+v", got)
	}
}

func TestUserRepository_Update_Unauthorized(t *testing.T) {
	fake := &fakeUserCaller{err: &services.Error{Status: 401, Message: "unauthorized"}}
	r := NewUserRepository(fake, 0)

	name := "nina"
	got := collect(r.Update(context.Background(), 2, domain.UserUpdateRequest{Username: &name}))
	if !got[1].IsError() || got[1].Message != "unauthorized" {
		t.Fatalf("terminal = %+v", got[1])
	}
	if fake.updateID != 2 || fake.updateReq.Username == nil {
		t.Fatalf("args not forwarded: id=%d req=%+v", fake.updateID, fake.updateReq)
	}
}
