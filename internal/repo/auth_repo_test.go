package repo

import (
	"context"
	"testing"

	"github.com/mkarimli/go-adboard-client/internal/domain"
	"github.com/mkarimli/go-adboard-client/internal/services"
	"github.com/mkarimli/go-adboard-client/internal/session"
)

// ----- Fake service -----

type fakeAuthCaller struct {
	loginReq    domain.LoginRequest
	registerReq domain.RegisterRequest
	resp        *domain.AuthResponse
	err         error
}

func (f *fakeAuthCaller) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	f.loginReq = req
	return f.resp, f.err
}

func (f *fakeAuthCaller) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	f.registerReq = req
	return f.resp, f.err
}

func TestAuthRepository_Login_SuccessAndExplicitSessionStore(t *testing.T) {
	user := &domain.User{ID: 3, Username: "anna", Email: "a@b.com"}
	fake := &fakeAuthCaller{resp: &domain.AuthResponse{JWT: "jwt.abc", User: user}}
	r := NewAuthRepository(fake, 0)
	store := session.NewStore(session.NewMemoryKV())

	got := collect(r.Login(context.Background(), domain.LoginRequest{Identifier: "a@b.com", Password: "p"}))

	if len(got) != 2 || !got[0].IsLoading() || !got[1].IsSuccess() {
		t.Fatalf("states = %+v", got)
	}
	resp := got[1].Value
	if resp.JWT != "jwt.abc" || resp.User.ID != 3 {
		t.Fatalf("value = %+v", resp)
	}
	if fake.loginReq.Identifier != "a@b.com" {
		t.Fatalf("request not forwarded: %+v", fake.loginReq)
	}

	// The repository never touches the session; only the explicit store
	// call flips IsLoggedIn.
	if store.IsLoggedIn() {
		t.Fatal("session must stay empty until the caller stores the token")
	}
	if err := store.SetSession(resp.JWT, &resp.User.ID, &resp.User.Email, &resp.User.Username); err != nil {
		t.Fatalf("SetSession: %v", err)
	}
	if !store.IsLoggedIn() {
		t.Fatal("session must be logged in after the explicit store")
	}
}

func TestAuthRepository_Register_ConflictMessage(t *testing.T) {
	fake := &fakeAuthCaller{err: &services.Error{Status: 409, Message: "email or username already exists"}}
	r := NewAuthRepository(fake, 0)

	got := collect(r.Register(context.Background(), domain.RegisterRequest{Username: "anna"}))

	if len(got) != 2 || !got[1].IsError() {
		t.Fatalf("states = %+v", got)
	}
	if got[1].Message != "email or username already exists" {
		t.Fatalf("message = %q", got[1].Message)
	}
}
