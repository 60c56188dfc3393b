package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mkarimli/go-adboard-client/internal/domain"
)

func TestAuthService_Login_Success(t *testing.T) {
	tp := &stubTransport{
		status: 200,
		body:   `{"jwt": "abc.def", "user": {"id": 3, "username": "anna", "email": "a@b.com"}}`,
	}
	svc := NewAuthService(tp)

	got, err := svc.Login(context.Background(), domain.LoginRequest{Identifier: "a@b.com", Password: "p"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.JWT != "abc.def" {
		t.Errorf("jwt = %q", got.JWT)
	}
	if got.User == nil || got.User.ID != 3 || got.User.Username != "anna" {
		t.Errorf("user = %+v", got.User)
	}
	if tp.method != "POST" || tp.path != "/api/auth/local" {
		t.Errorf("request = %s %s", tp.method, tp.path)
	}
	req, ok := tp.in.(domain.LoginRequest)
	if !ok || req.Identifier != "a@b.com" {
		t.Errorf("payload = %+v", tp.in)
	}
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	tp := &stubTransport{status: 400, body: `{}`}
	svc := NewAuthService(tp)

	_, err := svc.Login(context.Background(), domain.LoginRequest{})
	if err == nil || err.Error() != "invalid credentials data" {
		t.Fatalf("err = %v", err)
	}
}

func TestAuthService_Register_DuplicateConflict(t *testing.T) {
	tp := &stubTransport{status: 409, body: `{}`}
	svc := NewAuthService(tp)

	_, err := svc.Register(context.Background(), domain.RegisterRequest{Username: "anna"})
	if err == nil || err.Error() != "email or username already exists" {
		t.Fatalf("err = %v", err)
	}
	var se *Error
	if !errors.As(err, &se) || se.Status != 409 {
		t.Fatalf("classified error lost: %v", err)
	}
	if tp.path != "/api/auth/local/register" {
		t.Errorf("path = %s", tp.path)
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	tp := &stubTransport{status: 200, body: `{"jwt": "new.jwt"}`}
	svc := NewAuthService(tp)

	got, err := svc.Register(context.Background(), domain.RegisterRequest{Username: "b", Email: "b@c.d", Password: "p"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if got.JWT != "new.jwt" {
		t.Errorf("jwt = %q", got.JWT)
	}
}

func TestAuthService_Login_NetworkFailure(t *testing.T) {
	tp := &stubTransport{err: errors.New("dial tcp: connection refused")}
	svc := NewAuthService(tp)

	_, err := svc.Login(context.Background(), domain.LoginRequest{})
	if err == nil || err.Error() != "network error: dial tcp: connection refused" {
		t.Fatalf("err = %v", err)
	}
}
