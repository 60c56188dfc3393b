package services

import (
	"context"

	"github.com/mkarimli/go-adboard-client/internal/transport"
)

// ----- Fake transport -----

type stubTransport struct {
	status int
	body   string
	err    error

	// captured args
	method, path          string
	in                    any
	filename, contentType string
	data                  []byte
}

func (s *stubTransport) respond() (*transport.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &transport.Response{StatusCode: s.status, Body: []byte(s.body)}, nil
}

func (s *stubTransport) Get(ctx context.Context, path string) (*transport.Response, error) {
	s.method, s.path = "GET", path
	return s.respond()
}

func (s *stubTransport) JSON(ctx context.Context, method, path string, in any) (*transport.Response, error) {
	s.method, s.path, s.in = method, path, in
	return s.respond()
}

func (s *stubTransport) Upload(ctx context.Context, path, filename, contentType string, data []byte) (*transport.Response, error) {
	s.method, s.path = "POST", path
	s.filename, s.contentType, s.data = filename, contentType, data
	return s.respond()
}
