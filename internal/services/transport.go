package services

import (
	"context"
	"net/http"

	"github.com/mkarimli/go-adboard-client/internal/transport"
)

// Transport defines the request surface the services require. It is
// implemented by *transport.Client; tests substitute a stub.
type Transport interface {
	// Get issues a GET request to path.
	Get(ctx context.Context, path string) (*transport.Response, error)

	// JSON issues a request with a JSON-encoded body (nil in allowed).
	JSON(ctx context.Context, method, path string, in any) (*transport.Response, error)

	// Upload issues a multipart/form-data POST with one "files" part.
	Upload(ctx context.Context, path, filename, contentType string, data []byte) (*transport.Response, error)
}

// outcome applies the shared success/failure contract to a raw response:
// transport failures become network errors, non-2xx statuses are classified
// per resource, and on success the body is decoded leniently into out.
func outcome(resp *transport.Response, err error, resource string, out any) error {
	if err != nil {
		return netError(err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return classify(resp.StatusCode, resource)
	}
	if err := resp.Decode(out); err != nil {
		return netError(err)
	}
	return nil
}
