// Package transport implements the single shared HTTP client used by every
// endpoint service. It is constructed once at startup with a session.Store
// handle and never reconstructed; reconstruction would drop in-flight
// configuration such as the tuned http.Client.
//
// Responsibilities:
//   - inject "Authorization: Bearer <token>" computed from the session store
//     per request (a token rotation is visible to the very next call),
//   - set JSON content negotiation headers and a fresh X-Request-ID,
//   - decode responses leniently (unknown fields ignored, absent fields keep
//     declared defaults),
//   - build multipart upload bodies with the backend's "files" part contract,
//   - emit a structured access log, Prometheus metrics, and an OTel span per
//     outgoing request.
//
// Status classification is NOT done here; the services layer maps status
// codes to user-facing messages. The transport only distinguishes "a response
// arrived" from transport-level failure (dial, timeout, body read).
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/mkarimli/go-adboard-client/internal/session"
	"github.com/mkarimli/go-adboard-client/internal/utils"
)

// maxBodyLogLength caps the number of response bytes logged on failures.
const maxBodyLogLength = 512

// Options configures the shared client.
type Options struct {
	// BaseURL is the backend root, without a trailing slash.
	BaseURL string
	// Timeout bounds each request end to end. Zero means 30s.
	Timeout time.Duration
	// HTTPClient overrides the underlying client; tests inject one pointed
	// at an httptest server. When nil, a fresh client with Timeout is used.
	HTTPClient *http.Client
	// Logger receives the per-request access log. Zero value logs are discarded
	// only if the caller passed a disabled logger; the default is zerolog's nop.
	Logger zerolog.Logger
}

// Client is the process-wide transport. Safe for concurrent use.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions *session.Store
	log      zerolog.Logger
	tracer   trace.Tracer
}

// Response is a raw backend response: status, body, and headers. The body is
// fully read and the connection released before the response is returned.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// Decode unmarshals the response body into v. Decoding is lenient: unknown
// JSON fields are ignored and fields absent from the payload keep their
// declared defaults. A nil v or an empty body is a no-op.
func (r *Response) Decode(v any) error {
	if v == nil || len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// New builds the shared transport around the given session store.
func New(opts Options, sessions *session.Store) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:  strings.TrimSuffix(opts.BaseURL, "/"),
		http:     hc,
		sessions: sessions,
		log:      opts.Logger,
		tracer:   otel.Tracer("github.com/mkarimli/go-adboard-client/internal/transport"),
	}
}

// UpdateAuthToken stores the token in the session store. Side-effecting only;
// requests already in flight are not mutated.
func (c *Client) UpdateAuthToken(token string) error {
	return c.sessions.SetSession(token, nil, nil, nil)
}

// ClearAuthToken clears the whole session. Subsequent requests carry no
// Authorization header.
func (c *Client) ClearAuthToken() error {
	return c.sessions.ClearSession()
}

// Get issues a GET request to path.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, "application/json")
}

// JSON issues a request with a JSON-encoded body. A nil in sends no body but
// still carries the JSON content type.
func (c *Client) JSON(ctx context.Context, method, path string, in any) (*Response, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, body, "application/json")
}

// Upload issues a multipart/form-data POST with a single part named "files"
// carrying data under the given filename and content type. A zero-byte
// payload still produces a well-formed multipart body.
func (c *Client) Upload(ctx context.Context, path, filename, contentType string, data []byte) (*Response, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename="%s"`, escapeQuotes(filename)))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, &buf, w.FormDataContentType())
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	rid := uuid.NewString()
	req.Header.Set("X-Request-ID", rid)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	// The token is read from the store at send time, never cached on the
	// client, so a rotation is visible to the very next call.
	if tok, ok := c.sessions.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	route := routeLabel(path)
	spanCtx, span := c.tracer.Start(ctx, method+" "+route,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer span.End()
	req = req.WithContext(spanCtx)

	reqsInflight.Inc()
	start := time.Now()
	resp, err := c.http.Do(req)
	latency := time.Since(start)
	reqsInflight.Dec()

	lg := c.log.With().
		Str("request_id", rid).
		Str("method", method).
		Str("path", path).
		Dur("latency", latency).
		Logger()

	if err != nil {
		reqsTotal.WithLabelValues(method, route, "error").Inc()
		span.RecordError(err)
		lg.Error().Err(err).Msg("request failed")
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		reqsTotal.WithLabelValues(method, route, "error").Inc()
		span.RecordError(err)
		lg.Error().Err(err).Msg("read response failed")
		return nil, fmt.Errorf("read response: %w", err)
	}

	status := resp.StatusCode
	reqsTotal.WithLabelValues(method, route, fmt.Sprintf("%d", status)).Inc()
	reqLatency.WithLabelValues(method, route).Observe(latency.Seconds())
	span.SetAttributes(attribute.Int("http.response.status_code", status))

	ev := lg.Info()
	switch {
	case status >= 500:
		ev = lg.Error().Str("body", utils.Truncate(string(data), maxBodyLogLength))
	case status >= 400:
		ev = lg.Warn().Str("body", utils.Truncate(string(data), maxBodyLogLength))
	}
	ev.Int("status", status).Int("bytes_out", len(data)).Msg("request")

	return &Response{StatusCode: status, Body: data, Header: resp.Header}, nil
}

func escapeQuotes(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
