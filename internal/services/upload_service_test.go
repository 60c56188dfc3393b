package services

import (
	"context"
	"testing"
)

func TestUploadService_Success(t *testing.T) {
	tp := &stubTransport{
		status: 200,
		body:   `[{"id": 10, "name": "cat.png", "url": "/uploads/cat.png", "mime": "image/png"}]`,
	}
	svc := NewUploadService(tp)

	got, err := svc.Upload(context.Background(), "cat.png", "image/png", []byte("bytes"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if len(got) != 1 || got[0].Name != "cat.png" || got[0].URL != "/uploads/cat.png" {
		t.Fatalf("files = %+v", got)
	}
	if tp.path != "/api/upload" || tp.filename != "cat.png" || tp.contentType != "image/png" {
		t.Errorf("captured = %s %s %s", tp.path, tp.filename, tp.contentType)
	}
}

func TestUploadService_PayloadTooLarge(t *testing.T) {
	tp := &stubTransport{status: 413, body: `{}`}
	svc := NewUploadService(tp)

	_, err := svc.Upload(context.Background(), "big.bin", "application/octet-stream", make([]byte, 8))
	if err == nil || err.Error() != "payload too large" {
		t.Fatalf("err = %v", err)
	}
}

func TestUploadService_ZeroBytePayloadPassesThrough(t *testing.T) {
	tp := &stubTransport{status: 200, body: `[]`}
	svc := NewUploadService(tp)

	got, err := svc.Upload(context.Background(), "empty.bin", "application/octet-stream", nil)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("files = %+v", got)
	}
	if tp.data != nil {
		t.Errorf("data = %v, want nil passthrough", tp.data)
	}
}
