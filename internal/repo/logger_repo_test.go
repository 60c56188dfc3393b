package repo

import (
	"context"
	"testing"

	"github.com/mkarimli/go-adboard-client/internal/domain"
)

type fakeLoggerCaller struct {
	entry   *domain.LogEntry
	entries []domain.LogEntry
	err     error

	createReq domain.LogEntryRequest
}

func (f *fakeLoggerCaller) Create(ctx context.Context, req domain.LogEntryRequest) (*domain.LogEntry, error) {
	f.createReq = req
	return f.entry, f.err
}

func (f *fakeLoggerCaller) List(ctx context.Context) ([]domain.LogEntry, error) {
	return f.entries, f.err
}

func TestLoggerRepository_Create(t *testing.T) {
	fake := &fakeLoggerCaller{entry: &domain.LogEntry{ID: 1, Message: "screen viewed"}}
	r := NewLoggerRepository(fake, 0)

	got := collect(r.Create(context.Background(), domain.LogEntryRequest{Message: "screen viewed", Level: "info"}))
	if len(got) != 2 || !got[1].IsSuccess() {
		t.Fatalf("states = %+v", got)
	}
	if fake.createReq.Message != "screen viewed" {
		t.Fatalf("request not forwarded: %+v", fake.createReq)
	}
}

func TestLoggerRepository_List(t *testing.T) {
	fake := &fakeLoggerCaller{entries: []domain.LogEntry{{ID: 1}, {ID: 2}}}
	r := NewLoggerRepository(fake, 0)

	got := collect(r.List(context.Background()))
	if !got[1].IsSuccess() || len(got[1].Value) != 2 {
		t.Fatalf("terminal = %+v", got[1])
	}
}
