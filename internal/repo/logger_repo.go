package repo

import (
	"context"
	"time"

	"github.com/mkarimli/go-adboard-client/internal/domain"
	"github.com/mkarimli/go-adboard-client/internal/resource"
)

// LoggerCaller defines the service contract required by LoggerRepository.
type LoggerCaller interface {
	Create(ctx context.Context, req domain.LogEntryRequest) (*domain.LogEntry, error)
	List(ctx context.Context) ([]domain.LogEntry, error)
}

// LogRecorder is the capability surface UI code depends on for remote logs.
type LogRecorder interface {
	Create(ctx context.Context, req domain.LogEntryRequest) <-chan resource.Result[*domain.LogEntry]
	List(ctx context.Context) <-chan resource.Result[[]domain.LogEntry]
}

// LoggerRepository wraps the logger service in the tri-state lifecycle.
type LoggerRepository struct {
	Svc   LoggerCaller
	Delay time.Duration
}

var _ LogRecorder = (*LoggerRepository)(nil)

// NewLoggerRepository constructs a LoggerRepository.
func NewLoggerRepository(svc LoggerCaller, delay time.Duration) *LoggerRepository {
	return &LoggerRepository{Svc: svc, Delay: delay}
}

// Create emits the lifecycle for recording one remote log entry.
func (r *LoggerRepository) Create(ctx context.Context, req domain.LogEntryRequest) <-chan resource.Result[*domain.LogEntry] {
	return run(ctx, r.Delay, "record log entry", func(ctx context.Context) (*domain.LogEntry, error) {
		return r.Svc.Create(ctx, req)
	})
}

// List emits the lifecycle for fetching the remote log entries.
func (r *LoggerRepository) List(ctx context.Context) <-chan resource.Result[[]domain.LogEntry] {
	return run(ctx, r.Delay, "list log entries", func(ctx context.Context) ([]domain.LogEntry, error) {
		return r.Svc.List(ctx)
	})
}
