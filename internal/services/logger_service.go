package services

import (
	"context"
	"net/http"

	"github.com/mkarimli/go-adboard-client/internal/domain"
)

const loggersPath = "/api/loggers"

// LoggerService records client events in the backend's remote logger.
type LoggerService struct {
	TP Transport
}

// NewLoggerService constructs a LoggerService over the shared transport.
func NewLoggerService(tp Transport) *LoggerService {
	return &LoggerService{TP: tp}
}

// Create stores one log entry.
func (s *LoggerService) Create(ctx context.Context, req domain.LogEntryRequest) (*domain.LogEntry, error) {
	resp, err := s.TP.JSON(ctx, http.MethodPost, loggersPath, req)
	var out domain.LogEntry
	if err := outcome(resp, err, "log entry", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns the stored log entries.
func (s *LoggerService) List(ctx context.Context) ([]domain.LogEntry, error) {
	resp, err := s.TP.Get(ctx, loggersPath)
	var out []domain.LogEntry
	if err := outcome(resp, err, "log entry", &out); err != nil {
		return nil, err
	}
	return out, nil
}
