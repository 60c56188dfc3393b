package repo

import (
	"context"
	"time"

	"github.com/mkarimli/go-adboard-client/internal/domain"
	"github.com/mkarimli/go-adboard-client/internal/resource"
)

// UploadCaller defines the service contract required by UploadRepository.
type UploadCaller interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) ([]domain.UploadedFile, error)
}

// FileUploader is the capability surface UI code depends on for uploads.
type FileUploader interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) <-chan resource.Result[[]domain.UploadedFile]
}

// UploadRepository wraps the upload service in the tri-state lifecycle.
type UploadRepository struct {
	Svc   UploadCaller
	Delay time.Duration
}

var _ FileUploader = (*UploadRepository)(nil)

// NewUploadRepository constructs an UploadRepository.
func NewUploadRepository(svc UploadCaller, delay time.Duration) *UploadRepository {
	return &UploadRepository{Svc: svc, Delay: delay}
}

// Upload emits the lifecycle for sending one file to the media library.
func (r *UploadRepository) Upload(ctx context.Context, filename, contentType string, data []byte) <-chan resource.Result[[]domain.UploadedFile] {
	return run(ctx, r.Delay, "upload file", func(ctx context.Context) ([]domain.UploadedFile, error) {
		return r.Svc.Upload(ctx, filename, contentType, data)
	})
}
