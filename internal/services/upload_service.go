package services

import (
	"context"

	"github.com/mkarimli/go-adboard-client/internal/domain"
)

const uploadPath = "/api/upload"

// UploadService sends file bytes to the backend media library.
type UploadService struct {
	TP Transport
}

// NewUploadService constructs an UploadService over the shared transport.
func NewUploadService(tp Transport) *UploadService {
	return &UploadService{TP: tp}
}

// Upload sends data as a single "files" multipart part and returns the
// stored file descriptors. An empty payload is allowed; the backend decides
// whether to accept it.
func (s *UploadService) Upload(ctx context.Context, filename, contentType string, data []byte) ([]domain.UploadedFile, error) {
	resp, err := s.TP.Upload(ctx, uploadPath, filename, contentType, data)
	var out []domain.UploadedFile
	if err := outcome(resp, err, "file", &out); err != nil {
		return nil, err
	}
	return out, nil
}
