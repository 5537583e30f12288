package gcsuploader

import (
	"context"

	"github.com/dvloznov/fpa-fixtures/internal/gcs"
)

// GCSStorageService is the concrete implementation of gcs.StorageService that
// interacts with Google Cloud Storage.
type GCSStorageService struct{}

var _ gcs.StorageService = (*GCSStorageService)(nil)

// NewGCSStorageService creates a new instance of GCSStorageService.
func NewGCSStorageService() *GCSStorageService {
	return &GCSStorageService{}
}

// UploadFile delegates to the package-level UploadFile function.
func (s *GCSStorageService) UploadFile(ctx context.Context, bucketName, objectName, filePath string) error {
	return UploadFile(ctx, bucketName, objectName, filePath)
}

// UploadBytes delegates to the package-level UploadBytes function.
func (s *GCSStorageService) UploadBytes(ctx context.Context, bucketName, objectName string, data []byte) error {
	return UploadBytes(ctx, bucketName, objectName, data)
}

// Fetch delegates to the package-level Fetch function.
func (s *GCSStorageService) Fetch(ctx context.Context, uri string) ([]byte, error) {
	return Fetch(ctx, uri)
}

// ObjectName delegates to the package-level ObjectName function.
func (s *GCSStorageService) ObjectName(uri string) string {
	return ObjectName(uri)
}
