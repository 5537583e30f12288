package gcs

import (
	"context"
)

// StorageService provides an interface for cloud storage operations, so
// commands that deliver or fetch fixture artifacts can be tested without a
// live bucket.
type StorageService interface {
	// UploadFile uploads a local artifact file to a storage bucket under the
	// given object name.
	UploadFile(ctx context.Context, bucketName, objectName, filePath string) error

	// UploadBytes uploads an in-memory rendered artifact.
	UploadBytes(ctx context.Context, bucketName, objectName string, data []byte) error

	// Fetch downloads artifact bytes from the given storage URI.
	Fetch(ctx context.Context, uri string) ([]byte, error)

	// ObjectName extracts the object filename from a storage URI.
	ObjectName(uri string) string
}
