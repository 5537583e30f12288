// Package gcsuploader delivers rendered fixture artifacts to Google Cloud
// Storage and fetches them back for inspection. It assumes Application
// Default Credentials are configured (gcloud auth application-default login).
package gcsuploader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
)

// uploadTimeout bounds a single artifact upload.
const uploadTimeout = 2 * time.Minute

// UploadFile uploads a local artifact file to a GCS bucket under the given
// object name.
func UploadFile(ctx context.Context, bucketName, objectName, filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open artifact %q: %w", filePath, err)
	}
	defer f.Close()

	return upload(ctx, bucketName, objectName, f)
}

// UploadBytes uploads an in-memory rendered artifact, avoiding a temp file
// when the dataset is generated and delivered in one command.
func UploadBytes(ctx context.Context, bucketName, objectName string, data []byte) error {
	return upload(ctx, bucketName, objectName, bytes.NewReader(data))
}

func upload(ctx context.Context, bucketName, objectName string, src io.Reader) error {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("create storage client: %w", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	w := client.Bucket(bucketName).Object(objectName).NewWriter(ctx)
	w.ContentType = contentTypeFor(objectName)
	defer func() {
		// Ensure the writer is closed even on early returns.
		_ = w.Close()
	}()

	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("copy artifact to GCS writer: %w", err)
	}

	// Close finalizes the upload; nothing is visible in the bucket before.
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize upload: %w", err)
	}

	return nil
}

// Fetch downloads the artifact bytes from the given GCS URI.
func Fetch(ctx context.Context, uri string) ([]byte, error) {
	bucketName, objectPath, err := ParseURI(uri)
	if err != nil {
		return nil, fmt.Errorf("Fetch: %w", err)
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("Fetch: creating storage client: %w", err)
	}
	defer client.Close()

	rc, err := client.Bucket(bucketName).Object(objectPath).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("Fetch: reading object %s/%s: %w", bucketName, objectPath, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("Fetch: reading bytes: %w", err)
	}

	return data, nil
}

// ParseURI splits a "gs://bucket/path/to/object" URI into bucket and object path.
func ParseURI(uri string) (bucket, object string, err error) {
	if !strings.HasPrefix(uri, "gs://") {
		return "", "", fmt.Errorf("invalid GCS URI: %s", uri)
	}

	trimmed := strings.TrimPrefix(uri, "gs://")
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", "", fmt.Errorf("invalid GCS URI (no object path): %s", uri)
	}

	return parts[0], parts[1], nil
}

// ObjectName extracts the object filename from a GCS URI.
// e.g., "gs://bucket/fixtures/records.json" → "records.json"
func ObjectName(uri string) string {
	_, object, err := ParseURI(uri)
	if err != nil {
		return strings.TrimPrefix(uri, "gs://")
	}
	return path.Base(object)
}

func contentTypeFor(objectName string) string {
	switch path.Ext(objectName) {
	case ".json":
		return "application/json"
	case ".csv":
		return "text/csv"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}
