package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dvloznov/fpa-fixtures/internal/gcs"
)

// mockStorageService is a mock implementation of gcs.StorageService for testing.
type mockStorageService struct {
	UploadFileFunc  func(ctx context.Context, bucketName, objectName, filePath string) error
	UploadBytesFunc func(ctx context.Context, bucketName, objectName string, data []byte) error
	FetchFunc       func(ctx context.Context, uri string) ([]byte, error)
	ObjectNameFunc  func(uri string) string
}

var _ gcs.StorageService = (*mockStorageService)(nil)

func (m *mockStorageService) UploadFile(ctx context.Context, bucketName, objectName, filePath string) error {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, bucketName, objectName, filePath)
	}
	return nil
}

func (m *mockStorageService) UploadBytes(ctx context.Context, bucketName, objectName string, data []byte) error {
	if m.UploadBytesFunc != nil {
		return m.UploadBytesFunc(ctx, bucketName, objectName, data)
	}
	return nil
}

func (m *mockStorageService) Fetch(ctx context.Context, uri string) ([]byte, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, uri)
	}
	return nil, nil
}

func (m *mockStorageService) ObjectName(uri string) string {
	if m.ObjectNameFunc != nil {
		return m.ObjectNameFunc(uri)
	}
	return ""
}

func TestWriteArtifact_GCSDestination(t *testing.T) {
	var gotBucket, gotObject string
	var gotData []byte
	store := &mockStorageService{
		UploadBytesFunc: func(ctx context.Context, bucketName, objectName string, data []byte) error {
			gotBucket, gotObject, gotData = bucketName, objectName, data
			return nil
		},
	}

	payload := []byte(`{"records": []}`)
	if err := writeArtifact(context.Background(), store, "gs://fixtures/fpa/records.json", payload); err != nil {
		t.Fatalf("writeArtifact: %v", err)
	}

	if gotBucket != "fixtures" || gotObject != "fpa/records.json" {
		t.Errorf("uploaded to %s/%s, want fixtures/fpa/records.json", gotBucket, gotObject)
	}
	if !bytes.Equal(gotData, payload) {
		t.Errorf("uploaded bytes = %q, want %q", gotData, payload)
	}
}

func TestWriteArtifact_MalformedGCSURI(t *testing.T) {
	store := &mockStorageService{
		UploadBytesFunc: func(ctx context.Context, bucketName, objectName string, data []byte) error {
			t.Error("UploadBytes called for malformed URI")
			return nil
		},
	}

	if err := writeArtifact(context.Background(), store, "gs://bucket-only", []byte("x")); err == nil {
		t.Error("writeArtifact accepted a URI without an object path")
	}
}

func TestWriteArtifact_LocalFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "records.json")
	payload := []byte(`{"records": []}`)

	if err := writeArtifact(context.Background(), &mockStorageService{}, dest, payload); err != nil {
		t.Fatalf("writeArtifact: %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("file contents = %q, want %q", got, payload)
	}
}

func TestFetchArtifact_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	payload := []byte(`{"records": []}`)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write fixture file: %v", err)
	}

	store := &mockStorageService{
		FetchFunc: func(ctx context.Context, uri string) ([]byte, error) {
			t.Error("Fetch called when a local file was given")
			return nil, nil
		},
	}

	got, err := fetchArtifact(context.Background(), store, path, "")
	if err != nil {
		t.Fatalf("fetchArtifact: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("fetched %q, want %q", got, payload)
	}
}

func TestFetchArtifact_GCS(t *testing.T) {
	payload := []byte(`{"records": []}`)
	var gotURI string
	store := &mockStorageService{
		FetchFunc: func(ctx context.Context, uri string) ([]byte, error) {
			gotURI = uri
			return payload, nil
		},
	}

	got, err := fetchArtifact(context.Background(), store, "", "gs://fixtures/fpa/records.json")
	if err != nil {
		t.Fatalf("fetchArtifact: %v", err)
	}
	if gotURI != "gs://fixtures/fpa/records.json" {
		t.Errorf("fetched URI = %q", gotURI)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("fetched %q, want %q", got, payload)
	}
}
