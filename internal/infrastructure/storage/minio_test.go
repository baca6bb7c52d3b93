package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
)

// mockMinioClient implements minioClient for testing.
type mockMinioClient struct {
	bucketExistsFn func(ctx context.Context, bucketName string) (bool, error)
	fPutObjectFn   func(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	removeObjectFn func(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

func (m *mockMinioClient) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	if m.bucketExistsFn != nil {
		return m.bucketExistsFn(ctx, bucketName)
	}
	return true, nil
}

func (m *mockMinioClient) FPutObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if m.fPutObjectFn != nil {
		return m.fPutObjectFn(ctx, bucketName, objectName, filePath, opts)
	}
	return minio.UploadInfo{Bucket: bucketName, Key: objectName}, nil
}

func (m *mockMinioClient) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	if m.removeObjectFn != nil {
		return m.removeObjectFn(ctx, bucketName, objectName, opts)
	}
	return nil
}

func TestNewClientWithMinioClient_BucketMissing(t *testing.T) {
	mock := &mockMinioClient{
		bucketExistsFn: func(ctx context.Context, bucketName string) (bool, error) {
			return false, nil
		},
	}

	_, err := newClientWithMinioClient(context.Background(), mock, "media", "http://localhost:9000/media")
	if err == nil || !strings.Contains(err.Error(), "bucket does not exist") {
		t.Errorf("error = %v, want missing bucket failure", err)
	}
}

func TestClient_UploadFile(t *testing.T) {
	var gotKey, gotPath, gotContentType string
	mock := &mockMinioClient{
		fPutObjectFn: func(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
			gotKey = objectName
			gotPath = filePath
			gotContentType = opts.ContentType
			return minio.UploadInfo{Bucket: bucketName, Key: objectName}, nil
		},
	}

	client, err := newClientWithMinioClient(context.Background(), mock, "media", "http://localhost:9000/media")
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	asset, err := client.UploadFile(context.Background(), "/tmp/uploads/clip.mp4", "")
	if err != nil {
		t.Fatalf("UploadFile failed: %v", err)
	}

	if !strings.HasPrefix(gotKey, "media/") || !strings.HasSuffix(gotKey, "/clip.mp4") {
		t.Errorf("object key = %q, want media/{id}/clip.mp4", gotKey)
	}
	if gotPath != "/tmp/uploads/clip.mp4" {
		t.Errorf("file path = %q, want /tmp/uploads/clip.mp4", gotPath)
	}
	if gotContentType != "video/mp4" {
		t.Errorf("content type = %q, want video/mp4", gotContentType)
	}
	if asset.Key != gotKey {
		t.Errorf("asset key = %q, want %q", asset.Key, gotKey)
	}
	if asset.URL != "http://localhost:9000/media/"+gotKey {
		t.Errorf("asset URL = %q, want base + key", asset.URL)
	}
}

func TestClient_UploadFile_Error(t *testing.T) {
	mock := &mockMinioClient{
		fPutObjectFn: func(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
			return minio.UploadInfo{}, errors.New("storage unavailable")
		},
	}

	client, err := newClientWithMinioClient(context.Background(), mock, "media", "http://localhost:9000/media")
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	if _, err := client.UploadFile(context.Background(), "/tmp/uploads/clip.mp4", "video/mp4"); err == nil {
		t.Error("expected upload error, got nil")
	}
}

func TestClient_Remove(t *testing.T) {
	var gotKey string
	mock := &mockMinioClient{
		removeObjectFn: func(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
			gotKey = objectName
			return nil
		},
	}

	client, err := newClientWithMinioClient(context.Background(), mock, "media", "http://localhost:9000/media")
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	if err := client.Remove(context.Background(), "media/abc/clip.mp4"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if gotKey != "media/abc/clip.mp4" {
		t.Errorf("removed key = %q, want media/abc/clip.mp4", gotKey)
	}
}
