package repository

import "context"

// MediaAsset describes an object stored by the media storage collaborator.
type MediaAsset struct {
	URL string
	Key string
}

// MediaStorage defines the media storage collaborator consumed at the
// call sites that create or replace video records. Implementations are
// provided by the infrastructure layer (e.g. MinIO, S3).
type MediaStorage interface {
	// UploadFile stores a local file and returns its public URL and
	// object key. contentType may be empty; implementations should then
	// derive it from the file extension.
	UploadFile(ctx context.Context, localPath, contentType string) (*MediaAsset, error)

	// Remove deletes a stored object by key.
	Remove(ctx context.Context, key string) error
}
