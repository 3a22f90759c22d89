package supabase

import (
	"bytes"
	"context"

	storage_go "github.com/supabase-community/storage-go"
	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/ports"
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
)

// BlobStore uploads page assets to a Supabase storage bucket and hands
// back the public URL. The URL goes into a section's content or
// metadata like any other string field.
type BlobStore struct {
	client *supabase.Client
	bucket string
	logger *zap.Logger
}

// NewBlobStore creates a blob store writing into the given bucket
func NewBlobStore(client *supabase.Client, bucket string, logger *zap.Logger) ports.BlobStore {
	return &BlobStore{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Upload stores the data under path, overwriting any previous object,
// and returns a stable public URL.
func (s *BlobStore) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	if path == "" {
		return "", pkgerrors.NewValidationError("upload path cannot be empty")
	}
	if len(data) == 0 {
		return "", pkgerrors.NewValidationError("upload data cannot be empty")
	}

	upsert := true
	_, err := s.client.Storage.UploadFile(s.bucket, path, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		s.logger.Error("failed to upload asset",
			zap.String("bucket", s.bucket),
			zap.String("path", path),
			zap.Error(err))
		return "", pkgerrors.NewExternalError("supabase storage", err)
	}

	url := s.client.Storage.GetPublicUrl(s.bucket, path).SignedURL
	s.logger.Info("asset uploaded",
		zap.String("bucket", s.bucket),
		zap.String("path", path),
		zap.Int("bytes", len(data)))
	return url, nil
}
