package ingest

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"gdkp-ledger/core/storage"

	"github.com/minio/minio-go/v7"
)

// Object key prefixes inside the archive bucket.
const (
	RawPrefix     = "raw"
	RecordsPrefix = "records"
)

// ObjectMirror copies archived exports and records to object storage.
type ObjectMirror struct {
	client storage.Client
	bucket string
}

// NewObjectMirror creates a mirror uploading into bucket.
func NewObjectMirror(client storage.Client, bucket string) *ObjectMirror {
	return &ObjectMirror{client: client, bucket: bucket}
}

// Upload stores data under prefix/name.
func (m *ObjectMirror) Upload(ctx context.Context, prefix, name string, data []byte) error {
	key := path.Join(prefix, name)
	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}
