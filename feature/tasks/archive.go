package tasks

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"task-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Archiver keeps a copy of every uploaded workbook in the bucket.
type Archiver struct {
	client storage.Client
	bucket string
	prefix string
	now    func() time.Time
}

// NewArchiver creates an archiver writing under cfg.ArchivePrefix in cfg.Bucket.
func NewArchiver(client storage.Client, cfg storage.Config) *Archiver {
	return &Archiver{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.ArchivePrefix,
		now:    time.Now,
	}
}

// ObjectKey returns <prefix>/YYYY/MM/DD/<rayID>-<filename>.
func (a *Archiver) ObjectKey(rayID, filename string) string {
	name := path.Base(filename)
	if rayID != "" {
		name = rayID + "-" + name
	}
	return path.Join(a.prefix, a.now().UTC().Format("2006/01/02"), name)
}

// Archive uploads data and returns the object key.
func (a *Archiver) Archive(ctx context.Context, rayID, filename string, data []byte) (string, error) {
	key := a.ObjectKey(rayID, filename)
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: xlsxContentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", key, err)
	}
	return key, nil
}
