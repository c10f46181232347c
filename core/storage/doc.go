// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface used to archive uploaded
// workbooks, read workbooks for command-line syncs and verify the bucket. This
// supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "task-sync")
package storage
