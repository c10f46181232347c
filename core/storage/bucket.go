package storage

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
)

// EnsureBucket reports whether bucket exists. When it does not and create is
// set, the bucket is created in region and true is returned.
func EnsureBucket(ctx context.Context, client Client, bucket, region string, create bool) (bool, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if exists || !create {
		return exists, nil
	}

	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return false, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return true, nil
}
