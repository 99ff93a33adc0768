package checks

import (
	"context"
	"fmt"

	"prefab-reconciler/core/backup"
	"prefab-reconciler/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageReport is the result of a backup storage check.
type StorageReport struct {
	Bucket        string `json:"bucket"`
	BucketExists  bool   `json:"bucket_exists"`
	HasBackups    bool   `json:"has_backups"`
	BackupsPrefix string `json:"backups_prefix"`
}

// CheckStorage reports whether the backup bucket exists and already holds backups.
func CheckStorage(ctx context.Context, client storage.Client, bucket string) (*StorageReport, error) {
	report := &StorageReport{Bucket: bucket, BackupsPrefix: backup.Prefix}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.BucketExists = exists
	if !exists {
		return report, nil
	}

	// Stop the listing goroutine once the first object is seen.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := minio.ListObjectsOptions{
		Prefix:    backup.Prefix,
		Recursive: true,
		MaxKeys:   1,
	}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list backups: %w", obj.Err)
		}
		report.HasBackups = true
		break
	}

	return report, nil
}

// FixStorage creates the backup bucket.
func FixStorage(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger) error {
	logger.Info("Creating backup bucket", zap.String("bucket", bucket))
	if err := backup.NewArchive(client, bucket).EnsureBucket(ctx); err != nil {
		return err
	}
	return nil
}
