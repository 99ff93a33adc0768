// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface so the backup archive can
// mirror replaced documents to AWS S3 or a self-hosted MinIO instance, and so tests
// can substitute the mock in core/storage/mocks.
//
// # Operations
//
//   - BucketExists / MakeBucket: ensure the backup bucket exists.
//   - PutObject: upload a backup.
//   - GetObject: download a backup.
//   - ListObjects: list backups under a prefix.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
