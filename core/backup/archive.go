package backup

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"prefab-reconciler/core/storage"

	"github.com/minio/minio-go/v7"
)

// Prefix is the object key prefix of every archived backup.
const Prefix = "backups/"

// Object describes an archived backup.
type Object struct {
	Key          string    `json:"key"`
	RunID        string    `json:"run_id"`
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Archive stores backups in a bucket.
type Archive struct {
	client storage.Client
	bucket string
}

// NewArchive creates an archive over client and bucket.
func NewArchive(client storage.Client, bucket string) *Archive {
	return &Archive{client: client, bucket: bucket}
}

// Key returns the object key of the backup of fileName for runID.
func Key(runID, fileName string) string {
	return Prefix + runID + "/" + filepath.Base(fileName)
}

// EnsureBucket creates the bucket if it does not exist yet.
func (a *Archive) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", a.bucket, err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
	}
	return nil
}

// Upload stores content as the backup of fileName for runID and returns its key.
func (a *Archive) Upload(ctx context.Context, runID, fileName string, content []byte) (string, error) {
	key := Key(runID, fileName)
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: "text/plain; charset=utf-8"})
	if err != nil {
		return "", fmt.Errorf("failed to upload backup %s: %w", key, err)
	}
	return key, nil
}

// List returns the archived backups, newest first. An empty runID lists all runs.
func (a *Archive) List(ctx context.Context, runID string) ([]Object, error) {
	prefix := Prefix
	if runID != "" {
		prefix += runID + "/"
	}

	// Stop the listing goroutine when returning early on an error.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var objects []Object
	for info := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list backups: %w", info.Err)
		}
		rest := strings.TrimPrefix(info.Key, Prefix)
		run, name, ok := strings.Cut(rest, "/")
		if !ok || name == "" {
			continue
		}
		objects = append(objects, Object{
			Key:          info.Key,
			RunID:        run,
			Name:         name,
			Size:         info.Size,
			LastModified: info.LastModified,
		})
	}

	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].LastModified.After(objects[j].LastModified)
	})
	return objects, nil
}

// Fetch downloads the backup stored under key.
func (a *Archive) Fetch(ctx context.Context, key string) ([]byte, error) {
	if !strings.HasPrefix(key, Prefix) {
		return nil, fmt.Errorf("invalid backup key %q", key)
	}
	obj, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get backup %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup %s: %w", key, err)
	}
	return data, nil
}
