package backup

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

// Store writes and retrieves staticlist snapshots for routers.
type Store struct {
	client Client
	bucket string
}

// NewStore creates a snapshot store on the given bucket.
func NewStore(client Client, bucket string) *Store {
	return &Store{client: client, bucket: bucket}
}

// EnsureBucket creates the snapshot bucket if it does not exist yet.
func (s *Store) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Save stores a raw staticlist value under a timestamped object name and
// returns that name. Saving an empty value is allowed: an empty list is a
// state worth being able to prove later.
func (s *Store) Save(ctx context.Context, host, raw string) (string, error) {
	objectName := fmt.Sprintf("staticlist/%s/%s.txt",
		sanitizeHost(host), time.Now().UTC().Format("20060102T150405Z"))

	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		objectName,
		strings.NewReader(raw),
		int64(len(raw)),
		minio.PutObjectOptions{ContentType: "text/plain"},
	)
	if err != nil {
		return "", fmt.Errorf("failed to store snapshot %s: %w", objectName, err)
	}

	return objectName, nil
}

// Latest returns the most recent snapshot for a host, or an error when the
// host has none. Timestamped names sort lexicographically, so the newest
// snapshot is simply the greatest key under the host prefix.
func (s *Store) Latest(ctx context.Context, host string) (string, error) {
	prefix := fmt.Sprintf("staticlist/%s/", sanitizeHost(host))

	var keys []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return "", fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	if len(keys) == 0 {
		return "", fmt.Errorf("no snapshots stored for host %s", host)
	}
	sort.Strings(keys)

	reader, err := s.client.GetObject(ctx, s.bucket, keys[len(keys)-1], minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to read snapshot %s: %w", keys[len(keys)-1], err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read snapshot %s: %w", keys[len(keys)-1], err)
	}
	return string(data), nil
}

// sanitizeHost keeps object names flat when the host carries a port.
func sanitizeHost(host string) string {
	return strings.ReplaceAll(host, ":", "_")
}
