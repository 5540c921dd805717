package storage

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Uploader stores a file buffer under a key and returns its public URL.
// Uploads overwrite existing objects, so a client retry after a network blip
// cannot fail with a conflict.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// ObjectKey builds the destination key for an upload. The timestamp prefix
// keeps repeated identical filenames from colliding.
func ObjectKey(prefix, filename string) string {
	return prefix + "/" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + Sanitize(filename)
}

// Config carries the connection settings for the object store.
type Config struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	UseSSL     bool
	PublicBase string
}

// Store is an S3-compatible object storage client.
type Store struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

var _ Uploader = (*Store)(nil)

// NewStore connects to the object storage service.
func NewStore(cfg Config) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect object storage: %w", err)
	}
	return &Store{
		client:     client,
		bucket:     cfg.Bucket,
		publicBase: cfg.PublicBase,
	}, nil
}

// Upload writes the buffer to the bucket and derives the public URL
// deterministically from the configured base, the bucket and the key.
func (s *Store) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return s.PublicURL(key), nil
}

// PublicURL returns the public URL for a stored key.
func (s *Store) PublicURL(key string) string {
	return s.publicBase + "/" + s.bucket + "/" + key
}
