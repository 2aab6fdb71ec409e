package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
)

// ObjectStore is the boundary to the bucket that holds uploaded images.
// Implementations must either persist the object durably and return its public
// URL, or fail loudly; a non-durable placeholder URL is never an acceptable
// result.
type ObjectStore interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	PublicURL(objectName string) string
}

// BucketStore is the S3-compatible implementation backed by a minio client
// (MinIO, Cloudflare R2, or Supabase storage in S3 mode).
type BucketStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
	endpoint  string
	useSSL    bool
}

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	PublicURL string // external base URL for public objects, optional
}

// NewBucketStore connects to the object-storage endpoint and ensures the
// configured bucket exists.
func NewBucketStore(cfg Config) (*BucketStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %q: %w", cfg.Bucket, err)
		}
		log.Info().Str("bucket", cfg.Bucket).Msg("Storage bucket created")
	}

	log.Info().
		Str("endpoint", cfg.Endpoint).
		Str("bucket", cfg.Bucket).
		Bool("ssl", cfg.UseSSL).
		Msg("Object storage initialized")

	return &BucketStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		endpoint:  cfg.Endpoint,
		useSSL:    cfg.UseSSL,
	}, nil
}

// Upload stores the object and returns its durable public URL. The error path
// never substitutes a fallback URL.
func (s *BucketStore) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	objectName = strings.TrimPrefix(objectName, "/")

	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", objectName, err)
	}

	return s.PublicURL(objectName), nil
}

// PublicURL builds the externally reachable URL for an object. When no public
// base URL is configured the endpoint-style URL is used.
func (s *BucketStore) PublicURL(objectName string) string {
	objectName = strings.TrimPrefix(objectName, "/")
	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s", s.publicURL, objectName)
	}

	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, objectName)
}
