package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	cfg "github.com/inioluwa/atelier/internal/config"
)

// Bucket names a logical storage target. Images and documents are kept in
// separate buckets so public caching rules can differ per kind.
type Bucket string

const (
	BucketImages    Bucket = "images"
	BucketDocuments Bucket = "documents"
)

// Storage defines the interface for object storage operations.
type Storage interface {
	// Save stores an object and returns its publicly resolvable URL.
	Save(bucket Bucket, key string, body io.Reader) (string, error)

	// URL returns the public URL for an object.
	URL(bucket Bucket, key string) string
}

// S3Storage implements Storage for S3-compatible providers
// (AWS S3, MinIO, DigitalOcean Spaces, Cloudflare R2, etc.).
type S3Storage struct {
	client   *s3.Client
	buckets  map[Bucket]string
	region   string
	endpoint string // Optional: for custom endpoints (MinIO, DO Spaces, etc.)
}

// S3Config holds configuration for S3 storage.
type S3Config struct {
	Region         string
	ImageBucket    string
	DocumentBucket string
	AccessKey      string
	SecretKey      string
	Endpoint       string // Optional: for S3-compatible services
}

// New creates an S3-compatible storage instance from app config.
// For development: use MinIO. For production: any S3-compatible cloud provider.
func New(c *cfg.Config) (Storage, error) {
	slog.Info("initializing S3 storage",
		"image_bucket", c.S3ImageBucket,
		"document_bucket", c.S3DocumentBucket,
		"region", c.S3Region,
		"endpoint", c.S3Endpoint,
	)
	return NewS3Storage(S3Config{
		Region:         c.S3Region,
		ImageBucket:    c.S3ImageBucket,
		DocumentBucket: c.S3DocumentBucket,
		AccessKey:      c.S3AccessKey,
		SecretKey:      c.S3SecretKey,
		Endpoint:       c.S3Endpoint,
	})
}

// NewS3Storage creates a new S3 storage instance and ensures both buckets exist.
func NewS3Storage(cfg S3Config) (*S3Storage, error) {
	ctx := context.Background()

	var opts []func(*config.LoadOptions) error
	opts = append(opts, config.WithRegion(cfg.Region))

	// Add static credentials if provided
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// Create S3 client with optional custom endpoint
	var client *s3.Client
	if cfg.Endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // Required for MinIO and some S3-compatible services
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	storage := &S3Storage{
		client: client,
		buckets: map[Bucket]string{
			BucketImages:    cfg.ImageBucket,
			BucketDocuments: cfg.DocumentBucket,
		},
		region:   cfg.Region,
		endpoint: cfg.Endpoint,
	}

	// Auto-create buckets if they don't exist
	for _, name := range storage.buckets {
		if err := storage.ensureBucket(ctx, name); err != nil {
			return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
		}
	}

	return storage, nil
}

// ensureBucket checks if a bucket exists, creates it if not.
func (s *S3Storage) ensureBucket(ctx context.Context, name string) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(name),
	})
	if err == nil {
		return nil // Bucket exists
	}

	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(name),
	})
	if err != nil {
		return fmt.Errorf("bucket %q does not exist and could not be created: %w", name, err)
	}

	slog.Info("created S3 bucket", "bucket", name)
	return nil
}

func (s *S3Storage) bucketName(bucket Bucket) string {
	name, ok := s.buckets[bucket]
	if !ok {
		return string(bucket)
	}
	return name
}

// Save stores an object in S3 and returns its public URL.
func (s *S3Storage) Save(bucket Bucket, key string, body io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	name := s.bucketName(bucket)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(name),
		Key:    aws.String(key),
		Body:   body,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return s.URL(bucket, key), nil
}

// URL returns the public URL for an object.
func (s *S3Storage) URL(bucket Bucket, key string) string {
	name := s.bucketName(bucket)
	if s.endpoint != "" {
		// Custom endpoint (MinIO, DO Spaces, etc.)
		return strings.TrimSuffix(s.endpoint, "/") + "/" + name + "/" + key
	}
	// Standard AWS S3 URL
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", name, s.region, key)
}
