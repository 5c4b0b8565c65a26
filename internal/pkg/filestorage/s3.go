// Package filestorage issues presigned upload URLs against the hosted
// object store. Files never pass through this service: clients PUT
// directly to storage and reference the returned URL in create/update
// requests.
package filestorage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/ets-hub/etshub-backend/internal/pkg/logger"
)

// DefaultUploadExpiry bounds how long a presigned PUT stays valid.
const DefaultUploadExpiry = 15 * time.Minute

// Config carries the object store settings.
type Config struct {
	Endpoint     string
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	BaseURL      string
	Prefix       string
	UsePathStyle bool
}

// PresignedUpload is a one-shot direct upload grant.
type PresignedUpload struct {
	UploadURL string
	FileKey   string
	FileURL   string
	Method    string
	Headers   map[string]string
	ExpiresAt time.Time
}

// S3Storage wraps the S3-compatible media bucket.
type S3Storage struct {
	client *s3.Client
	cfg    Config
}

// NewS3Storage builds the S3 client for the configured bucket.
func NewS3Storage(ctx context.Context, cfg Config) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("media bucket is not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load object store config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	logger.Info().Str("bucket", cfg.Bucket).Msg("Object storage client configured")
	return &S3Storage{client: client, cfg: cfg}, nil
}

// PresignUpload generates a presigned PUT for a new object. The object
// key is random so repeated uploads of the same filename never collide.
func (s *S3Storage) PresignUpload(ctx context.Context, filename, contentType string) (*PresignedUpload, error) {
	if filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ext := strings.ToLower(path.Ext(filename))
	key := path.Join(strings.Trim(s.cfg.Prefix, "/"), uuid.New().String()+ext)
	key = strings.TrimLeft(key, "/")

	presignClient := s3.NewPresignClient(s.client)
	presigned, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = DefaultUploadExpiry
	})
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	headers := map[string]string{"Content-Type": contentType}
	for k, v := range presigned.SignedHeader {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}

	return &PresignedUpload{
		UploadURL: presigned.URL,
		FileKey:   key,
		FileURL:   s.publicURL(key),
		Method:    presigned.Method,
		Headers:   headers,
		ExpiresAt: time.Now().Add(DefaultUploadExpiry),
	}, nil
}

// publicURL builds the stable access URL for an uploaded object.
func (s *S3Storage) publicURL(key string) string {
	base := strings.TrimRight(s.cfg.BaseURL, "/")
	if base == "" {
		base = strings.TrimRight(s.cfg.Endpoint, "/")
	}
	if s.cfg.UsePathStyle {
		return base + "/" + s.cfg.Bucket + "/" + key
	}
	return base + "/" + key
}
