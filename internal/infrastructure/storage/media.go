package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"

	"github.com/stockplus/stockplus-server/internal/config"
	domainErrors "github.com/stockplus/stockplus-server/internal/domain/errors"
)

// MediaStorage stores media objects in an S3 bucket under a configured key
// prefix. Objects are private and write-once; an occupied key is never
// overwritten.
type MediaStorage struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	location      string
	logger        *zap.Logger
}

// NewClient builds an S3 client from static credentials.
func NewClient(ctx context.Context, cfg *config.StorageConfig) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage configuration: %w", err)
	}
	return s3.NewFromConfig(awsCfg), nil
}

// NewMediaStorage creates a media storage instance over the given client.
func NewMediaStorage(client *s3.Client, cfg *config.StorageConfig, logger *zap.Logger) *MediaStorage {
	return &MediaStorage{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		location:      strings.Trim(cfg.Location, "/"),
		logger:        logger,
	}
}

// objectKey prefixes a key with the configured storage location.
func (m *MediaStorage) objectKey(key string) string {
	key = strings.TrimPrefix(key, "/")
	if m.location == "" {
		return key
	}
	return m.location + "/" + key
}

// Upload stores an object as private. The key must be free; uploading to an
// occupied key fails with ErrObjectExists.
func (m *MediaStorage) Upload(ctx context.Context, key, contentType string, body []byte) error {
	fullKey := m.objectKey(key)

	_, err := m.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(fullKey),
	})
	if err == nil {
		return domainErrors.ErrObjectExists
	}
	var notFound *s3types.NotFound
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to check object existence: %w", err)
	}

	_, err = m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.bucket),
		Key:         aws.String(fullKey),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}

	m.logger.Info("Object uploaded",
		zap.String("bucket", m.bucket),
		zap.String("key", fullKey),
		zap.Int("size", len(body)))

	return nil
}

// PresignedURL returns a time-limited GET URL for a stored object.
func (m *MediaStorage) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	fullKey := m.objectKey(key)

	result, err := m.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(fullKey),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return result.URL, nil
}
