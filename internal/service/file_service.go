package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/clink-app/clink-backend/internal/config"
)

// FileService stores uploaded files (avatars, custom thumbnails) and
// returns public URLs for them.
type FileService interface {
	Upload(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	GetKeyFromUrl(fileUrl string) (string, error)
}

type s3FileService struct {
	client         *s3.Client
	bucketName     string
	endpoint       string
	publicEndpoint string
	region         string
}

// NewS3FileService builds an S3-backed file service. A configured
// endpoint switches to path-style addressing for MinIO/LocalStack.
func NewS3FileService(ctx context.Context, cfg config.FileStorageConfig) (FileService, error) {
	if cfg.S3BucketName == "" {
		return nil, fmt.Errorf("S3 bucket is required")
	}

	endpoint := cfg.S3Endpoint
	if endpoint != "" && !strings.HasPrefix(endpoint, "http") {
		if cfg.S3UseSSL {
			endpoint = "https://" + endpoint
		} else {
			endpoint = "http://" + endpoint
		}
	}

	var awsCfg aws.Config
	var err error
	if endpoint != "" {
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(cfg.S3Region),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")),
		)
	} else {
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.S3Region))
	}
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true // Required for MinIO
		}
	})

	return &s3FileService{
		client:         client,
		bucketName:     cfg.S3BucketName,
		endpoint:       endpoint,
		publicEndpoint: cfg.S3PublicEndpoint,
		region:         cfg.S3Region,
	}, nil
}

func (s *s3FileService) Upload(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to s3: %w", err)
	}

	if s.publicEndpoint != "" {
		prefix := ""
		if !strings.HasPrefix(s.publicEndpoint, "http") {
			prefix = "http://"
		}
		return fmt.Sprintf("%s%s/%s/%s", prefix, s.publicEndpoint, s.bucketName, key), nil
	}
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucketName, key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketName, s.region, key), nil
}

func (s *s3FileService) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	return err
}

// GetKeyFromUrl extracts the object key from any URL form this service
// can produce.
func (s *s3FileService) GetKeyFromUrl(fileUrl string) (string, error) {
	markers := []string{"/" + s.bucketName + "/", ".amazonaws.com/"}
	for _, m := range markers {
		if idx := strings.Index(fileUrl, m); idx != -1 {
			return fileUrl[idx+len(m):], nil
		}
	}
	return "", fmt.Errorf("url does not match expected format: %s", fileUrl)
}
