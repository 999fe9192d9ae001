package csvexport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3PutClient is the subset of the S3 API the saver uses.
type S3PutClient interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Config contains configuration for the S3 saver.
type S3Config struct {
	Bucket         string `env:"EXPORT_S3_BUCKET"`
	Region         string `env:"EXPORT_S3_REGION"`
	AccessKeyID    string `env:"EXPORT_S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"EXPORT_S3_SECRET_KEY"`
	Endpoint       string `env:"EXPORT_S3_ENDPOINT"`         // Optional: for S3-compatible services
	Prefix         string `env:"EXPORT_S3_PREFIX"`           // Optional key prefix, e.g. "exports"
	ForcePathStyle bool   `env:"EXPORT_S3_FORCE_PATH_STYLE"` // For S3-compatible services like MinIO
}

// S3Saver uploads exports to S3-compatible object storage as
// "text/csv; charset=utf-8" objects.
type S3Saver struct {
	client S3PutClient
	bucket string
	prefix string
}

// S3SaverOption configures an S3Saver.
type S3SaverOption func(*s3SaverOptions)

type s3SaverOptions struct {
	client S3PutClient
}

// WithS3Client sets a custom pre-configured S3 client. Useful for testing
// with mocks and for sharing a client across components.
func WithS3Client(client S3PutClient) S3SaverOption {
	return func(o *s3SaverOptions) {
		o.client = client
	}
}

// NewS3Saver creates an S3-backed saver. Unless a pre-configured client is
// supplied, the AWS SDK configuration is loaded from cfg with static
// credentials when provided.
func NewS3Saver(ctx context.Context, cfg S3Config, opts ...S3SaverOption) (*S3Saver, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: bucket is required", ErrInvalidS3Config)
	}

	options := &s3SaverOptions{}
	for _, opt := range opts {
		opt(options)
	}

	client := options.client
	if client == nil {
		if cfg.Region == "" {
			return nil, fmt.Errorf("%w: region is required", ErrInvalidS3Config)
		}

		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, errors.Join(ErrFailedToLoadAWSConfig, err)
		}

		client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = cfg.ForcePathStyle
		})
	}

	return &S3Saver{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
	}, nil
}

// Save uploads data under prefix/filename.
func (s *S3Saver) Save(ctx context.Context, data []byte, filename string) error {
	key := sanitizeFilename(filename)
	if s.prefix != "" {
		key = path.Join(s.prefix, key)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String("text/csv; charset=utf-8"),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	return nil
}
