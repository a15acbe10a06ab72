package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/marcos-nsantos/thumbgate/internal/domain"
	"github.com/marcos-nsantos/thumbgate/internal/domain/valueobject"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/config"
)

// S3Storage reads uploaded images from the uploads bucket. Keys are the
// attachment path ids.
type S3Storage struct {
	client   *s3.Client
	bucket   string
	maxBytes int64
}

func NewS3Storage(cfg config.S3Config, maxBytes int64) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("creating s3 storage: bucket is required")
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			if cfg.AccessKeyID != "" {
				o.Credentials = credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretAccessKey,
					"",
				)
			}
		},
	}

	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.UsePathStyle
		})
	}

	client := s3.New(s3.Options{}, opts...)

	return &S3Storage{
		client:   client,
		bucket:   cfg.Bucket,
		maxBytes: maxBytes,
	}, nil
}

func (s *S3Storage) Load(ctx context.Context, key string) (valueobject.Image, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return valueobject.Image{}, mapS3Error(err)
	}
	defer out.Body.Close()

	if s.maxBytes > 0 && aws.ToInt64(out.ContentLength) > s.maxBytes {
		return valueobject.Image{}, fmt.Errorf("%w: object exceeds %d bytes", domain.ErrUpstreamFailure, s.maxBytes)
	}

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return valueobject.Image{}, fmt.Errorf("%w: reading s3 object: %v", domain.ErrUpstreamFailure, err)
	}

	return valueobject.NewImage(data, aws.ToString(out.ContentType)), nil
}

func mapS3Error(err error) error {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return domain.ErrNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchBucket":
			return domain.ErrNotFound
		case "AccessDenied", "Forbidden", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return domain.ErrUnauthorized
		}
	}

	return fmt.Errorf("%w: fetching from s3: %v", domain.ErrUpstreamFailure, err)
}
