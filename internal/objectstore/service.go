package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hirestream/hirestream/internal/config"
	ierr "github.com/hirestream/hirestream/internal/errors"
)

const (
	defaultPresignExpiryDuration = 30 * time.Minute
)

var (
	validObjectKinds = []ObjectKind{ObjectKindDocument, ObjectKindLogo}
)

type Service interface {
	Upload(ctx context.Context, object *Object) error
	Get(ctx context.Context, kind ObjectKind, key string) ([]byte, error)
	GetPresignedURL(ctx context.Context, kind ObjectKind, key string) (string, error)
	Exists(ctx context.Context, kind ObjectKind, key string) (bool, error)
	Delete(ctx context.Context, kind ObjectKind, key string) error
}

type objectStoreImpl struct {
	client *s3.Client
	config *config.ObjectStoreConfig
}

func NewService(config *config.Configuration) (Service, error) {
	if !config.ObjectStore.Enabled {
		return nil, nil
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithRegion(config.ObjectStore.Region),
	)
	if err != nil {
		return nil, ierr.WithError(err).WithHint("failed to load aws config").
			Mark(ierr.ErrHTTPClient)
	}

	return &objectStoreImpl{
		config: &config.ObjectStore,
		client: s3.NewFromConfig(awsCfg),
	}, nil
}

func (s *objectStoreImpl) getObjectKey(kind ObjectKind, key string) (string, error) {
	switch kind {
	case ObjectKindDocument:
		if s.config.Document.KeyPrefix != "" {
			return fmt.Sprintf("%s/%s", s.config.Document.KeyPrefix, key), nil
		}
		return key, nil
	case ObjectKindLogo:
		if s.config.Logo.KeyPrefix != "" {
			return fmt.Sprintf("%s/%s", s.config.Logo.KeyPrefix, key), nil
		}
		return key, nil
	default:
		return "", ierr.NewErrorf("invalid object kind: %s", kind).
			WithHintf("valid object kinds are: %v", validObjectKinds).
			Mark(ierr.ErrSystem)
	}
}

func (s *objectStoreImpl) getBucket(kind ObjectKind) string {
	switch kind {
	case ObjectKindDocument:
		return s.config.Document.Bucket
	case ObjectKindLogo:
		return s.config.Logo.Bucket
	default:
		return ""
	}
}

// Upload implements Service.
func (s *objectStoreImpl) Upload(ctx context.Context, object *Object) error {
	key, err := s.getObjectKey(object.Kind, object.Key)
	if err != nil {
		return err
	}

	contentType := object.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.getBucket(object.Kind)),
		Key:         aws.String(key),
		Body:        bytes.NewReader(object.Data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return ierr.WithError(err).WithHint("failed to upload object").
			WithMessagef("bucket:%s, key:%s", s.getBucket(object.Kind), key).
			Mark(ierr.ErrHTTPClient)
	}

	return nil
}

// Get implements Service.
func (s *objectStoreImpl) Get(ctx context.Context, kind ObjectKind, key string) ([]byte, error) {
	objectKey, err := s.getObjectKey(kind, key)
	if err != nil {
		return nil, err
	}

	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.getBucket(kind)),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, ierr.NewError("object not found").
				WithHintf("no object stored under key %s", key).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).WithHint("failed to get object").
			WithMessagef("bucket:%s, key:%s", s.getBucket(kind), objectKey).
			Mark(ierr.ErrHTTPClient)
	}

	defer result.Body.Close()

	return io.ReadAll(result.Body)
}

// GetPresignedURL implements Service.
func (s *objectStoreImpl) GetPresignedURL(ctx context.Context, kind ObjectKind, key string) (string, error) {
	objectKey, err := s.getObjectKey(kind, key)
	if err != nil {
		return "", err
	}

	duration, err := time.ParseDuration(s.config.Document.PresignExpiryDuration)
	if err != nil {
		duration = defaultPresignExpiryDuration
	}

	presigner := s3.NewPresignClient(s.client)
	result, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.getBucket(kind)),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(duration))
	if err != nil {
		return "", ierr.WithError(err).WithHint("failed to get presigned url").
			WithMessagef("bucket:%s, key:%s", s.getBucket(kind), objectKey).
			Mark(ierr.ErrHTTPClient)
	}

	return result.URL, nil
}

// Exists implements Service.
func (s *objectStoreImpl) Exists(ctx context.Context, kind ObjectKind, key string) (bool, error) {
	objectKey, err := s.getObjectKey(kind, key)
	if err != nil {
		return false, err
	}

	_, err = s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.getBucket(kind)),
		Key:    aws.String(objectKey),
	})

	if err != nil {
		var nsk *types.NoSuchKey
		var nske *types.NotFound
		if errors.As(err, &nsk) || errors.As(err, &nske) {
			return false, nil
		}
		return false, ierr.NewErrorf("failed to check if object exists: %w", err).
			Mark(ierr.ErrHTTPClient)
	}

	return true, nil
}

// Delete implements Service.
func (s *objectStoreImpl) Delete(ctx context.Context, kind ObjectKind, key string) error {
	objectKey, err := s.getObjectKey(kind, key)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.getBucket(kind)),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return ierr.WithError(err).WithHint("failed to delete object").
			WithMessagef("bucket:%s, key:%s", s.getBucket(kind), objectKey).
			Mark(ierr.ErrHTTPClient)
	}

	return nil
}
