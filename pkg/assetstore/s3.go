// Package assetstore talks to the external object store hosting listing
// images. The store and the relational database share no transaction boundary;
// callers sequence uploads, deletions and record writes themselves (see the
// batch combinators in this package and the event/product services).
package assetstore

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/Akash4693/TradeX-backend/pkg/model"
)

// Per-call deadline. Sequential uploads without a cap could otherwise block a
// request indefinitely.
const defaultTimeout = 30 * time.Second

type Config struct {
	Bucket string
	// Folder prefixes every key, isolating this service's blobs in a shared
	// bucket.
	Folder string
	// PublicURL is the base address blobs are served from.
	PublicURL string
	// Timeout caps each store call; zero means the default.
	Timeout time.Duration
}

func NewS3Store(logger *slog.Logger, cfg Config, client AWSS3Client, uploader AWSS3Uploader) *S3Store {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &S3Store{
		logger:   logger,
		cfg:      cfg,
		client:   client,
		uploader: uploader,
	}
}

// S3Store is a pure capability over the object store: one upload, one delete.
// No retries, no batching.
type S3Store struct {
	logger   *slog.Logger
	cfg      Config
	client   AWSS3Client
	uploader AWSS3Uploader
}

type AWSS3Client interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type AWSS3Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

func (s *S3Store) Upload(ctx context.Context, raw RawImage) (model.AssetRef, error) {
	contentType, data, err := raw.Decode()
	if err != nil {
		return model.AssetRef{}, err
	}

	key := path.Join(s.cfg.Folder, uuid.NewString())

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	s.logger.InfoContext(ctx, "Uploading asset", "bucket", s.cfg.Bucket, "key", key, "size", len(data))
	_, err = s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return model.AssetRef{}, fmt.Errorf("error uploading object to bucket %q using key %q: %s", s.cfg.Bucket, key, err)
	}

	return model.AssetRef{
		PublicID: key,
		URL:      fmt.Sprintf("%s/%s", s.cfg.PublicURL, key),
	}, nil
}

func (s *S3Store) Delete(ctx context.Context, publicID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return fmt.Errorf("error deleting object from bucket %q using key %q: %s", s.cfg.Bucket, publicID, err)
	}
	return nil
}
