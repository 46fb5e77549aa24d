// Package storage moves uploaded media to an S3 compatible object store.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"vidtube/config"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"
	"vidtube/internal/util"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const uploadPartSize = 5 * 1024 * 1024

type objectUploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type objectDeleter interface {
	DeleteObject(ctx context.Context, input *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// S3Storage implements service.AssetStorage.
type S3Storage struct {
	uploader objectUploader
	deleter  objectDeleter
	bucket   string
	baseURL  string
	logger   *slog.Logger
}

// NewS3Storage configures an uploader targeting the configured bucket.
func NewS3Storage(params Params) (service.AssetStorage, error) {
	cfg := params.Config.ObjectStore
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errors.New("s3 storage: bucket is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = uploadPartSize
		u.LeavePartsOnError = false
	})

	return newS3Storage(uploader, client, cfg, params.Logger), nil
}

func newS3Storage(uploader objectUploader, deleter objectDeleter, cfg config.ObjectStoreConfig, logger *slog.Logger) *S3Storage {
	return &S3Storage{
		uploader: uploader,
		deleter:  deleter,
		bucket:   cfg.Bucket,
		baseURL:  strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		logger:   logger,
	}
}

// objectKey places each asset under its kind with a random name, keeping the original extension.
func objectKey(kind service.AssetKind, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))

	return fmt.Sprintf("%ss/%s%s", kind, uuid.NewString(), ext)
}

func (s *S3Storage) Upload(ctx context.Context, asset service.Asset) (*service.StoredAsset, error) {
	if asset.Body == nil {
		return nil, errors.New("s3 storage: empty body")
	}

	key := objectKey(asset.Kind, asset.FileName)
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   manager.ReadSeekCloser(asset.Body),
		ACL:    s3types.ObjectCannedACLPublicRead,
	}
	if asset.ContentType != "" {
		input.ContentType = aws.String(asset.ContentType)
	}

	out, err := s.uploader.Upload(ctx, input)
	if err != nil {
		return nil, errors.Wrapf(err, "s3 storage upload %s", key)
	}
	s.logger.Debug("asset uploaded", slog.String("key", key), slog.String("size", util.FormatBytes(asset.Size)))

	url := key
	switch {
	case s.baseURL != "":
		url = s.baseURL + "/" + key
	case out != nil && out.Location != "":
		url = out.Location
	}

	return &service.StoredAsset{URL: url, Duration: asset.Duration}, nil
}

// Delete removes the object behind a public URL. Unknown URLs are ignored.
func (s *S3Storage) Delete(ctx context.Context, url string, kind service.AssetKind) error {
	key, ok := s.keyFromURL(url, kind)
	if !ok {
		return nil
	}

	if _, err := s.deleter.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return errors.Wrapf(err, "s3 storage delete %s", key)
	}

	return nil
}

// keyFromURL recovers the object key, requiring it to sit under the kind's prefix.
func (s *S3Storage) keyFromURL(url string, kind service.AssetKind) (string, bool) {
	prefix := string(kind) + "s/"
	idx := strings.Index(url, prefix)
	if url == "" || idx < 0 {
		return "", false
	}

	return url[idx:], true
}
