package minio

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"citystore/internal/domain/entity"
	"citystore/pkg/apperr"
	"citystore/pkg/utils"
)

// Store persists images as single objects in a MinIO bucket. References
// are the absolute URLs the objects are served from.
type Store struct {
	minioClient *minio.Client
	cfg         *StoreConfig
}

func NewStore(minioClient *minio.Client, cfg *StoreConfig) *Store {
	return &Store{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// EnsureBucket creates the configured bucket if it does not exist yet.
func (s *Store) EnsureBucket(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
	defer cancel()

	exists, err := s.minioClient.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return apperr.Wrap(apperr.Storage, "couldn't check bucket", err)
	}
	if exists {
		return nil
	}

	if err := s.minioClient.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		return apperr.Wrap(apperr.Storage, "couldn't create bucket", err)
	}

	return nil
}

func (s *Store) Save(ctx context.Context, staged *entity.StagedFile) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
	defer cancel()

	file, err := os.Open(staged.Path)
	if err != nil {
		return "", apperr.Wrap(apperr.Storage, "couldn't open staged file", err)
	}
	defer file.Close()

	base := path.Base(staged.Path)
	key := strings.TrimSuffix(base, path.Ext(base))

	_, err = s.minioClient.PutObject(ctx, s.cfg.Bucket, key, file, staged.Size,
		minio.PutObjectOptions{
			ContentType: staged.MIME,
		})
	if err != nil {
		return "", apperr.Wrap(apperr.Storage, "couldn't upload image", err)
	}

	ext := utils.ExtensionByMIME(staged.MIME)

	return fmt.Sprintf("%s/%s/%s%s",
		strings.TrimRight(s.cfg.PublicURL, "/"), s.cfg.Bucket, key, ext), nil
}

func (s *Store) Remove(ctx context.Context, ref string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
	defer cancel()

	key := objectKey(ref)
	if key == "" {
		return nil
	}

	err := s.minioClient.RemoveObject(ctx, s.cfg.Bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return apperr.Wrap(apperr.Storage, "couldn't remove image", err)
	}

	return nil
}

// PublicURL returns ref unchanged: remote references are already the URLs
// the objects are served from.
func (s *Store) PublicURL(ref string) string {
	return ref
}

// objectKey derives the object identifier from a reference URL: the final
// path segment with its extension stripped.
func objectKey(ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}

	base := path.Base(u.Path)
	if base == "." || base == "/" {
		return ""
	}

	return strings.TrimSuffix(base, path.Ext(base))
}
