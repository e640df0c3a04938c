// Package storage stores cover photos in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"atlas/config"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/lifecycle"
	"atlas/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Local-filesystem bucket driver. Swapping the bucket URL in config is
	// enough to move uploads to s3:// or gs:// with the matching driver.
	_ "gocloud.dev/blob/fileblob"
)

// allowedExtensions mirrors the upload filter of the web client.
var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
}

// blobService implements service.StorageService on top of a blob bucket.
type blobService struct {
	bucket  *blob.Bucket
	baseURL string
	logger  *slog.Logger
}

// Params defines the required parameters.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns the storage service.
func New(params Params) (service.StorageService, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket url must be provided")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobService{
		bucket:  bucket,
		baseURL: strings.TrimSuffix(params.Config.Storage.PublicBaseURL, "/"),
		logger:  params.Logger,
	}, nil
}

// Store writes the image under a fresh UUID key, keeping the original
// extension, and returns the public URL.
func (s *blobService) Store(ctx context.Context, filename string, data []byte) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", domainerrors.ErrUnsupportedImageType.WrapMessage("rejected upload " + filename)
	}

	key := uuid.New().String() + ext
	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType: contentTypeForExt(ext),
	}); err != nil {
		return "", errors.Wrap(err, "failed to write image to bucket")
	}

	return s.baseURL + "/" + key, nil
}

// Delete removes a stored image by its public URL. Unknown URLs are
// ignored so retried deletes stay idempotent.
func (s *blobService) Delete(ctx context.Context, imageURL string) error {
	key, ok := s.keyFromURL(imageURL)
	if !ok {
		s.logger.Warn("Skipping delete of foreign image URL", slog.String("imageUrl", imageURL))

		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete image from bucket")
	}

	return nil
}

// keyFromURL maps a public URL back to its bucket key. URLs outside our
// base URL (e.g. the placeholder image) are not ours to delete.
func (s *blobService) keyFromURL(imageURL string) (string, bool) {
	prefix := s.baseURL + "/"
	if !strings.HasPrefix(imageURL, prefix) {
		return "", false
	}

	key := strings.TrimPrefix(imageURL, prefix)
	if key == "" || strings.Contains(key, "/") {
		return "", false
	}

	return key, true
}

func contentTypeForExt(ext string) string {
	if ext == ".png" {
		return "image/png"
	}

	return "image/jpeg"
}
