package upload

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
)

// ObjectStorage is the port the upload service writes images through.
type ObjectStorage interface {
	// Upload stores the object under the given key
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error

	// PublicURL returns the browser-reachable URL for a stored key
	PublicURL(key string) string

	// Delete removes the object. Deleting an unknown key is not an error.
	Delete(ctx context.Context, key string) error
}

// extensions maps the accepted image content types to file extensions
var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

var (
	errUnsupportedType = shared.NewDomainError("INVALID_INPUT", "이미지 파일(JPEG, PNG, GIF, WebP)만 업로드할 수 있습니다.")
	errFileTooLarge    = shared.NewDomainError("INVALID_INPUT", "이미지 크기는 5MB 이하여야 합니다.")
)

// Service stores admin-uploaded images (banners, popups, teacher photos)
// and hands back their public URLs.
type Service struct {
	storage ObjectStorage
	maxSize int64
	logger  *zap.Logger
}

// NewService creates an upload service
func NewService(storage ObjectStorage, maxSize int64, logger *zap.Logger) *Service {
	return &Service{
		storage: storage,
		maxSize: maxSize,
		logger:  logger,
	}
}

// Result describes a stored image
type Result struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// UploadImage validates and stores an image, returning its public URL.
// Keys are random, so uploads never collide or overwrite each other.
func (s *Service) UploadImage(ctx context.Context, body io.Reader, size int64, contentType string) (*Result, error) {
	ext, ok := extensions[contentType]
	if !ok {
		return nil, errUnsupportedType
	}
	if size <= 0 || size > s.maxSize {
		return nil, errFileTooLarge
	}

	key := path.Join("uploads", uuid.New().String()+ext)

	if err := s.storage.Upload(ctx, key, io.LimitReader(body, s.maxSize), size, contentType); err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	s.logger.Info("image uploaded",
		zap.String("key", key),
		zap.Int64("size", size),
		zap.String("content_type", contentType),
	)

	return &Result{Key: key, URL: s.storage.PublicURL(key)}, nil
}
