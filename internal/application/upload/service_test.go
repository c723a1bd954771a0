package upload

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
)

// storageStub records uploads and serves URLs from a fixed base
type storageStub struct {
	keys []string
	err  error
}

func (s *storageStub) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	if s.err != nil {
		return s.err
	}
	s.keys = append(s.keys, key)
	return nil
}

func (s *storageStub) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func (s *storageStub) Delete(ctx context.Context, key string) error {
	return nil
}

func TestService_UploadImage(t *testing.T) {
	storage := &storageStub{}
	svc := NewService(storage, 5<<20, zap.NewNop())

	result, err := svc.UploadImage(context.Background(), strings.NewReader("image-bytes"), 11, "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Key, "uploads/"))
	assert.True(t, strings.HasSuffix(result.Key, ".png"))
	assert.Equal(t, "https://cdn.example.com/"+result.Key, result.URL)
	assert.Len(t, storage.keys, 1)
}

func TestService_UploadImage_UnsupportedType(t *testing.T) {
	storage := &storageStub{}
	svc := NewService(storage, 5<<20, zap.NewNop())

	_, err := svc.UploadImage(context.Background(), strings.NewReader("%PDF-"), 5, "application/pdf")
	require.Error(t, err)

	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "INVALID_INPUT", de.Code)
	assert.Empty(t, storage.keys)
}

func TestService_UploadImage_TooLarge(t *testing.T) {
	svc := NewService(&storageStub{}, 10, zap.NewNop())

	_, err := svc.UploadImage(context.Background(), strings.NewReader("0123456789abc"), 13, "image/jpeg")
	require.Error(t, err)

	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "INVALID_INPUT", de.Code)
}

func TestService_UploadImage_StorageError(t *testing.T) {
	svc := NewService(&storageStub{err: assert.AnError}, 5<<20, zap.NewNop())

	_, err := svc.UploadImage(context.Background(), strings.NewReader("a"), 1, "image/jpeg")
	assert.Error(t, err)
}

func TestService_UploadImage_UniqueKeys(t *testing.T) {
	storage := &storageStub{}
	svc := NewService(storage, 5<<20, zap.NewNop())

	first, err := svc.UploadImage(context.Background(), strings.NewReader("a"), 1, "image/jpeg")
	require.NoError(t, err)
	second, err := svc.UploadImage(context.Background(), strings.NewReader("b"), 1, "image/jpeg")
	require.NoError(t, err)
	assert.NotEqual(t, first.Key, second.Key)
}
