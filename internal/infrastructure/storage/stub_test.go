package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryObjectStorage_UploadAndGet(t *testing.T) {
	s := NewMemoryObjectStorage()
	ctx := context.Background()

	err := s.Upload(ctx, "uploads/a.jpg", strings.NewReader("image-bytes"), 11, "image/jpeg")
	require.NoError(t, err)

	data, ok := s.Get("uploads/a.jpg")
	require.True(t, ok)
	assert.Equal(t, []byte("image-bytes"), data)
	assert.Equal(t, 1, s.Size())
}

func TestMemoryObjectStorage_RequiresKey(t *testing.T) {
	s := NewMemoryObjectStorage()
	ctx := context.Background()

	assert.Error(t, s.Upload(ctx, "", strings.NewReader("x"), 1, "image/png"))
	assert.Error(t, s.Delete(ctx, ""))
}

func TestMemoryObjectStorage_PublicURL(t *testing.T) {
	s := NewMemoryObjectStorage()
	assert.Equal(t, "https://storage.example.com/uploads/a.jpg", s.PublicURL("uploads/a.jpg"))
}

func TestMemoryObjectStorage_DeleteIsIdempotent(t *testing.T) {
	s := NewMemoryObjectStorage()
	ctx := context.Background()

	require.NoError(t, s.Upload(ctx, "uploads/a.jpg", strings.NewReader("x"), 1, "image/jpeg"))
	require.NoError(t, s.Delete(ctx, "uploads/a.jpg"))
	require.NoError(t, s.Delete(ctx, "uploads/a.jpg"))
	assert.Equal(t, 0, s.Size())
}
