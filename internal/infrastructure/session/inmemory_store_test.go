package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
)

func TestInMemoryStore_SaveAndFind(t *testing.T) {
	store := NewInMemoryStore()
	defer store.Close()
	ctx := context.Background()

	memberID := uuid.New()
	sess := &Session{ID: "abc123", MemberID: memberID, CreatedAt: time.Now()}
	require.NoError(t, store.Save(ctx, sess, time.Hour))

	found, err := store.Find(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, memberID, found.MemberID)
	assert.True(t, found.ExpiresAt.After(time.Now()))
}

func TestInMemoryStore_FindUnknown(t *testing.T) {
	store := NewInMemoryStore()
	defer store.Close()

	_, err := store.Find(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestInMemoryStore_ExpiredSessionIsNotFound(t *testing.T) {
	store := NewInMemoryStore()
	defer store.Close()
	ctx := context.Background()

	sess := &Session{ID: "abc123", MemberID: uuid.New(), CreatedAt: time.Now()}
	require.NoError(t, store.Save(ctx, sess, -time.Second))

	_, err := store.Find(ctx, "abc123")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestInMemoryStore_DeleteIsIdempotent(t *testing.T) {
	store := NewInMemoryStore()
	defer store.Close()
	ctx := context.Background()

	sess := &Session{ID: "abc123", MemberID: uuid.New(), CreatedAt: time.Now()}
	require.NoError(t, store.Save(ctx, sess, time.Hour))

	require.NoError(t, store.Delete(ctx, "abc123"))
	require.NoError(t, store.Delete(ctx, "abc123"))

	_, err := store.Find(ctx, "abc123")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestInMemoryStore_Cleanup(t *testing.T) {
	store := NewInMemoryStore()
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Session{ID: "live", MemberID: uuid.New()}, time.Hour))
	require.NoError(t, store.Save(ctx, &Session{ID: "dead", MemberID: uuid.New()}, -time.Second))
	require.Equal(t, 2, store.Size())

	store.cleanup()
	assert.Equal(t, 1, store.Size())
}

func TestInMemoryStore_CloseIsSafeToCallTwice(t *testing.T) {
	store := NewInMemoryStore()
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
}
