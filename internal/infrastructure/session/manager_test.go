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

func newTestManager(t *testing.T) *Manager {
	store := NewInMemoryStore()
	t.Cleanup(func() { store.Close() })
	return NewManager(store, time.Hour)
}

func TestManager_StartAndResolve(t *testing.T) {
	mgr := newTestManager(t)
	ctx := context.Background()

	memberID := uuid.New()
	sess, err := mgr.Start(ctx, memberID)
	require.NoError(t, err)
	assert.Len(t, sess.ID, 64) // 32 random bytes, hex encoded
	assert.Equal(t, memberID, sess.MemberID)

	resolved, err := mgr.Resolve(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, memberID, resolved.MemberID)
}

func TestManager_SessionIDsAreUnique(t *testing.T) {
	mgr := newTestManager(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		sess, err := mgr.Start(ctx, uuid.New())
		require.NoError(t, err)
		assert.False(t, seen[sess.ID])
		seen[sess.ID] = true
	}
}

func TestManager_Destroy(t *testing.T) {
	mgr := newTestManager(t)
	ctx := context.Background()

	sess, err := mgr.Start(ctx, uuid.New())
	require.NoError(t, err)

	require.NoError(t, mgr.Destroy(ctx, sess.ID))
	_, err = mgr.Resolve(ctx, sess.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	// Destroying again must not fail
	require.NoError(t, mgr.Destroy(ctx, sess.ID))
}
