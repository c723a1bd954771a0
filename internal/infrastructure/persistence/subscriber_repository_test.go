package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/content"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
)

func setupSubscriberTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE sms_subscribers (
			id TEXT PRIMARY KEY,
			phone TEXT NOT NULL UNIQUE,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`).Error
	require.NoError(t, err)

	return db
}

func TestGormSubscriberRepository_CreateAndList(t *testing.T) {
	db := setupSubscriberTestDB(t)
	repo := NewGormSubscriberRepository(db)
	ctx := context.Background()

	s, err := content.NewSmsSubscriber("010-1234-5678")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, s))

	subscribers, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, subscribers, 1)
	assert.Equal(t, "01012345678", subscribers[0].Phone)
}

func TestGormSubscriberRepository_DuplicatePhone(t *testing.T) {
	db := setupSubscriberTestDB(t)
	repo := NewGormSubscriberRepository(db)
	ctx := context.Background()

	first, err := content.NewSmsSubscriber("010-1234-5678")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	// Same number with different formatting normalizes to the same row
	second, err := content.NewSmsSubscriber("01012345678")
	require.NoError(t, err)
	err = repo.Create(ctx, second)
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
}

func TestGormSubscriberRepository_Delete(t *testing.T) {
	db := setupSubscriberTestDB(t)
	repo := NewGormSubscriberRepository(db)
	ctx := context.Background()

	s, err := content.NewSmsSubscriber("010-1234-5678")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, s))

	require.NoError(t, repo.Delete(ctx, s.ID))
	err = repo.Delete(ctx, s.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
