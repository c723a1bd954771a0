package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/member"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
)

// setupMemberTestDB creates an in-memory SQLite database for testing
func setupMemberTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE members (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'member',
			member_type TEXT NOT NULL DEFAULT 'student',
			student_name TEXT NOT NULL,
			gender TEXT,
			track TEXT,
			grade TEXT,
			school TEXT,
			student_phone TEXT,
			parent_phone TEXT,
			birthday TEXT,
			subject TEXT,
			email TEXT,
			academy_status TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`).Error
	require.NoError(t, err)

	return db
}

func createTestMember(t *testing.T, username string) *member.Member {
	m, err := member.NewMember(username, "secret1", member.Profile{
		MemberType:   member.TypeStudent,
		StudentName:  "김민준",
		Gender:       "male",
		Track:        "natural",
		Grade:        "high2",
		School:       "영통고등학교",
		StudentPhone: "010-1234-5678",
		ParentPhone:  "010-8765-4321",
	})
	require.NoError(t, err)
	return m
}

func TestGormMemberRepository_CreateAndFind(t *testing.T) {
	db := setupMemberTestDB(t)
	repo := NewGormMemberRepository(db)
	ctx := context.Background()

	m := createTestMember(t, "minjun01")
	require.NoError(t, repo.Create(ctx, m))

	found, err := repo.FindByUsername(ctx, "minjun01")
	require.NoError(t, err)
	assert.Equal(t, m.ID, found.ID)
	assert.Equal(t, "minjun01", found.Username)
	assert.Equal(t, "김민준", found.StudentName)
	// Phones were normalized during registration
	assert.Equal(t, "01012345678", found.StudentPhone)
	assert.True(t, found.VerifyPassword("secret1"))
	assert.False(t, found.VerifyPassword("wrongpw"))

	byID, err := repo.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.Username, byID.Username)
}

func TestGormMemberRepository_DuplicateUsername(t *testing.T) {
	db := setupMemberTestDB(t)
	repo := NewGormMemberRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, createTestMember(t, "minjun01")))

	err := repo.Create(ctx, createTestMember(t, "minjun01"))
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
}

func TestGormMemberRepository_ExistsByUsername(t *testing.T) {
	db := setupMemberTestDB(t)
	repo := NewGormMemberRepository(db)
	ctx := context.Background()

	exists, err := repo.ExistsByUsername(ctx, "minjun01")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, createTestMember(t, "minjun01")))

	exists, err = repo.ExistsByUsername(ctx, "minjun01")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGormMemberRepository_FindByID_NotFound(t *testing.T) {
	db := setupMemberTestDB(t)
	repo := NewGormMemberRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
