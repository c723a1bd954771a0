package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/booking"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/catalog"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/infrastructure/persistence/models"
)

// setupReservationTestDB creates an in-memory SQLite database with the tables
// the reservation join touches.
func setupReservationTestDB(t *testing.T) *gorm.DB {
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

	err = db.Exec(`
		CREATE TABLE timetables (
			id TEXT PRIMARY KEY,
			teacher_id TEXT,
			teacher_name TEXT,
			category TEXT NOT NULL,
			target_school TEXT,
			class_name TEXT NOT NULL,
			class_time TEXT,
			class_date TEXT,
			teacher_image_url TEXT,
			description TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`).Error
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE reservations (
			id TEXT PRIMARY KEY,
			member_id TEXT NOT NULL,
			timetable_id TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			UNIQUE(member_id, timetable_id)
		)
	`).Error
	require.NoError(t, err)

	return db
}

func seedMemberAndTimetable(t *testing.T, db *gorm.DB) (uuid.UUID, uuid.UUID) {
	m := createTestMember(t, "minjun01")
	require.NoError(t, db.Create(models.MemberModelFromDomain(m)).Error)

	tt, err := catalog.NewTimetable(catalog.TimetableFields{
		Category:  "high",
		ClassName: "고2 수학 정규반",
		ClassTime: "월/수/금 19:00~22:00",
		ClassDate: "2026-03-02",
	})
	require.NoError(t, err)
	require.NoError(t, db.Create(models.TimetableModelFromDomain(tt)).Error)

	return m.ID, tt.ID
}

func TestGormReservationRepository_CreateAndDuplicate(t *testing.T) {
	db := setupReservationTestDB(t)
	repo := NewGormReservationRepository(db)
	ctx := context.Background()

	memberID, timetableID := seedMemberAndTimetable(t, db)

	first, err := booking.NewReservation(memberID, timetableID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	// The unique index rejects the second insert regardless of any prior check
	second, err := booking.NewReservation(memberID, timetableID)
	require.NoError(t, err)
	err = repo.Create(ctx, second)
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)

	var count int64
	require.NoError(t, db.Model(&models.ReservationModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGormReservationRepository_Exists(t *testing.T) {
	db := setupReservationTestDB(t)
	repo := NewGormReservationRepository(db)
	ctx := context.Background()

	memberID, timetableID := seedMemberAndTimetable(t, db)

	exists, err := repo.Exists(ctx, memberID, timetableID)
	require.NoError(t, err)
	assert.False(t, exists)

	r, err := booking.NewReservation(memberID, timetableID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, r))

	exists, err = repo.Exists(ctx, memberID, timetableID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGormReservationRepository_FindAllRows(t *testing.T) {
	db := setupReservationTestDB(t)
	repo := NewGormReservationRepository(db)
	ctx := context.Background()

	memberID, timetableID := seedMemberAndTimetable(t, db)

	r, err := booking.NewReservation(memberID, timetableID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, r))

	rows, err := repo.FindAllRows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, r.ID, rows[0].ID)
	assert.Equal(t, "minjun01", rows[0].Username)
	assert.Equal(t, "김민준", rows[0].StudentName)
	assert.Equal(t, "고2 수학 정규반", rows[0].ClassName)
}

func TestGormReservationRepository_DeleteIsIdempotent(t *testing.T) {
	db := setupReservationTestDB(t)
	repo := NewGormReservationRepository(db)
	ctx := context.Background()

	// Deleting a reservation that never existed is not an error
	require.NoError(t, repo.Delete(ctx, uuid.New()))

	memberID, timetableID := seedMemberAndTimetable(t, db)
	r, err := booking.NewReservation(memberID, timetableID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, r))

	require.NoError(t, repo.Delete(ctx, r.ID))
	require.NoError(t, repo.Delete(ctx, r.ID))

	var count int64
	require.NoError(t, db.Model(&models.ReservationModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestGormReservationRepository_DeleteByTimetable(t *testing.T) {
	db := setupReservationTestDB(t)
	repo := NewGormReservationRepository(db)
	ctx := context.Background()

	_, timetableID := seedMemberAndTimetable(t, db)

	// Several members reserve the same class
	for _, username := range []string{"student1", "student2", "student3"} {
		m := createTestMember(t, username)
		require.NoError(t, db.Create(models.MemberModelFromDomain(m)).Error)
		r, err := booking.NewReservation(m.ID, timetableID)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, r))
	}

	require.NoError(t, repo.DeleteByTimetable(ctx, timetableID))

	var count int64
	require.NoError(t, db.Model(&models.ReservationModel{}).
		Where("timetable_id = ?", timetableID).
		Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
