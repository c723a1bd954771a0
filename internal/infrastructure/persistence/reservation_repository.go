package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/booking"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/infrastructure/persistence/models"
)

// GormReservationRepository implements booking.Repository using GORM
type GormReservationRepository struct {
	db *gorm.DB
}

// NewGormReservationRepository creates a new GormReservationRepository
func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

// Create inserts the reservation. The unique index on
// (member_id, timetable_id) turns concurrent duplicates into
// shared.ErrAlreadyExists instead of a second row.
func (r *GormReservationRepository) Create(ctx context.Context, res *booking.Reservation) error {
	model := models.ReservationModelFromDomain(res)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Exists reports whether the member already reserved the timetable
func (r *GormReservationRepository) Exists(ctx context.Context, memberID, timetableID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ReservationModel{}).
		Where("member_id = ? AND timetable_id = ?", memberID, timetableID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAllRows returns all reservations joined with member and timetable
// display fields, newest first.
func (r *GormReservationRepository) FindAllRows(ctx context.Context) ([]booking.Row, error) {
	var rows []booking.Row
	err := r.db.WithContext(ctx).
		Table("reservations").
		Select(`reservations.id, reservations.member_id, reservations.timetable_id,
			reservations.created_at,
			members.username, members.student_name, members.student_phone, members.parent_phone,
			timetables.class_name, timetables.class_time, timetables.class_date`).
		Joins("JOIN members ON members.id = reservations.member_id").
		Joins("JOIN timetables ON timetables.id = reservations.timetable_id").
		Order("reservations.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes a reservation by ID. Deleting a missing ID is a no-op.
func (r *GormReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.ReservationModel{}, "id = ?", id).Error
}

// DeleteByTimetable removes every reservation referencing the timetable
func (r *GormReservationRepository) DeleteByTimetable(ctx context.Context, timetableID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.ReservationModel{}, "timetable_id = ?", timetableID).Error
}

// Ensure GormReservationRepository implements booking.Repository
var _ booking.Repository = (*GormReservationRepository)(nil)
