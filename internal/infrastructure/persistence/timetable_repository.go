package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/catalog"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/infrastructure/persistence/models"
)

// GormTimetableRepository implements catalog.TimetableRepository using GORM
type GormTimetableRepository struct {
	db *gorm.DB
}

// NewGormTimetableRepository creates a new GormTimetableRepository
func NewGormTimetableRepository(db *gorm.DB) *GormTimetableRepository {
	return &GormTimetableRepository{db: db}
}

// Create creates a new timetable
func (r *GormTimetableRepository) Create(ctx context.Context, t *catalog.Timetable) error {
	model := models.TimetableModelFromDomain(t)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing timetable
func (r *GormTimetableRepository) Update(ctx context.Context, t *catalog.Timetable) error {
	model := models.TimetableModelFromDomain(t)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a timetable by ID
func (r *GormTimetableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TimetableModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteWithReservations removes the timetable and every reservation
// made against it in a single transaction
func (r *GormTimetableRepository) DeleteWithReservations(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ReservationModel{}, "timetable_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.TimetableModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByID finds a timetable by ID
func (r *GormTimetableRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Timetable, error) {
	var model models.TimetableModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists timetables newest first, optionally filtered by category
func (r *GormTimetableRepository) FindAll(ctx context.Context, category string) ([]*catalog.Timetable, error) {
	query := r.db.WithContext(ctx).Model(&models.TimetableModel{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var rows []models.TimetableModel
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	timetables := make([]*catalog.Timetable, len(rows))
	for i := range rows {
		timetables[i] = rows[i].ToDomain()
	}
	return timetables, nil
}

// Ensure GormTimetableRepository implements catalog.TimetableRepository
var _ catalog.TimetableRepository = (*GormTimetableRepository)(nil)
