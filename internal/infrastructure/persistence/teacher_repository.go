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

// GormTeacherRepository implements catalog.TeacherRepository using GORM
type GormTeacherRepository struct {
	db *gorm.DB
}

// NewGormTeacherRepository creates a new GormTeacherRepository
func NewGormTeacherRepository(db *gorm.DB) *GormTeacherRepository {
	return &GormTeacherRepository{db: db}
}

// Create creates a new teacher profile
func (r *GormTeacherRepository) Create(ctx context.Context, t *catalog.Teacher) error {
	model := models.TeacherModelFromDomain(t)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing teacher profile
func (r *GormTeacherRepository) Update(ctx context.Context, t *catalog.Teacher) error {
	model := models.TeacherModelFromDomain(t)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a teacher profile by ID
func (r *GormTeacherRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TeacherModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a teacher profile by ID
func (r *GormTeacherRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Teacher, error) {
	var model models.TeacherModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists teacher profiles by display order
func (r *GormTeacherRepository) FindAll(ctx context.Context) ([]*catalog.Teacher, error) {
	var rows []models.TeacherModel
	if err := r.db.WithContext(ctx).
		Order("display_order ASC, created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	teachers := make([]*catalog.Teacher, len(rows))
	for i := range rows {
		teachers[i] = rows[i].ToDomain()
	}
	return teachers, nil
}

// Ensure GormTeacherRepository implements catalog.TeacherRepository
var _ catalog.TeacherRepository = (*GormTeacherRepository)(nil)
