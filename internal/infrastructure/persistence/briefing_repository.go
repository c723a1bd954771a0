package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/content"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/infrastructure/persistence/models"
)

// GormBriefingRepository implements content.BriefingRepository using GORM
type GormBriefingRepository struct {
	db *gorm.DB
}

// NewGormBriefingRepository creates a new GormBriefingRepository
func NewGormBriefingRepository(db *gorm.DB) *GormBriefingRepository {
	return &GormBriefingRepository{db: db}
}

// Create creates a new briefing
func (r *GormBriefingRepository) Create(ctx context.Context, b *content.Briefing) error {
	model := models.BriefingModelFromDomain(b)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing briefing
func (r *GormBriefingRepository) Update(ctx context.Context, b *content.Briefing) error {
	model := models.BriefingModelFromDomain(b)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a briefing by ID
func (r *GormBriefingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BriefingModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a briefing by ID
func (r *GormBriefingRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Briefing, error) {
	var model models.BriefingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists briefings newest first
func (r *GormBriefingRepository) FindAll(ctx context.Context) ([]*content.Briefing, error) {
	var rows []models.BriefingModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	briefings := make([]*content.Briefing, len(rows))
	for i := range rows {
		briefings[i] = rows[i].ToDomain()
	}
	return briefings, nil
}

// Ensure GormBriefingRepository implements content.BriefingRepository
var _ content.BriefingRepository = (*GormBriefingRepository)(nil)
