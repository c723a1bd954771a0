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

// GormBannerRepository implements content.BannerRepository using GORM
type GormBannerRepository struct {
	db *gorm.DB
}

// NewGormBannerRepository creates a new GormBannerRepository
func NewGormBannerRepository(db *gorm.DB) *GormBannerRepository {
	return &GormBannerRepository{db: db}
}

// Create creates a new banner
func (r *GormBannerRepository) Create(ctx context.Context, b *content.Banner) error {
	model := models.BannerModelFromDomain(b)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing banner
func (r *GormBannerRepository) Update(ctx context.Context, b *content.Banner) error {
	model := models.BannerModelFromDomain(b)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a banner by ID
func (r *GormBannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BannerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a banner by ID
func (r *GormBannerRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Banner, error) {
	var model models.BannerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists banners ordered by position
func (r *GormBannerRepository) FindAll(ctx context.Context) ([]*content.Banner, error) {
	var rows []models.BannerModel
	if err := r.db.WithContext(ctx).
		Order("position ASC, created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	banners := make([]*content.Banner, len(rows))
	for i := range rows {
		banners[i] = rows[i].ToDomain()
	}
	return banners, nil
}

// Ensure GormBannerRepository implements content.BannerRepository
var _ content.BannerRepository = (*GormBannerRepository)(nil)
