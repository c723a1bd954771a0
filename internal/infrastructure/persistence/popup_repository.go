package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/content"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/infrastructure/persistence/models"
)

// GormPopupRepository implements content.PopupRepository using GORM
type GormPopupRepository struct {
	db *gorm.DB
}

// NewGormPopupRepository creates a new GormPopupRepository
func NewGormPopupRepository(db *gorm.DB) *GormPopupRepository {
	return &GormPopupRepository{db: db}
}

// Create creates a new popup
func (r *GormPopupRepository) Create(ctx context.Context, p *content.Popup) error {
	model := models.PopupModelFromDomain(p)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing popup
func (r *GormPopupRepository) Update(ctx context.Context, p *content.Popup) error {
	model := models.PopupModelFromDomain(p)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a popup by ID
func (r *GormPopupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PopupModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a popup by ID
func (r *GormPopupRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Popup, error) {
	var model models.PopupModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists all popups newest first
func (r *GormPopupRepository) FindAll(ctx context.Context) ([]*content.Popup, error) {
	var rows []models.PopupModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return popupsToDomain(rows), nil
}

// FindActive lists popups whose display window contains the given time
func (r *GormPopupRepository) FindActive(ctx context.Context, now time.Time) ([]*content.Popup, error) {
	var rows []models.PopupModel
	if err := r.db.WithContext(ctx).
		Where("starts_at <= ? AND ends_at > ?", now, now).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return popupsToDomain(rows), nil
}

func popupsToDomain(rows []models.PopupModel) []*content.Popup {
	popups := make([]*content.Popup, len(rows))
	for i := range rows {
		popups[i] = rows[i].ToDomain()
	}
	return popups
}

// Ensure GormPopupRepository implements content.PopupRepository
var _ content.PopupRepository = (*GormPopupRepository)(nil)
