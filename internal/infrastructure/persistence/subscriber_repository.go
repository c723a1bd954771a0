package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/content"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/infrastructure/persistence/models"
)

// GormSubscriberRepository implements content.SubscriberRepository using GORM
type GormSubscriberRepository struct {
	db *gorm.DB
}

// NewGormSubscriberRepository creates a new GormSubscriberRepository
func NewGormSubscriberRepository(db *gorm.DB) *GormSubscriberRepository {
	return &GormSubscriberRepository{db: db}
}

// Create inserts the subscriber. The unique index on phone turns duplicate
// signups into shared.ErrAlreadyExists.
func (r *GormSubscriberRepository) Create(ctx context.Context, s *content.SmsSubscriber) error {
	model := models.SmsSubscriberModelFromDomain(s)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Delete deletes a subscriber by ID
func (r *GormSubscriberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SmsSubscriberModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindAll lists subscribers newest first
func (r *GormSubscriberRepository) FindAll(ctx context.Context) ([]*content.SmsSubscriber, error) {
	var rows []models.SmsSubscriberModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	subscribers := make([]*content.SmsSubscriber, len(rows))
	for i := range rows {
		subscribers[i] = rows[i].ToDomain()
	}
	return subscribers, nil
}

// Ensure GormSubscriberRepository implements content.SubscriberRepository
var _ content.SubscriberRepository = (*GormSubscriberRepository)(nil)
