package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/verification"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/infrastructure/persistence/models"
)

// GormPhoneVerificationRepository implements verification.Repository using GORM
type GormPhoneVerificationRepository struct {
	db *gorm.DB
}

// NewGormPhoneVerificationRepository creates a new GormPhoneVerificationRepository
func NewGormPhoneVerificationRepository(db *gorm.DB) *GormPhoneVerificationRepository {
	return &GormPhoneVerificationRepository{db: db}
}

// CreateSuperseding retires any active record for the phone and inserts the
// new one in a single transaction, so at most one unverified record per phone
// survives a "send code" call.
func (r *GormPhoneVerificationRepository) CreateSuperseding(ctx context.Context, v *verification.PhoneVerification) error {
	model := models.PhoneVerificationModelFromDomain(v)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PhoneVerificationModel{}).
			Where("phone = ? AND verified = ?", v.Phone, false).
			Updates(map[string]any{"verified": true, "updated_at": time.Now()}).Error; err != nil {
			return err
		}
		if err := tx.Create(model).Error; err != nil {
			if isUniqueViolation(err) {
				// Concurrent request inserted between retire and insert;
				// its code is just as valid as ours.
				return shared.ErrAlreadyExists
			}
			return err
		}
		return nil
	})
}

// FindActive returns the most recent unverified, unexpired record matching
// phone and code.
func (r *GormPhoneVerificationRepository) FindActive(ctx context.Context, phone, code string, now time.Time) (*verification.PhoneVerification, error) {
	var model models.PhoneVerificationModel
	if err := r.db.WithContext(ctx).
		Where("phone = ? AND code = ? AND verified = ? AND expires_at > ?", phone, code, false, now).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Update persists mutations of an existing record
func (r *GormPhoneVerificationRepository) Update(ctx context.Context, v *verification.PhoneVerification) error {
	model := models.PhoneVerificationModelFromDomain(v)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormPhoneVerificationRepository implements verification.Repository
var _ verification.Repository = (*GormPhoneVerificationRepository)(nil)
