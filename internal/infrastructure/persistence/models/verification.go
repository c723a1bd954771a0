package models

import (
	"time"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/verification"
)

// PhoneVerificationModel is the persistence model for phone verification codes.
// A partial unique index on (phone) WHERE NOT verified backs the at-most-one
// active code invariant; the index lives in the SQL migrations.
type PhoneVerificationModel struct {
	BaseModel
	Phone     string    `gorm:"type:varchar(20);not null;index"`
	Code      string    `gorm:"type:varchar(6);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Verified  bool      `gorm:"not null;default:false"`
}

// TableName specifies the table name
func (PhoneVerificationModel) TableName() string {
	return "phone_verifications"
}

// ToDomain converts the persistence model to a domain record
func (m *PhoneVerificationModel) ToDomain() *verification.PhoneVerification {
	return &verification.PhoneVerification{
		BaseEntity: m.BaseModel.ToDomain(),
		Phone:      m.Phone,
		Code:       m.Code,
		ExpiresAt:  m.ExpiresAt,
		Verified:   m.Verified,
	}
}

// PhoneVerificationModelFromDomain creates a persistence model from a domain record
func PhoneVerificationModelFromDomain(v *verification.PhoneVerification) *PhoneVerificationModel {
	model := &PhoneVerificationModel{
		Phone:     v.Phone,
		Code:      v.Code,
		ExpiresAt: v.ExpiresAt,
		Verified:  v.Verified,
	}
	model.FromDomainBaseEntity(v.BaseEntity)
	return model
}
