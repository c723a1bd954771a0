package models

import (
	"time"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/content"
)

// BannerModel is the persistence model for main-page banners
type BannerModel struct {
	BaseModel
	Title    string `gorm:"type:varchar(200)"`
	ImageURL string `gorm:"type:varchar(500);not null"`
	LinkURL  string `gorm:"type:varchar(500)"`
	Position int    `gorm:"not null;default:0"`
}

// TableName specifies the table name
func (BannerModel) TableName() string {
	return "banners"
}

// ToDomain converts the persistence model to a domain banner
func (m *BannerModel) ToDomain() *content.Banner {
	return &content.Banner{
		BaseEntity: m.BaseModel.ToDomain(),
		Title:      m.Title,
		ImageURL:   m.ImageURL,
		LinkURL:    m.LinkURL,
		Position:   m.Position,
	}
}

// BannerModelFromDomain creates a persistence model from a domain banner
func BannerModelFromDomain(b *content.Banner) *BannerModel {
	model := &BannerModel{
		Title:    b.Title,
		ImageURL: b.ImageURL,
		LinkURL:  b.LinkURL,
		Position: b.Position,
	}
	model.FromDomainBaseEntity(b.BaseEntity)
	return model
}

// PopupModel is the persistence model for time-boxed popups
type PopupModel struct {
	BaseModel
	Title    string    `gorm:"type:varchar(200)"`
	ImageURL string    `gorm:"type:varchar(500);not null"`
	LinkURL  string    `gorm:"type:varchar(500)"`
	StartsAt time.Time `gorm:"not null;index"`
	EndsAt   time.Time `gorm:"not null;index"`
}

// TableName specifies the table name
func (PopupModel) TableName() string {
	return "popups"
}

// ToDomain converts the persistence model to a domain popup
func (m *PopupModel) ToDomain() *content.Popup {
	return &content.Popup{
		BaseEntity: m.BaseModel.ToDomain(),
		Title:      m.Title,
		ImageURL:   m.ImageURL,
		LinkURL:    m.LinkURL,
		StartsAt:   m.StartsAt,
		EndsAt:     m.EndsAt,
	}
}

// PopupModelFromDomain creates a persistence model from a domain popup
func PopupModelFromDomain(p *content.Popup) *PopupModel {
	model := &PopupModel{
		Title:    p.Title,
		ImageURL: p.ImageURL,
		LinkURL:  p.LinkURL,
		StartsAt: p.StartsAt,
		EndsAt:   p.EndsAt,
	}
	model.FromDomainBaseEntity(p.BaseEntity)
	return model
}

// BriefingModel is the persistence model for admissions briefing announcements
type BriefingModel struct {
	BaseModel
	Title       string `gorm:"type:varchar(200);not null"`
	HeldAt      string `gorm:"type:varchar(100)"`
	Location    string `gorm:"type:varchar(200)"`
	Description string `gorm:"type:text"`
}

// TableName specifies the table name
func (BriefingModel) TableName() string {
	return "briefings"
}

// ToDomain converts the persistence model to a domain briefing
func (m *BriefingModel) ToDomain() *content.Briefing {
	return &content.Briefing{
		BaseEntity:  m.BaseModel.ToDomain(),
		Title:       m.Title,
		HeldAt:      m.HeldAt,
		Location:    m.Location,
		Description: m.Description,
	}
}

// BriefingModelFromDomain creates a persistence model from a domain briefing
func BriefingModelFromDomain(b *content.Briefing) *BriefingModel {
	model := &BriefingModel{
		Title:       b.Title,
		HeldAt:      b.HeldAt,
		Location:    b.Location,
		Description: b.Description,
	}
	model.FromDomainBaseEntity(b.BaseEntity)
	return model
}

// ReviewModel is the persistence model for admissions reviews
type ReviewModel struct {
	BaseModel
	StudentName string `gorm:"type:varchar(100)"`
	School      string `gorm:"type:varchar(100)"`
	Title       string `gorm:"type:varchar(200);not null"`
	Body        string `gorm:"type:text"`
}

// TableName specifies the table name
func (ReviewModel) TableName() string {
	return "reviews"
}

// ToDomain converts the persistence model to a domain review
func (m *ReviewModel) ToDomain() *content.Review {
	return &content.Review{
		BaseEntity:  m.BaseModel.ToDomain(),
		StudentName: m.StudentName,
		School:      m.School,
		Title:       m.Title,
		Body:        m.Body,
	}
}

// ReviewModelFromDomain creates a persistence model from a domain review
func ReviewModelFromDomain(r *content.Review) *ReviewModel {
	model := &ReviewModel{
		StudentName: r.StudentName,
		School:      r.School,
		Title:       r.Title,
		Body:        r.Body,
	}
	model.FromDomainBaseEntity(r.BaseEntity)
	return model
}

// SmsSubscriberModel is the persistence model for SMS subscribers
type SmsSubscriberModel struct {
	BaseModel
	Phone string `gorm:"type:varchar(20);uniqueIndex;not null"`
}

// TableName specifies the table name
func (SmsSubscriberModel) TableName() string {
	return "sms_subscribers"
}

// ToDomain converts the persistence model to a domain subscriber
func (m *SmsSubscriberModel) ToDomain() *content.SmsSubscriber {
	return &content.SmsSubscriber{
		BaseEntity: m.BaseModel.ToDomain(),
		Phone:      m.Phone,
	}
}

// SmsSubscriberModelFromDomain creates a persistence model from a domain subscriber
func SmsSubscriberModelFromDomain(s *content.SmsSubscriber) *SmsSubscriberModel {
	model := &SmsSubscriberModel{
		Phone: s.Phone,
	}
	model.FromDomainBaseEntity(s.BaseEntity)
	return model
}
