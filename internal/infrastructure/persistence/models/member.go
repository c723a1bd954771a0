package models

import (
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/member"
)

// MemberModel is the persistence model for members
type MemberModel struct {
	BaseModel
	Username      string `gorm:"type:varchar(15);uniqueIndex;not null"`
	Password      string `gorm:"type:varchar(255);not null"`
	Role          string `gorm:"type:varchar(20);not null;default:'member'"`
	MemberType    string `gorm:"type:varchar(20);not null;default:'student'"`
	StudentName   string `gorm:"type:varchar(100);not null"`
	Gender        string `gorm:"type:varchar(10)"`
	Track         string `gorm:"type:varchar(50)"`
	Grade         string `gorm:"type:varchar(50)"`
	School        string `gorm:"type:varchar(100)"`
	StudentPhone  string `gorm:"type:varchar(20);index"`
	ParentPhone   string `gorm:"type:varchar(20)"`
	Birthday      string `gorm:"type:varchar(20)"`
	Subject       string `gorm:"type:varchar(100)"`
	Email         string `gorm:"type:varchar(255)"`
	AcademyStatus string `gorm:"type:varchar(50)"`
}

// TableName specifies the table name
func (MemberModel) TableName() string {
	return "members"
}

// ToDomain converts the persistence model to a domain member
func (m *MemberModel) ToDomain() *member.Member {
	return &member.Member{
		BaseEntity:    m.BaseModel.ToDomain(),
		Username:      m.Username,
		PasswordHash:  m.Password,
		Role:          member.Role(m.Role),
		MemberType:    m.MemberType,
		StudentName:   m.StudentName,
		Gender:        m.Gender,
		Track:         m.Track,
		Grade:         m.Grade,
		School:        m.School,
		StudentPhone:  m.StudentPhone,
		ParentPhone:   m.ParentPhone,
		Birthday:      m.Birthday,
		Subject:       m.Subject,
		Email:         m.Email,
		AcademyStatus: m.AcademyStatus,
	}
}

// MemberModelFromDomain creates a persistence model from a domain member
func MemberModelFromDomain(m *member.Member) *MemberModel {
	model := &MemberModel{
		Username:      m.Username,
		Password:      m.PasswordHash,
		Role:          string(m.Role),
		MemberType:    m.MemberType,
		StudentName:   m.StudentName,
		Gender:        m.Gender,
		Track:         m.Track,
		Grade:         m.Grade,
		School:        m.School,
		StudentPhone:  m.StudentPhone,
		ParentPhone:   m.ParentPhone,
		Birthday:      m.Birthday,
		Subject:       m.Subject,
		Email:         m.Email,
		AcademyStatus: m.AcademyStatus,
	}
	model.FromDomainBaseEntity(m.BaseEntity)
	return model
}
