package models

import (
	"github.com/google/uuid"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/catalog"
)

// TimetableModel is the persistence model for class timetables
type TimetableModel struct {
	BaseModel
	TeacherID       *uuid.UUID `gorm:"type:uuid;index"`
	TeacherName     string     `gorm:"type:varchar(100)"`
	Category        string     `gorm:"type:varchar(50);not null;index"`
	TargetSchool    string     `gorm:"type:varchar(100)"`
	ClassName       string     `gorm:"type:varchar(200);not null"`
	ClassTime       string     `gorm:"type:varchar(100)"`
	ClassDate       string     `gorm:"type:varchar(50)"`
	TeacherImageURL string     `gorm:"type:varchar(500)"`
	Description     string     `gorm:"type:text"`
}

// TableName specifies the table name
func (TimetableModel) TableName() string {
	return "timetables"
}

// ToDomain converts the persistence model to a domain timetable
func (m *TimetableModel) ToDomain() *catalog.Timetable {
	return &catalog.Timetable{
		BaseEntity:      m.BaseModel.ToDomain(),
		TeacherID:       m.TeacherID,
		TeacherName:     m.TeacherName,
		Category:        m.Category,
		TargetSchool:    m.TargetSchool,
		ClassName:       m.ClassName,
		ClassTime:       m.ClassTime,
		ClassDate:       m.ClassDate,
		TeacherImageURL: m.TeacherImageURL,
		Description:     m.Description,
	}
}

// TimetableModelFromDomain creates a persistence model from a domain timetable
func TimetableModelFromDomain(t *catalog.Timetable) *TimetableModel {
	model := &TimetableModel{
		TeacherID:       t.TeacherID,
		TeacherName:     t.TeacherName,
		Category:        t.Category,
		TargetSchool:    t.TargetSchool,
		ClassName:       t.ClassName,
		ClassTime:       t.ClassTime,
		ClassDate:       t.ClassDate,
		TeacherImageURL: t.TeacherImageURL,
		Description:     t.Description,
	}
	model.FromDomainBaseEntity(t.BaseEntity)
	return model
}

// TeacherModel is the persistence model for teacher profiles
type TeacherModel struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null"`
	Subjects     string `gorm:"type:varchar(200)"`
	PhotoURL     string `gorm:"type:varchar(500)"`
	Career       string `gorm:"type:text"`
	DisplayOrder int    `gorm:"not null;default:0"`
}

// TableName specifies the table name
func (TeacherModel) TableName() string {
	return "teachers"
}

// ToDomain converts the persistence model to a domain teacher
func (m *TeacherModel) ToDomain() *catalog.Teacher {
	return &catalog.Teacher{
		BaseEntity:   m.BaseModel.ToDomain(),
		Name:         m.Name,
		Subjects:     m.Subjects,
		PhotoURL:     m.PhotoURL,
		Career:       m.Career,
		DisplayOrder: m.DisplayOrder,
	}
}

// TeacherModelFromDomain creates a persistence model from a domain teacher
func TeacherModelFromDomain(t *catalog.Teacher) *TeacherModel {
	model := &TeacherModel{
		Name:         t.Name,
		Subjects:     t.Subjects,
		PhotoURL:     t.PhotoURL,
		Career:       t.Career,
		DisplayOrder: t.DisplayOrder,
	}
	model.FromDomainBaseEntity(t.BaseEntity)
	return model
}
