// Package catalog contains the publicly browsable offerings: class timetables
// and teacher profiles.
package catalog

import (
	"github.com/google/uuid"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
)

// Timetable is a schedulable course slot open for reservation.
type Timetable struct {
	shared.BaseEntity
	TeacherID       *uuid.UUID
	TeacherName     string
	Category        string
	TargetSchool    string
	ClassName       string
	ClassTime       string
	ClassDate       string
	TeacherImageURL string
	Description     string
}

// TimetableFields carries the admin form input for create and update.
type TimetableFields struct {
	TeacherID       *uuid.UUID
	TeacherName     string
	Category        string
	TargetSchool    string
	ClassName       string
	ClassTime       string
	ClassDate       string
	TeacherImageURL string
	Description     string
}

// NewTimetable validates the form fields and returns a new timetable.
func NewTimetable(fields TimetableFields) (*Timetable, error) {
	if err := validateTimetableFields(fields); err != nil {
		return nil, err
	}
	t := &Timetable{BaseEntity: shared.NewBaseEntity()}
	t.apply(fields)
	return t, nil
}

// UpdateFields replaces the editable fields after validation.
func (t *Timetable) UpdateFields(fields TimetableFields) error {
	if err := validateTimetableFields(fields); err != nil {
		return err
	}
	t.apply(fields)
	t.Touch()
	return nil
}

func (t *Timetable) apply(fields TimetableFields) {
	t.TeacherID = fields.TeacherID
	t.TeacherName = fields.TeacherName
	t.Category = fields.Category
	t.TargetSchool = fields.TargetSchool
	t.ClassName = fields.ClassName
	t.ClassTime = fields.ClassTime
	t.ClassDate = fields.ClassDate
	t.TeacherImageURL = fields.TeacherImageURL
	t.Description = fields.Description
}

func validateTimetableFields(fields TimetableFields) error {
	if fields.ClassName == "" {
		return shared.NewDomainError("INVALID_INPUT", "수업명을 입력해주세요.")
	}
	if fields.Category == "" {
		return shared.NewDomainError("INVALID_INPUT", "분류를 선택해주세요.")
	}
	return nil
}
