package catalog

import "github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"

// Teacher is a public-facing instructor profile.
type Teacher struct {
	shared.BaseEntity
	Name         string
	Subjects     string
	PhotoURL     string
	Career       string
	DisplayOrder int
}

// TeacherFields carries the admin form input for create and update.
type TeacherFields struct {
	Name         string
	Subjects     string
	PhotoURL     string
	Career       string
	DisplayOrder int
}

// NewTeacher validates the form fields and returns a new teacher profile.
func NewTeacher(fields TeacherFields) (*Teacher, error) {
	if fields.Name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "선생님 이름을 입력해주세요.")
	}
	t := &Teacher{BaseEntity: shared.NewBaseEntity()}
	t.apply(fields)
	return t, nil
}

// UpdateFields replaces the editable fields after validation.
func (t *Teacher) UpdateFields(fields TeacherFields) error {
	if fields.Name == "" {
		return shared.NewDomainError("INVALID_INPUT", "선생님 이름을 입력해주세요.")
	}
	t.apply(fields)
	t.Touch()
	return nil
}

func (t *Teacher) apply(fields TeacherFields) {
	t.Name = fields.Name
	t.Subjects = fields.Subjects
	t.PhotoURL = fields.PhotoURL
	t.Career = fields.Career
	t.DisplayOrder = fields.DisplayOrder
}
