// Package member contains the member aggregate and its registration rules.
package member

import (
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
)

// Role determines back-office access.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Member types mirror the enrollment form's classification.
const (
	TypeStudent = "student"
	TypeParent  = "parent"
)

const bcryptCost = 12

var usernamePattern = regexp.MustCompile(`^[a-z0-9]{6,15}$`)

// Member is a registered academy user capable of logging in and reserving
// classes.
type Member struct {
	shared.BaseEntity
	Username      string
	PasswordHash  string
	Role          Role
	MemberType    string
	StudentName   string
	Gender        string
	Track         string
	Grade         string
	School        string
	StudentPhone  string
	ParentPhone   string
	Birthday      string
	Subject       string
	Email         string
	AcademyStatus string
}

// Profile carries the registration form fields.
type Profile struct {
	MemberType    string
	StudentName   string
	Gender        string
	Track         string
	Grade         string
	School        string
	StudentPhone  string
	ParentPhone   string
	Birthday      string
	Subject       string
	Email         string
	AcademyStatus string
}

// NewMember validates the registration input and returns a member with the
// password already hashed. Validation failures carry user-facing Korean
// messages.
func NewMember(username, password string, profile Profile) (*Member, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if err := validateProfile(&profile); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	return &Member{
		BaseEntity:    shared.NewBaseEntity(),
		Username:      username,
		PasswordHash:  string(hash),
		Role:          RoleMember,
		MemberType:    profile.MemberType,
		StudentName:   profile.StudentName,
		Gender:        profile.Gender,
		Track:         profile.Track,
		Grade:         profile.Grade,
		School:        profile.School,
		StudentPhone:  profile.StudentPhone,
		ParentPhone:   profile.ParentPhone,
		Birthday:      profile.Birthday,
		Subject:       profile.Subject,
		Email:         profile.Email,
		AcademyStatus: profile.AcademyStatus,
	}, nil
}

// VerifyPassword checks a plaintext password against the stored hash.
func (m *Member) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(password)) == nil
}

// IsAdmin reports whether the member may access the back office.
func (m *Member) IsAdmin() bool {
	return m.Role == RoleAdmin
}

func validateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return shared.NewDomainError("INVALID_INPUT", "아이디는 6~15자의 영문 소문자와 숫자만 사용할 수 있습니다.")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return shared.NewDomainError("INVALID_INPUT", "비밀번호는 6자 이상 입력해주세요.")
	}
	return nil
}

func validateProfile(p *Profile) error {
	if p.MemberType != TypeStudent && p.MemberType != TypeParent {
		p.MemberType = TypeStudent
	}
	switch {
	case p.StudentName == "":
		return shared.NewDomainError("INVALID_INPUT", "이름을 입력해주세요.")
	case p.Gender == "":
		return shared.NewDomainError("INVALID_INPUT", "성별을 선택해주세요.")
	case p.Track == "":
		return shared.NewDomainError("INVALID_INPUT", "계열을 선택해주세요.")
	case p.Grade == "":
		return shared.NewDomainError("INVALID_INPUT", "학년을 선택해주세요.")
	case p.School == "":
		return shared.NewDomainError("INVALID_INPUT", "학교를 입력해주세요.")
	}

	p.StudentPhone = shared.NormalizePhone(p.StudentPhone)
	if len(p.StudentPhone) < 10 {
		return shared.NewDomainError("INVALID_INPUT", "학생 휴대폰 번호를 정확히 입력해주세요.")
	}
	p.ParentPhone = shared.NormalizePhone(p.ParentPhone)
	if len(p.ParentPhone) < 10 {
		return shared.NewDomainError("INVALID_INPUT", "학부모 휴대폰 번호를 정확히 입력해주세요.")
	}
	return nil
}
