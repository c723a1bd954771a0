package member

import (
	"time"

	"github.com/google/uuid"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/member"
)

// RegisterInput contains the fields of a signup request
type RegisterInput struct {
	Username     string
	Password     string
	MemberType   string
	StudentName  string
	Gender       string
	Track        string
	Grade        string
	School       string
	StudentPhone string
	ParentPhone  string
	Birthday     string
	Subject      string
	Email        string
}

// LoginInput contains login credentials
type LoginInput struct {
	Username string
	Password string
}

// MemberInfo is the member representation returned to clients.
// The password hash never leaves the service.
type MemberInfo struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Role          string    `json:"role"`
	MemberType    string    `json:"memberType"`
	StudentName   string    `json:"studentName"`
	Gender        string    `json:"gender"`
	Track         string    `json:"track"`
	Grade         string    `json:"grade"`
	School        string    `json:"school"`
	StudentPhone  string    `json:"studentPhone"`
	ParentPhone   string    `json:"parentPhone"`
	Birthday      string    `json:"birthday,omitempty"`
	Subject       string    `json:"subject,omitempty"`
	Email         string    `json:"email,omitempty"`
	AcademyStatus string    `json:"academyStatus,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AuthResult is returned from operations that establish a session
type AuthResult struct {
	Member    MemberInfo
	SessionID string
}

func toMemberInfo(m *member.Member) MemberInfo {
	return MemberInfo{
		ID:            m.ID,
		Username:      m.Username,
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
		CreatedAt:     m.CreatedAt,
	}
}
