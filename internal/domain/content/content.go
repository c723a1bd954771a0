// Package content holds the admin-managed marketing content: banners, popups,
// briefing sessions, admissions reviews, and the SMS subscriber list.
package content

import (
	"time"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
)

// Banner is a main-page carousel entry.
type Banner struct {
	shared.BaseEntity
	Title    string
	ImageURL string
	LinkURL  string
	Position int
}

// NewBanner validates and creates a banner.
func NewBanner(title, imageURL, linkURL string, position int) (*Banner, error) {
	if imageURL == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "배너 이미지를 등록해주세요.")
	}
	return &Banner{
		BaseEntity: shared.NewBaseEntity(),
		Title:      title,
		ImageURL:   imageURL,
		LinkURL:    linkURL,
		Position:   position,
	}, nil
}

// Popup is a time-boxed announcement overlay.
type Popup struct {
	shared.BaseEntity
	Title    string
	ImageURL string
	LinkURL  string
	StartsAt time.Time
	EndsAt   time.Time
}

// NewPopup validates and creates a popup.
func NewPopup(title, imageURL, linkURL string, startsAt, endsAt time.Time) (*Popup, error) {
	if imageURL == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "팝업 이미지를 등록해주세요.")
	}
	if !endsAt.After(startsAt) {
		return nil, shared.NewDomainError("INVALID_INPUT", "노출 종료일은 시작일 이후여야 합니다.")
	}
	return &Popup{
		BaseEntity: shared.NewBaseEntity(),
		Title:      title,
		ImageURL:   imageURL,
		LinkURL:    linkURL,
		StartsAt:   startsAt,
		EndsAt:     endsAt,
	}, nil
}

// IsActive reports whether the popup should be shown at the given time.
func (p *Popup) IsActive(now time.Time) bool {
	return !now.Before(p.StartsAt) && now.Before(p.EndsAt)
}

// Briefing is an admissions briefing session announcement.
type Briefing struct {
	shared.BaseEntity
	Title       string
	HeldAt      string
	Location    string
	Description string
}

// NewBriefing validates and creates a briefing announcement.
func NewBriefing(title, heldAt, location, description string) (*Briefing, error) {
	if title == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "설명회 제목을 입력해주세요.")
	}
	return &Briefing{
		BaseEntity:  shared.NewBaseEntity(),
		Title:       title,
		HeldAt:      heldAt,
		Location:    location,
		Description: description,
	}, nil
}

// Review is an admissions result or testimonial post.
type Review struct {
	shared.BaseEntity
	StudentName string
	School      string
	Title       string
	Body        string
}

// NewReview validates and creates a review post.
func NewReview(studentName, school, title, body string) (*Review, error) {
	if title == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "후기 제목을 입력해주세요.")
	}
	return &Review{
		BaseEntity:  shared.NewBaseEntity(),
		StudentName: studentName,
		School:      school,
		Title:       title,
		Body:        body,
	}, nil
}

// SmsSubscriber is a phone number opted in to academy announcements.
type SmsSubscriber struct {
	shared.BaseEntity
	Phone string
}

// NewSmsSubscriber normalizes and validates the phone number.
func NewSmsSubscriber(phone string) (*SmsSubscriber, error) {
	normalized := shared.NormalizePhone(phone)
	if len(normalized) < 10 {
		return nil, shared.NewDomainError("INVALID_INPUT", "휴대폰 번호를 정확히 입력해주세요.")
	}
	return &SmsSubscriber{
		BaseEntity: shared.NewBaseEntity(),
		Phone:      normalized,
	}, nil
}
