// Package booking records a member's intent to attend a class exactly once.
package booking

import (
	"github.com/google/uuid"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
)

// Reservation links one member to one timetable. The (MemberID, TimetableID)
// pair is unique, backed by a database unique index.
type Reservation struct {
	shared.BaseEntity
	MemberID    uuid.UUID
	TimetableID uuid.UUID
}

// ErrAlreadyReserved is returned when a member reserves the same class twice.
var ErrAlreadyReserved = shared.NewDomainError("ALREADY_RESERVED", "이미 예약하신 수업입니다.")

// NewReservation creates a reservation for the given member and timetable.
func NewReservation(memberID, timetableID uuid.UUID) (*Reservation, error) {
	if memberID == uuid.Nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "로그인이 필요한 서비스입니다.")
	}
	if timetableID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "예약할 수업을 선택해주세요.")
	}
	return &Reservation{
		BaseEntity:  shared.NewBaseEntity(),
		MemberID:    memberID,
		TimetableID: timetableID,
	}, nil
}
