package models

import (
	"github.com/google/uuid"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/booking"
)

// ReservationModel is the persistence model for reservations. The composite
// unique index closes the check-then-insert race on duplicate requests.
type ReservationModel struct {
	BaseModel
	MemberID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reservations_member_timetable"`
	TimetableID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reservations_member_timetable"`
}

// TableName specifies the table name
func (ReservationModel) TableName() string {
	return "reservations"
}

// ToDomain converts the persistence model to a domain reservation
func (m *ReservationModel) ToDomain() *booking.Reservation {
	return &booking.Reservation{
		BaseEntity:  m.BaseModel.ToDomain(),
		MemberID:    m.MemberID,
		TimetableID: m.TimetableID,
	}
}

// ReservationModelFromDomain creates a persistence model from a domain reservation
func ReservationModelFromDomain(r *booking.Reservation) *ReservationModel {
	model := &ReservationModel{
		MemberID:    r.MemberID,
		TimetableID: r.TimetableID,
	}
	model.FromDomainBaseEntity(r.BaseEntity)
	return model
}
