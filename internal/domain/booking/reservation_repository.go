package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Row is a reservation joined with member and timetable display fields, the
// shape the back office lists.
type Row struct {
	ID           uuid.UUID
	MemberID     uuid.UUID
	TimetableID  uuid.UUID
	Username     string
	StudentName  string
	StudentPhone string
	ParentPhone  string
	ClassName    string
	ClassTime    string
	ClassDate    string
	CreatedAt    time.Time
}

// Repository defines the interface for reservation persistence
type Repository interface {
	// Create inserts the reservation. A duplicate (member, timetable) pair
	// returns shared.ErrAlreadyExists, driven by the unique index rather
	// than a prior read.
	Create(ctx context.Context, r *Reservation) error

	// Exists reports whether the member already reserved the timetable
	Exists(ctx context.Context, memberID, timetableID uuid.UUID) (bool, error)

	// FindAllRows returns all reservations joined with member and timetable
	// fields, newest first.
	FindAllRows(ctx context.Context) ([]Row, error)

	// Delete removes a reservation by ID. Missing IDs are not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByTimetable removes every reservation referencing the timetable
	DeleteByTimetable(ctx context.Context, timetableID uuid.UUID) error
}
