package catalog

import (
	"context"

	"github.com/google/uuid"
)

// TimetableRepository defines the interface for timetable persistence
type TimetableRepository interface {
	Create(ctx context.Context, t *Timetable) error
	Update(ctx context.Context, t *Timetable) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteWithReservations removes the timetable and every reservation
	// made against it in a single transaction
	DeleteWithReservations(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*Timetable, error)

	// FindAll lists timetables newest first, optionally filtered by category
	FindAll(ctx context.Context, category string) ([]*Timetable, error)
}

// TeacherRepository defines the interface for teacher profile persistence
type TeacherRepository interface {
	Create(ctx context.Context, t *Teacher) error
	Update(ctx context.Context, t *Teacher) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Teacher, error)

	// FindAll lists teachers by display order
	FindAll(ctx context.Context) ([]*Teacher, error)
}
