package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/booking"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/catalog"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/member"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/infrastructure/notify"
)

var errUnknownTimetable = shared.NewDomainError("INVALID_INPUT", "존재하지 않는 수업입니다.")

// Notifier receives reservation events for the tracking spreadsheet.
// Dispatch must never block the caller.
type Notifier interface {
	Dispatch(event notify.Event)
}

// Service handles class reservations
type Service struct {
	reservations booking.Repository
	timetables   catalog.TimetableRepository
	members      member.Repository
	notifier     Notifier
	logger       *zap.Logger
}

// NewService creates a booking service
func NewService(
	reservations booking.Repository,
	timetables catalog.TimetableRepository,
	members member.Repository,
	notifier Notifier,
	logger *zap.Logger,
) *Service {
	return &Service{
		reservations: reservations,
		timetables:   timetables,
		members:      members,
		notifier:     notifier,
		logger:       logger,
	}
}

// ReservationInfo describes a created reservation
type ReservationInfo struct {
	ID          uuid.UUID `json:"id"`
	TimetableID uuid.UUID `json:"timetableId"`
	ClassName   string    `json:"className"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Reserve books a class for the member. A pre-check catches repeat
// clicks early; the (member, timetable) unique constraint decides
// races, so whoever inserts second gets the duplicate error regardless
// of interleaving.
func (s *Service) Reserve(ctx context.Context, memberID, timetableID uuid.UUID) (*ReservationInfo, error) {
	r, err := booking.NewReservation(memberID, timetableID)
	if err != nil {
		return nil, err
	}

	timetable, err := s.timetables.FindByID(ctx, timetableID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, errUnknownTimetable
		}
		s.logger.Error("Failed to look up timetable", zap.Error(err))
		return nil, err
	}

	exists, err := s.reservations.Exists(ctx, memberID, timetableID)
	if err != nil {
		// Pre-check only; the insert below still settles it
		s.logger.Warn("Reservation duplicate pre-check failed", zap.Error(err))
	} else if exists {
		return nil, booking.ErrAlreadyReserved
	}

	if err := s.reservations.Create(ctx, r); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, booking.ErrAlreadyReserved
		}
		s.logger.Error("Failed to create reservation", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Class reserved",
		zap.String("reservation_id", r.ID.String()),
		zap.String("member_id", memberID.String()),
		zap.String("class_name", timetable.ClassName))

	s.notifyReserved(ctx, r, timetable)

	return &ReservationInfo{
		ID:          r.ID,
		TimetableID: timetableID,
		ClassName:   timetable.ClassName,
		CreatedAt:   r.CreatedAt,
	}, nil
}

// ListAll returns every reservation joined with member and class details,
// newest first. Admin only.
func (s *Service) ListAll(ctx context.Context) ([]booking.Row, error) {
	return s.reservations.FindAllRows(ctx)
}

// Delete removes a reservation. Deleting one that is already gone succeeds.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.reservations.Delete(ctx, id)
}

// notifyReserved queues the spreadsheet row. The reservation is already
// committed; a lost notification costs a spreadsheet row, not a booking.
func (s *Service) notifyReserved(ctx context.Context, r *booking.Reservation, timetable *catalog.Timetable) {
	m, err := s.members.FindByID(ctx, r.MemberID)
	if err != nil {
		s.logger.Error("Failed to load member for reservation notification",
			zap.String("member_id", r.MemberID.String()),
			zap.Error(err))
		return
	}

	s.notifier.Dispatch(notify.Event{
		Kind:       "reservation",
		OccurredAt: r.CreatedAt,
		Values: []string{
			m.StudentName,
			m.Username,
			m.StudentPhone,
			m.ParentPhone,
			timetable.ClassName,
			timetable.ClassTime,
			timetable.ClassDate,
		},
	})
}
