package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/catalog"
)

// Service manages the class timetable and teacher roster
type Service struct {
	timetables catalog.TimetableRepository
	teachers   catalog.TeacherRepository
	logger     *zap.Logger
}

// NewService creates a catalog service
func NewService(timetables catalog.TimetableRepository, teachers catalog.TeacherRepository, logger *zap.Logger) *Service {
	return &Service{
		timetables: timetables,
		teachers:   teachers,
		logger:     logger,
	}
}

// CreateTimetable adds a class to the timetable
func (s *Service) CreateTimetable(ctx context.Context, fields catalog.TimetableFields) (*catalog.Timetable, error) {
	t, err := catalog.NewTimetable(fields)
	if err != nil {
		return nil, err
	}

	if err := s.timetables.Create(ctx, t); err != nil {
		s.logger.Error("Failed to create timetable", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Timetable created",
		zap.String("timetable_id", t.ID.String()),
		zap.String("class_name", t.ClassName))
	return t, nil
}

// UpdateTimetable replaces a class's fields
func (s *Service) UpdateTimetable(ctx context.Context, id uuid.UUID, fields catalog.TimetableFields) (*catalog.Timetable, error) {
	t, err := s.timetables.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := t.UpdateFields(fields); err != nil {
		return nil, err
	}

	if err := s.timetables.Update(ctx, t); err != nil {
		s.logger.Error("Failed to update timetable", zap.Error(err))
		return nil, err
	}

	return t, nil
}

// DeleteTimetable removes a class and every reservation made against it.
// Both deletions happen in one transaction, so a failure leaves the
// reservations intact alongside the class.
func (s *Service) DeleteTimetable(ctx context.Context, id uuid.UUID) error {
	if err := s.timetables.DeleteWithReservations(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Timetable deleted with its reservations",
		zap.String("timetable_id", id.String()))
	return nil
}

// ListTimetables lists classes newest first, optionally filtered by category
func (s *Service) ListTimetables(ctx context.Context, category string) ([]*catalog.Timetable, error) {
	return s.timetables.FindAll(ctx, category)
}

// GetTimetable returns a single class
func (s *Service) GetTimetable(ctx context.Context, id uuid.UUID) (*catalog.Timetable, error) {
	return s.timetables.FindByID(ctx, id)
}

// CreateTeacher adds a teacher profile
func (s *Service) CreateTeacher(ctx context.Context, fields catalog.TeacherFields) (*catalog.Teacher, error) {
	t, err := catalog.NewTeacher(fields)
	if err != nil {
		return nil, err
	}

	if err := s.teachers.Create(ctx, t); err != nil {
		s.logger.Error("Failed to create teacher", zap.Error(err))
		return nil, err
	}

	return t, nil
}

// UpdateTeacher replaces a teacher profile's fields
func (s *Service) UpdateTeacher(ctx context.Context, id uuid.UUID, fields catalog.TeacherFields) (*catalog.Teacher, error) {
	t, err := s.teachers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := t.UpdateFields(fields); err != nil {
		return nil, err
	}

	if err := s.teachers.Update(ctx, t); err != nil {
		s.logger.Error("Failed to update teacher", zap.Error(err))
		return nil, err
	}

	return t, nil
}

// DeleteTeacher removes a teacher profile
func (s *Service) DeleteTeacher(ctx context.Context, id uuid.UUID) error {
	return s.teachers.Delete(ctx, id)
}

// ListTeachers lists teacher profiles by display order
func (s *Service) ListTeachers(ctx context.Context) ([]*catalog.Teacher, error) {
	return s.teachers.FindAll(ctx)
}
