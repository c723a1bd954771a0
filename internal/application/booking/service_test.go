package booking

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/booking"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/catalog"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/member"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/infrastructure/notify"
)

// MockReservationRepository is a mock implementation of booking.Repository
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, r *booking.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReservationRepository) Exists(ctx context.Context, memberID, timetableID uuid.UUID) (bool, error) {
	args := m.Called(ctx, memberID, timetableID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationRepository) FindAllRows(ctx context.Context) ([]booking.Row, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.Row), args.Error(1)
}

func (m *MockReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReservationRepository) DeleteByTimetable(ctx context.Context, timetableID uuid.UUID) error {
	args := m.Called(ctx, timetableID)
	return args.Error(0)
}

// MockTimetableRepository is a mock implementation of catalog.TimetableRepository
type MockTimetableRepository struct {
	mock.Mock
}

func (m *MockTimetableRepository) Create(ctx context.Context, t *catalog.Timetable) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTimetableRepository) Update(ctx context.Context, t *catalog.Timetable) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTimetableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTimetableRepository) DeleteWithReservations(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTimetableRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Timetable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Timetable), args.Error(1)
}

func (m *MockTimetableRepository) FindAll(ctx context.Context, category string) ([]*catalog.Timetable, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]*catalog.Timetable), args.Error(1)
}

// MockMemberRepository is a mock implementation of member.Repository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Create(ctx context.Context, mem *member.Member) error {
	args := m.Called(ctx, mem)
	return args.Error(0)
}

func (m *MockMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*member.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByUsername(ctx context.Context, username string) (*member.Member, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

// recordingNotifier captures dispatched events
type recordingNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (n *recordingNotifier) Dispatch(event notify.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) recorded() []notify.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.Event(nil), n.events...)
}

func testMember(t *testing.T) *member.Member {
	t.Helper()
	m, err := member.NewMember("minjun01", "secret1", member.Profile{
		MemberType:   member.TypeStudent,
		StudentName:  "김민준",
		Gender:       "male",
		Track:        "natural",
		Grade:        "high2",
		School:       "영통고등학교",
		StudentPhone: "01012345678",
		ParentPhone:  "01087654321",
	})
	require.NoError(t, err)
	return m
}

func testTimetable(t *testing.T) *catalog.Timetable {
	t.Helper()
	tt, err := catalog.NewTimetable(catalog.TimetableFields{
		Category:  "high",
		ClassName: "고2 수학 정규반",
		ClassTime: "월/수/금 19:00~22:00",
		ClassDate: "2026-03-02",
	})
	require.NoError(t, err)
	return tt
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	return de.Code
}

func TestService_Reserve(t *testing.T) {
	reservations := new(MockReservationRepository)
	timetables := new(MockTimetableRepository)
	members := new(MockMemberRepository)
	notifier := &recordingNotifier{}
	svc := NewService(reservations, timetables, members, notifier, zap.NewNop())

	m := testMember(t)
	tt := testTimetable(t)

	timetables.On("FindByID", mock.Anything, tt.ID).Return(tt, nil)
	reservations.On("Exists", mock.Anything, m.ID, tt.ID).Return(false, nil)
	reservations.On("Create", mock.Anything, mock.AnythingOfType("*booking.Reservation")).Return(nil)
	members.On("FindByID", mock.Anything, m.ID).Return(m, nil)

	info, err := svc.Reserve(context.Background(), m.ID, tt.ID)
	require.NoError(t, err)
	assert.Equal(t, "고2 수학 정규반", info.ClassName)

	events := notifier.recorded()
	require.Len(t, events, 1)
	assert.Equal(t, "reservation", events[0].Kind)
	assert.Contains(t, events[0].Values, "김민준")
	assert.Contains(t, events[0].Values, "고2 수학 정규반")
}

func TestService_Reserve_Unauthenticated(t *testing.T) {
	svc := NewService(new(MockReservationRepository), new(MockTimetableRepository), new(MockMemberRepository), &recordingNotifier{}, zap.NewNop())

	_, err := svc.Reserve(context.Background(), uuid.Nil, uuid.New())
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", domainCode(t, err))
}

func TestService_Reserve_UnknownTimetable(t *testing.T) {
	reservations := new(MockReservationRepository)
	timetables := new(MockTimetableRepository)
	svc := NewService(reservations, timetables, new(MockMemberRepository), &recordingNotifier{}, zap.NewNop())

	timetableID := uuid.New()
	timetables.On("FindByID", mock.Anything, timetableID).Return(nil, shared.ErrNotFound)

	_, err := svc.Reserve(context.Background(), uuid.New(), timetableID)
	require.Error(t, err)
	assert.Equal(t, "INVALID_INPUT", domainCode(t, err))
	reservations.AssertNotCalled(t, "Create")
}

func TestService_Reserve_AlreadyReserved(t *testing.T) {
	reservations := new(MockReservationRepository)
	timetables := new(MockTimetableRepository)
	notifier := &recordingNotifier{}
	svc := NewService(reservations, timetables, new(MockMemberRepository), notifier, zap.NewNop())

	tt := testTimetable(t)
	memberID := uuid.New()
	timetables.On("FindByID", mock.Anything, tt.ID).Return(tt, nil)
	reservations.On("Exists", mock.Anything, memberID, tt.ID).Return(true, nil)

	_, err := svc.Reserve(context.Background(), memberID, tt.ID)
	require.Error(t, err)
	assert.Equal(t, "ALREADY_RESERVED", domainCode(t, err))
	assert.Equal(t, "이미 예약하신 수업입니다.", err.Error())
	reservations.AssertNotCalled(t, "Create")
	assert.Empty(t, notifier.recorded())
}

func TestService_Reserve_DuplicateRace(t *testing.T) {
	reservations := new(MockReservationRepository)
	timetables := new(MockTimetableRepository)
	notifier := &recordingNotifier{}
	svc := NewService(reservations, timetables, new(MockMemberRepository), notifier, zap.NewNop())

	tt := testTimetable(t)
	memberID := uuid.New()
	timetables.On("FindByID", mock.Anything, tt.ID).Return(tt, nil)
	// Pre-check misses the concurrent insert; the unique index catches it
	reservations.On("Exists", mock.Anything, memberID, tt.ID).Return(false, nil)
	reservations.On("Create", mock.Anything, mock.Anything).Return(shared.ErrAlreadyExists)

	_, err := svc.Reserve(context.Background(), memberID, tt.ID)
	require.Error(t, err)
	assert.Equal(t, "ALREADY_RESERVED", domainCode(t, err))
	assert.Empty(t, notifier.recorded())
}

func TestService_Reserve_PreCheckFailureFallsThrough(t *testing.T) {
	reservations := new(MockReservationRepository)
	timetables := new(MockTimetableRepository)
	members := new(MockMemberRepository)
	svc := NewService(reservations, timetables, members, &recordingNotifier{}, zap.NewNop())

	m := testMember(t)
	tt := testTimetable(t)
	timetables.On("FindByID", mock.Anything, tt.ID).Return(tt, nil)
	reservations.On("Exists", mock.Anything, m.ID, tt.ID).Return(false, assert.AnError)
	reservations.On("Create", mock.Anything, mock.Anything).Return(nil)
	members.On("FindByID", mock.Anything, m.ID).Return(m, nil)

	info, err := svc.Reserve(context.Background(), m.ID, tt.ID)
	require.NoError(t, err)
	assert.NotNil(t, info)
}

func TestService_Reserve_NotificationFailureDoesNotFail(t *testing.T) {
	reservations := new(MockReservationRepository)
	timetables := new(MockTimetableRepository)
	members := new(MockMemberRepository)
	svc := NewService(reservations, timetables, members, &recordingNotifier{}, zap.NewNop())

	tt := testTimetable(t)
	memberID := uuid.New()
	timetables.On("FindByID", mock.Anything, tt.ID).Return(tt, nil)
	reservations.On("Exists", mock.Anything, memberID, tt.ID).Return(false, nil)
	reservations.On("Create", mock.Anything, mock.Anything).Return(nil)
	// Member lookup for the notification fails; the reservation stands
	members.On("FindByID", mock.Anything, memberID).Return(nil, assert.AnError)

	info, err := svc.Reserve(context.Background(), memberID, tt.ID)
	require.NoError(t, err)
	assert.NotNil(t, info)
}

func TestService_ListAll(t *testing.T) {
	reservations := new(MockReservationRepository)
	svc := NewService(reservations, new(MockTimetableRepository), new(MockMemberRepository), &recordingNotifier{}, zap.NewNop())

	rows := []booking.Row{
		{ID: uuid.New(), Username: "minjun01", ClassName: "고2 수학 정규반"},
	}
	reservations.On("FindAllRows", mock.Anything).Return(rows, nil)

	got, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestService_Delete(t *testing.T) {
	reservations := new(MockReservationRepository)
	svc := NewService(reservations, new(MockTimetableRepository), new(MockMemberRepository), &recordingNotifier{}, zap.NewNop())

	id := uuid.New()
	reservations.On("Delete", mock.Anything, id).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), id))
	reservations.AssertExpectations(t)
}
