package member

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/member"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/infrastructure/session"
)

var (
	errDuplicateUsername  = shared.NewDomainError("DUPLICATE_USERNAME", "이미 사용 중인 아이디입니다.")
	errInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "아이디 또는 비밀번호가 올바르지 않습니다.")
)

// AuthService handles registration, login, and session lifecycle
type AuthService struct {
	members  member.Repository
	sessions *session.Manager
	logger   *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(members member.Repository, sessions *session.Manager, logger *zap.Logger) *AuthService {
	return &AuthService{
		members:  members,
		sessions: sessions,
		logger:   logger,
	}
}

// Register creates a member account and establishes a session for it.
// Username uniqueness is enforced by the database; a concurrent signup
// with the same username surfaces as a duplicate error here.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	m, err := member.NewMember(input.Username, input.Password, member.Profile{
		MemberType:   input.MemberType,
		StudentName:  input.StudentName,
		Gender:       input.Gender,
		Track:        input.Track,
		Grade:        input.Grade,
		School:       input.School,
		StudentPhone: input.StudentPhone,
		ParentPhone:  input.ParentPhone,
		Birthday:     input.Birthday,
		Subject:      input.Subject,
		Email:        input.Email,
	})
	if err != nil {
		return nil, err
	}

	if err := s.members.Create(ctx, m); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, errDuplicateUsername
		}
		s.logger.Error("Failed to create member", zap.Error(err))
		return nil, err
	}

	sess, err := s.sessions.Start(ctx, m.ID)
	if err != nil {
		s.logger.Error("Failed to start session after registration",
			zap.String("member_id", m.ID.String()),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Member registered",
		zap.String("member_id", m.ID.String()),
		zap.String("username", m.Username))

	return &AuthResult{Member: toMemberInfo(m), SessionID: sess.ID}, nil
}

// Login authenticates a member and establishes a session.
// Unknown usernames and wrong passwords produce the same error, so the
// response doesn't reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	m, err := s.members.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		s.logger.Error("Failed to look up member during login", zap.Error(err))
		return nil, err
	}

	if !m.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("username", input.Username))
		return nil, errInvalidCredentials
	}

	sess, err := s.sessions.Start(ctx, m.ID)
	if err != nil {
		s.logger.Error("Failed to start session", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Member logged in",
		zap.String("member_id", m.ID.String()),
		zap.String("username", m.Username))

	return &AuthResult{Member: toMemberInfo(m), SessionID: sess.ID}, nil
}

// Logout destroys the session. Logging out twice, or with a session
// that never existed, succeeds.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Destroy(ctx, sessionID)
}

// CurrentMember returns the member behind an authenticated session
func (s *AuthService) CurrentMember(ctx context.Context, memberID uuid.UUID) (*MemberInfo, error) {
	m, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	info := toMemberInfo(m)
	return &info, nil
}
