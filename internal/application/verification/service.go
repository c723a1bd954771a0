package verification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/verification"
	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/infrastructure/sms"
)

var errInvalidOrExpiredCode = shared.NewDomainError("INVALID_OR_EXPIRED_CODE", "인증번호가 올바르지 않거나 만료되었습니다.")

// Service issues and redeems phone verification codes
type Service struct {
	verifications verification.Repository
	sender        sms.Sender
	logger        *zap.Logger
}

// NewService creates a verification service
func NewService(verifications verification.Repository, sender sms.Sender, logger *zap.Logger) *Service {
	return &Service{
		verifications: verifications,
		sender:        sender,
		logger:        logger,
	}
}

// RequestCode issues a fresh code for the phone, retiring any code issued
// before it. Delivery is best-effort: a failed send is logged, and the
// member can simply request another code.
func (s *Service) RequestCode(ctx context.Context, phone string) error {
	v, err := verification.NewPhoneVerification(phone)
	if err != nil {
		return err
	}

	err = s.verifications.CreateSuperseding(ctx, v)
	if errors.Is(err, shared.ErrAlreadyExists) {
		// A concurrent request for the same phone won the insert race.
		// Retire its record too and try once more.
		v, err = verification.NewPhoneVerification(phone)
		if err != nil {
			return err
		}
		err = s.verifications.CreateSuperseding(ctx, v)
	}
	if err != nil {
		s.logger.Error("Failed to store verification code", zap.Error(err))
		return err
	}

	s.logger.Info("Verification code issued",
		zap.String("phone", v.Phone),
		zap.String("code", v.Code),
		zap.Time("expires_at", v.ExpiresAt))

	message := fmt.Sprintf("[수학의문] 인증번호 [%s]를 입력해주세요.", v.Code)
	if err := s.sender.Send(ctx, v.Phone, message); err != nil {
		s.logger.Error("Failed to send verification sms",
			zap.String("phone", v.Phone),
			zap.Error(err))
	}

	return nil
}

// VerifyCode redeems a code. Wrong codes, expired codes, and already
// redeemed codes are indistinguishable to the caller.
func (s *Service) VerifyCode(ctx context.Context, phone, code string) error {
	normalized := shared.NormalizePhone(phone)

	v, err := s.verifications.FindActive(ctx, normalized, code, time.Now())
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return errInvalidOrExpiredCode
		}
		s.logger.Error("Failed to look up verification code", zap.Error(err))
		return err
	}

	v.MarkVerified()
	if err := s.verifications.Update(ctx, v); err != nil {
		s.logger.Error("Failed to mark code verified", zap.Error(err))
		return err
	}

	s.logger.Info("Phone verified", zap.String("phone", normalized))
	return nil
}
