// Package verification contains the one-time phone verification code model.
package verification

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
)

// CodeTTL is how long an issued code stays valid.
const CodeTTL = 3 * time.Minute

const minPhoneDigits = 10

// PhoneVerification is a short-lived one-time code bound to a phone number.
// Verified doubles as a retirement flag: superseding a code marks the older
// record verified so at most one active record exists per phone.
type PhoneVerification struct {
	shared.BaseEntity
	Phone     string
	Code      string
	ExpiresAt time.Time
	Verified  bool
}

// NewPhoneVerification validates the phone number and issues a fresh
// six-digit code expiring after CodeTTL.
func NewPhoneVerification(phone string) (*PhoneVerification, error) {
	normalized := shared.NormalizePhone(phone)
	if len(normalized) < minPhoneDigits {
		return nil, shared.NewDomainError("INVALID_INPUT", "휴대폰 번호를 정확히 입력해주세요.")
	}

	code, err := generateCode()
	if err != nil {
		return nil, err
	}

	return &PhoneVerification{
		BaseEntity: shared.NewBaseEntity(),
		Phone:      normalized,
		Code:       code,
		ExpiresAt:  time.Now().Add(CodeTTL),
		Verified:   false,
	}, nil
}

// IsActive reports whether the code can still be redeemed.
func (v *PhoneVerification) IsActive(now time.Time) bool {
	return !v.Verified && v.ExpiresAt.After(now)
}

// MarkVerified consumes the code.
func (v *PhoneVerification) MarkVerified() {
	v.Verified = true
	v.Touch()
}

// generateCode draws uniformly from the full 000000-999999 range so leading
// zeros are as likely as any other digit.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
