package verification

import (
	"context"
	"time"
)

// Repository defines the interface for phone verification persistence
type Repository interface {
	// CreateSuperseding retires any active record for the same phone and
	// inserts the new one in a single transaction.
	CreateSuperseding(ctx context.Context, v *PhoneVerification) error

	// FindActive returns the most recent unverified, unexpired record
	// matching phone and code, or shared.ErrNotFound.
	FindActive(ctx context.Context, phone, code string, now time.Time) (*PhoneVerification, error)

	// Update persists mutations of an existing record
	Update(ctx context.Context, v *PhoneVerification) error
}
