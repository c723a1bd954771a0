package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Session is an authenticated browser session bound to a member.
type Session struct {
	ID        string    `json:"id"`
	MemberID  uuid.UUID `json:"member_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store persists sessions. Implementations must treat a missing or
// expired session as shared.ErrNotFound so callers cannot tell the
// two cases apart.
type Store interface {
	// Save stores the session under its ID with the given TTL
	Save(ctx context.Context, sess *Session, ttl time.Duration) error

	// Find returns the session for the given ID
	Find(ctx context.Context, id string) (*Session, error)

	// Delete removes the session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases any resources held by the store
	Close() error
}
