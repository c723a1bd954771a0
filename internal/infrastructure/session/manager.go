package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const idBytes = 32

// Manager issues and resolves sessions on top of a Store.
// Session IDs are 256-bit random values, so they carry no member
// information and cannot be guessed.
type Manager struct {
	store Store
	ttl   time.Duration
}

// NewManager creates a session manager backed by the given store
func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

// Start creates a new session for the member and persists it
func (m *Manager) Start(ctx context.Context, memberID uuid.UUID) (*Session, error) {
	id, err := generateID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	now := time.Now()
	sess := &Session{
		ID:        id,
		MemberID:  memberID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.store.Save(ctx, sess, m.ttl); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return sess, nil
}

// Resolve returns the session for the given ID, or shared.ErrNotFound
// when the ID is unknown or the session has expired
func (m *Manager) Resolve(ctx context.Context, id string) (*Session, error) {
	return m.store.Find(ctx, id)
}

// Destroy removes the session. Destroying an unknown ID is not an error,
// so logout stays idempotent.
func (m *Manager) Destroy(ctx context.Context, id string) error {
	return m.store.Delete(ctx, id)
}

// TTL returns the configured session lifetime
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func generateID() (string, error) {
	buf := make([]byte, idBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
