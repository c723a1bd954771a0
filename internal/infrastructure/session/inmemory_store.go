package session

import (
	"context"
	"sync"
	"time"

	"github.com/coalfire-create/Yongtong-YiGang-sub000/internal/domain/shared"
)

// InMemoryStore implements Store using an in-memory map
// This is suitable for single-instance deployments and testing
type InMemoryStore struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryStore creates a new in-memory session store
// It starts a background goroutine to clean up expired sessions
func NewInMemoryStore() *InMemoryStore {
	store := &InMemoryStore{
		sessions: make(map[string]*Session),
		stopChan: make(chan struct{}),
	}

	store.wg.Add(1)
	go store.cleanupLoop()

	return store
}

// Save stores the session under its ID with the given TTL
func (s *InMemoryStore) Save(ctx context.Context, sess *Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *sess
	copied.ExpiresAt = time.Now().Add(ttl)
	s.sessions[sess.ID] = &copied

	return nil
}

// Find returns the session for the given ID
func (s *InMemoryStore) Find(ctx context.Context, id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, exists := s.sessions[id]
	if !exists {
		return nil, shared.ErrNotFound
	}

	// Expired sessions are indistinguishable from missing ones
	if time.Now().After(sess.ExpiresAt) {
		return nil, shared.ErrNotFound
	}

	copied := *sess
	return &copied, nil
}

// Delete removes the session. Deleting an unknown ID is not an error.
func (s *InMemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// Close stops the cleanup goroutine and releases resources
// Safe to call multiple times
func (s *InMemoryStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

// cleanupLoop periodically removes expired sessions
func (s *InMemoryStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

func (s *InMemoryStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, id)
		}
	}
}

// Size returns the number of sessions in the store (for testing/monitoring)
func (s *InMemoryStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Ensure InMemoryStore implements Store
var _ Store = (*InMemoryStore)(nil)
