package session

import (
	"lumina/models"
	"sync"
	"time"

	"github.com/google/uuid"
)

const sessionTTL = 30 * 24 * time.Hour

// Store holds authenticated sessions in memory. Nothing survives a
// process restart; clients re-authenticate on every cold start.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*models.Session),
	}
}

// Create opens a new session holding a snapshot of the user row.
func (s *Store) Create(user models.User) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessionID := uuid.New().String()
	sess := &models.Session{
		ID:         sessionID,
		User:       user,
		ExpiresAt:  time.Now().Add(sessionTTL),
		CreatedAt:  time.Now(),
		LastUsedAt: time.Now(),
	}

	s.sessions[sessionID] = sess
	return sess, nil
}

// Get returns the session, or nil when unknown or expired.
func (s *Store) Get(sessionID string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, exists := s.sessions[sessionID]
	if !exists {
		return nil, nil
	}

	if time.Now().After(sess.ExpiresAt) {
		return nil, nil
	}

	return sess, nil
}

// Update replaces the stored session unconditionally. Used after profile
// updates so the slot holds the fresh user snapshot.
func (s *Store) Update(sessionID string, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.LastUsedAt = time.Now()
	s.sessions[sessionID] = sess
	return nil
}

func (s *Store) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

func (s *Store) CleanupExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		if time.Now().After(sess.ExpiresAt) {
			delete(s.sessions, id)
		}
	}
}

func (s *Store) StartCleanupRoutine() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			s.CleanupExpired()
		}
	}()
}
