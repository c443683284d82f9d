package pricing

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionStore keeps quote sessions in memory. Requests for the same session
// are serialised by the store lock.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[uuid.UUID]*Session
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*Session),
	}
}

func (s *SessionStore) Now() time.Time {
	return s.now()
}

func (s *SessionStore) Put(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	sess.touchedAt = s.now()
	s.sessions[sess.ID] = sess
}

// With runs fn on the session owned by ownerID. Sessions of other owners are
// reported as missing.
func (s *SessionStore) With(id, ownerID uuid.UUID, fn func(*Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()

	sess, ok := s.sessions[id]
	if !ok || sess.OwnerID != ownerID {
		return ErrSessionNotFound
	}
	sess.touchedAt = s.now()
	return fn(sess)
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	return len(s.sessions)
}

func (s *SessionStore) purgeLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.touchedAt.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
