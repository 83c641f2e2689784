package services

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// Session ties a token to a logged-in user.
type Session struct {
	UserID     int
	Expiration time.Time
}

// SessionStore is an in-process session table guarded by a RWMutex.
// Expired entries are pruned lazily on lookup.
type SessionStore struct {
	sessions map[string]Session
	ttl      time.Duration
	mutex    sync.RWMutex
}

// NewSessionStore creates a SessionStore with the given session TTL
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]Session),
		ttl:      ttl,
	}
}

// Create issues a new session token for a user
func (s *SessionStore) Create(userID int) (string, error) {
	token, err := genToken()
	if err != nil {
		return "", err
	}

	s.mutex.Lock()
	s.sessions[token] = Session{
		UserID:     userID,
		Expiration: time.Now().Add(s.ttl),
	}
	s.mutex.Unlock()

	return token, nil
}

// Get resolves a token to a user ID. Expired or unknown tokens report
// not-ok and expired entries are deleted.
func (s *SessionStore) Get(token string) (int, bool) {
	s.mutex.RLock()
	session, exists := s.sessions[token]
	s.mutex.RUnlock()

	if !exists {
		return 0, false
	}
	if time.Now().After(session.Expiration) {
		s.mutex.Lock()
		delete(s.sessions, token)
		s.mutex.Unlock()
		return 0, false
	}
	return session.UserID, true
}

// Delete removes a session token
func (s *SessionStore) Delete(token string) {
	s.mutex.Lock()
	delete(s.sessions, token)
	s.mutex.Unlock()
}

func genToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
