package services

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("no live session for this attempt")

type managedSession struct {
	mu      sync.Mutex
	session *QuizSession
}

// SessionManager keeps the live session for every in-progress attempt.
// Session methods share unsynchronized state, so all calls for one
// attempt are funneled through its session one at a time.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*managedSession
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[uuid.UUID]*managedSession)}
}

func (m *SessionManager) Put(attemptID uuid.UUID, session *QuizSession) {
	m.mu.Lock()
	m.sessions[attemptID] = &managedSession{session: session}
	m.mu.Unlock()
}

// With runs fn against the session for attemptID while holding that
// session's lock.
func (m *SessionManager) With(attemptID uuid.UUID, fn func(*QuizSession) error) error {
	m.mu.RLock()
	ms, ok := m.sessions[attemptID]
	m.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	return fn(ms.session)
}

func (m *SessionManager) Remove(attemptID uuid.UUID) {
	m.mu.Lock()
	delete(m.sessions, attemptID)
	m.mu.Unlock()
}
