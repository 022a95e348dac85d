package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"github.com/noirbureau/swanhunt/internal/dependencies/clock"
)

// ErrInvalidSession is returned for unknown or expired tokens
var ErrInvalidSession = errors.New("invalid or expired session")

// Session represents an authenticated HTTP session
type Session struct {
	Token     string
	Email     string
	Name      string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Manager issues and validates bearer tokens for the HTTP layer. Tokens
// live in process memory; the backend-held session email is a separate
// concern owned by the store.
type Manager struct {
	clock clock.Clock

	mu       sync.RWMutex
	sessions map[string]*Session

	duration time.Duration
}

// NewManager creates a session manager with the given token lifetime
func NewManager(clk clock.Clock, duration time.Duration) *Manager {
	if duration == 0 {
		duration = 24 * time.Hour
	}
	return &Manager{
		clock:    clk,
		sessions: make(map[string]*Session),
		duration: duration,
	}
}

// Create issues a token for the given identity
func (m *Manager) Create(email, name string) *Session {
	now := m.clock.Now()
	session := &Session{
		Token:     generateToken(),
		Email:     email,
		Name:      name,
		CreatedAt: now,
		ExpiresAt: now.Add(m.duration),
	}

	m.mu.Lock()
	m.sessions[session.Token] = session
	m.mu.Unlock()

	return session
}

// Validate checks a token and returns its session
func (m *Manager) Validate(token string) (*Session, error) {
	m.mu.RLock()
	session, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidSession
	}

	if m.clock.Now().After(session.ExpiresAt) {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return nil, ErrInvalidSession
	}

	return session, nil
}

// Invalidate removes a session token
func (m *Manager) Invalidate(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// CleanExpired removes expired sessions (call periodically)
func (m *Manager) CleanExpired() {
	now := m.clock.Now()
	m.mu.Lock()
	defer m.mu.Unlock()

	for token, session := range m.sessions {
		if now.After(session.ExpiresAt) {
			delete(m.sessions, token)
		}
	}
}

func generateToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}
