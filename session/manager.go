package session

import (
	"log/slog"
	"sync"

	"github.com/hbouhadji/airglass/rtsp"
)

// Manager tracks the active control sessions, one per connected sender,
// keyed by the transport's connection identity.
type Manager struct {
	log      *slog.Logger
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates a session manager. If log is nil, slog.Default() is used.
func NewManager(log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		log:      log.With("component", "session-manager"),
		sessions: make(map[string]*Session),
	}
}

// Create registers a session for the given connection key. Returns the
// session and true if created, or nil and false if the key already has one:
// a second sender-info SETUP on a live connection is a protocol violation.
func (m *Manager) Create(key string, info *rtsp.SenderInfo) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[key]; ok {
		m.log.Warn("session already exists, rejecting duplicate", "key", key)
		return nil, false
	}

	s := New(info, m.log)
	m.sessions[key] = s
	m.log.Info("session created", "key", key, "sender", info.Name, "timing", info.Timing.Mode)
	return s, true
}

// Get returns the session for the given key.
func (m *Manager) Get(key string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[key]
	return s, ok
}

// Remove closes and unregisters a session. Safe to call for unknown keys.
func (m *Manager) Remove(key string) {
	m.mu.Lock()
	s, ok := m.sessions[key]
	if ok {
		delete(m.sessions, key)
	}
	m.mu.Unlock()

	if ok {
		s.Close()
		m.log.Info("session removed", "key", key)
	}
}

// List returns all active sessions.
func (m *Manager) List() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	return out
}
