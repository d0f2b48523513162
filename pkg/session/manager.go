package session

import (
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/aretw0/strobe/internal/logging"
	"github.com/aretw0/strobe/pkg/playback"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Session is one named controller. Controllers are not safe for
// concurrent use, so all access goes through With.
type Session struct {
	ID   string
	Spec RunSpec

	mu         sync.Mutex
	controller *playback.Controller
}

// With runs fn while holding the session's lock.
func (s *Session) With(fn func(c *playback.Controller) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.controller)
}

// ControllerFactory builds a controller for a spec. The default wires
// no dispatcher or recorder; hosts supply their own factory to attach
// them.
type ControllerFactory func(spec RunSpec) (*playback.Controller, error)

// Manager owns named controller sessions.
type Manager struct {
	factory ControllerFactory
	logger  *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger sets the manager's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a Manager. A nil factory uses NewController with
// no extra options.
func NewManager(factory ControllerFactory, opts ...Option) *Manager {
	if factory == nil {
		factory = func(spec RunSpec) (*playback.Controller, error) {
			return NewController(spec)
		}
	}
	m := &Manager{
		factory:  factory,
		logger:   logging.NewNop(),
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create builds a controller for the spec and registers it under a
// fresh ID.
func (m *Manager) Create(spec RunSpec) (*Session, error) {
	controller, err := m.factory(spec)
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:         uuid.NewString(),
		Spec:       spec,
		controller: controller,
	}

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	m.logger.Debug("session created",
		"session_id", session.ID,
		"family", spec.Family,
		"algorithm", spec.Algorithm,
	)
	return session, nil
}

// Get looks a session up by ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

// Delete removes a session. Deleting an unknown ID is an error.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

// List returns all session IDs in stable order.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
