package timer

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/ayoisaiah/elapsed/internal/clock"
	"github.com/ayoisaiah/elapsed/internal/models"
	"github.com/ayoisaiah/elapsed/store"
)

// Manager owns the live timer session of a process. At most one session is
// live at a time; it is released when the session ends.
type Manager struct {
	db      store.DB
	clock   clock.Clock
	current *Session
	mu      sync.Mutex
}

// NewManager returns a Manager backed by db. A nil clock defaults to the
// system clock.
func NewManager(db store.DB, c clock.Clock) *Manager {
	if c == nil {
		c = clock.System
	}

	return &Manager{
		db:    db,
		clock: c,
	}
}

// Clock returns the clock sessions of this manager read from.
func (m *Manager) Clock() clock.Clock {
	return m.clock
}

// Current returns the live session, or nil if there is none.
func (m *Manager) Current() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.current
}

// RecoverActive returns the live session or reconstructs one from the most
// recent record in the store. It returns nil if no timer was left behind. An
// unavailable store is treated the same as an empty one.
func (m *Manager) RecoverActive() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		return m.current, nil
	}

	rec, err := m.db.FindTimer(store.TimerFilter{})
	if err != nil {
		if errors.Is(err, store.ErrUnavailable) {
			slog.Warn("timer recovery skipped", slog.Any("error", err))
			return nil, nil
		}

		return nil, err
	}

	if rec == nil {
		return nil, nil
	}

	slog.Debug("recovered timer", slog.String("id", rec.ID))

	m.current = newSession(m.db, m.clock, m, rec, true)

	return m.current, nil
}

// StartNew returns a session for label. A record left behind for the same
// label is resumed, otherwise a new record is created and persisted. If the
// write fails the session is still returned along with the error.
func (m *Manager) StartNew(label string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		current, _ := m.current.ActivityLabel()
		if current == label {
			return m.current, nil
		}

		return nil, ErrSessionInProgress.Fmt(current)
	}

	rec, err := m.db.FindTimer(store.TimerFilter{ActivityLabel: &label})
	if err != nil {
		return nil, err
	}

	if rec != nil {
		m.current = newSession(m.db, m.clock, m, rec, true)
		return m.current, nil
	}

	rec = models.NewTimer(label, m.clock.Now())

	m.current = newSession(m.db, m.clock, m, rec, false)

	err = m.db.SaveTimer(rec.Clone())
	if err != nil {
		return m.current, ErrSaveFailed.Wrap(err)
	}

	return m.current, nil
}

func (m *Manager) release(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == s {
		m.current = nil
	}
}
