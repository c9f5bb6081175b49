package timer

import (
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/elapsed/internal/clock"
	"github.com/ayoisaiah/elapsed/internal/models"
	"github.com/ayoisaiah/elapsed/store"
)

// State is the lifecycle state of a session.
type State int

const (
	Uninitialized State = iota
	Running
	Paused
	Ended
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "not started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	}

	return "unknown"
}

// Session is a persisted timing session. Transitions are serialized and
// written through to the store; reads never wait on a pending write.
type Session struct {
	db    store.DB
	clock clock.Clock
	owner *Manager
	rec   *models.Timer
	// opMu serializes transitions, including their store writes
	opMu sync.Mutex
	// mu guards rec and ended
	mu     sync.RWMutex
	active bool
	ended  bool
}

func newSession(
	db store.DB,
	c clock.Clock,
	owner *Manager,
	rec *models.Timer,
	active bool,
) *Session {
	return &Session{
		db:     db,
		clock:  c,
		owner:  owner,
		rec:    rec,
		active: active,
	}
}

// Active reports whether the session was reconstructed from an existing
// record rather than freshly created.
func (s *Session) Active() bool {
	return s.active
}

// ID returns the key of the underlying record.
func (s *Session) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rec.ID
}

// ActivityLabel returns the label attached to the session.
func (s *Session) ActivityLabel() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.rec.ActivityLabel == nil {
		return "", false
	}

	return *s.rec.ActivityLabel, true
}

// IsRunning reports whether the session is counting elapsed time.
func (s *Session) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rec.IsRunning && !s.ended
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ended {
		return Ended
	}

	return StateOf(s.rec)
}

// StateOf derives the state of a stored record.
func StateOf(rec *models.Timer) State {
	switch {
	case rec.StartTime == nil:
		return Uninitialized
	case rec.Paused() || !rec.IsRunning:
		return Paused
	default:
		return Running
	}
}

// Elapsed returns the active time since the session began. It returns false
// if the session was never started or has ended.
func (s *Session) Elapsed() (time.Duration, bool) {
	now := s.clock.Now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ended {
		return 0, false
	}

	return s.rec.ElapsedAt(now)
}

// Snapshot returns a copy of the underlying record.
func (s *Session) Snapshot() *models.Timer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rec.Clone()
}

// SetActivityLabel changes the label of the session.
func (s *Session) SetActivityLabel(label string) error {
	return s.transition("label", func(rec *models.Timer, _ time.Time) bool {
		if rec.ActivityLabel != nil && *rec.ActivityLabel == label {
			return false
		}

		rec.ActivityLabel = &label

		return true
	})
}

// Begin starts the session at the current time. It has no effect on a
// session that has already begun.
func (s *Session) Begin() error {
	return s.BeginAt(s.clock.Now())
}

// BeginAt starts the session at t, which may lie in the past.
func (s *Session) BeginAt(t time.Time) error {
	return s.transition("begin", func(rec *models.Timer, _ time.Time) bool {
		if rec.StartTime != nil {
			return false
		}

		start := t
		rec.StartTime = &start
		rec.IsRunning = true

		return true
	})
}

// Pause marks the onset of a pause and stops the session from counting. It
// has no effect if the session has not begun or is already paused.
func (s *Session) Pause() error {
	return s.transition("pause", func(rec *models.Timer, now time.Time) bool {
		if rec.StartTime == nil || rec.Paused() {
			return false
		}

		rec.LastPauseTime = &now
		rec.IsRunning = false

		return true
	})
}

// Resume ends the current pause, adding its length to the total pause
// duration. It has no effect if no pause is in progress.
func (s *Session) Resume() error {
	return s.transition("resume", func(rec *models.Timer, now time.Time) bool {
		if rec.LastPauseTime == nil {
			// a flag cleared through SetRunning still reads as paused
			if rec.StartTime == nil || rec.IsRunning {
				return false
			}

			rec.IsRunning = true

			return true
		}

		if span := now.Sub(*rec.LastPauseTime); span > 0 {
			rec.TotalPauseDuration += span
		}

		rec.LastPauseTime = nil
		rec.IsRunning = true

		return true
	})
}

// SetRunning sets the running flag directly.
func (s *Session) SetRunning(flag bool) error {
	return s.transition("set running", func(rec *models.Timer, _ time.Time) bool {
		rec.IsRunning = flag

		return true
	})
}

// End stops the session for good and deletes its record. The session cannot
// be used afterwards.
func (s *Session) End() error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()

	if s.ended {
		s.mu.Unlock()
		return ErrSessionEnded
	}

	s.rec.IsRunning = false
	s.ended = true
	id := s.rec.ID

	s.mu.Unlock()

	if s.owner != nil {
		s.owner.release(s)
	}

	slog.Debug("ending timer", slog.String("id", id))

	err := s.db.DeleteTimer(id)
	if err != nil {
		slog.Warn(
			"unable to delete timer record",
			slog.String("id", id),
			slog.Any("error", err),
		)

		return ErrSaveFailed.Wrap(err)
	}

	return nil
}

// transition applies fn to the in-memory record and persists the result if
// fn reports a change. A failed write leaves the in-memory change in place.
func (s *Session) transition(
	name string,
	fn func(rec *models.Timer, now time.Time) bool,
) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	now := s.clock.Now()

	s.mu.Lock()

	if s.ended {
		s.mu.Unlock()
		return ErrSessionEnded
	}

	if !fn(s.rec, now) {
		s.mu.Unlock()
		slog.Debug("timer transition skipped", slog.String("op", name))

		return nil
	}

	snap := s.rec.Clone()

	s.mu.Unlock()

	slog.Debug(
		"timer transition",
		slog.String("op", name),
		slog.String("id", snap.ID),
		slog.Bool("running", snap.IsRunning),
		slog.Duration("total_pause", snap.TotalPauseDuration),
	)

	err := s.db.SaveTimer(snap)
	if err != nil {
		slog.Warn(
			"unable to save timer",
			slog.String("op", name),
			slog.Any("error", err),
		)

		return ErrSaveFailed.Wrap(err)
	}

	return nil
}
