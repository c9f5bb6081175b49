package timer

import "github.com/ayoisaiah/elapsed/internal/apperr"

var (
	// ErrSaveFailed is returned when a change to the timer could not be
	// committed to the store. The in-memory state of the session is kept.
	ErrSaveFailed = &apperr.Error{
		Message: "timer state could not be saved",
	}

	// ErrSessionEnded is returned by every mutating call on an ended session.
	ErrSessionEnded = &apperr.Error{
		Message: "timer session has ended: start a new one",
	}

	// ErrSessionInProgress is returned when a different activity is already
	// being timed.
	ErrSessionInProgress = &apperr.Error{
		Message: "a timer for %q is already in progress",
	}
)

var errStatusFile = &apperr.Error{
	Message: "status file is corrupt",
}
