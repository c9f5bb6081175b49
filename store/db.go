package store

import (
	"github.com/ayoisaiah/elapsed/internal/models"
)

// TimerFilter narrows down a timer lookup. A nil ActivityLabel matches any
// record.
type TimerFilter struct {
	ActivityLabel *string
}

// DB is the database storage interface.
type DB interface {
	// FindTimer returns the most recently created timer that satisfies the
	// filter, or nil if none does
	FindTimer(filter TimerFilter) (*models.Timer, error)
	// Timers returns every persisted timer, newest first
	Timers() ([]*models.Timer, error)
	// SaveTimer creates or overwrites a timer record
	SaveTimer(t *models.Timer) error
	// DeleteTimer removes a timer record. Deleting a missing record is not
	// an error
	DeleteTimer(id string) error
	DeleteAllTimers() error
	// Activities returns all recorded activities in no particular order
	Activities() ([]*models.Activity, error)
	// GetActivity returns the named activity, or nil if it does not exist
	GetActivity(title string) (*models.Activity, error)
	// SaveActivity creates or overwrites an activity
	SaveActivity(a *models.Activity) error
	// RenameActivity moves an activity to a new title
	RenameActivity(oldTitle, newTitle string) error
	DeleteActivity(title string) error
	// Open begins a database connection
	Open() error
	// Close ends the database connection
	Close() error
}
