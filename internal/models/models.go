// Package models defines the records persisted by elapsed
package models

import (
	"time"

	"github.com/google/uuid"
)

// Timer is the durable state of a timing session. Optional fields are
// pointers so that an unset value is never confused with a real one.
type Timer struct {
	ActivityLabel      *string       `json:"activity_label,omitempty"`
	StartTime          *time.Time    `json:"start_time,omitempty"`
	LastPauseTime      *time.Time    `json:"last_pause_time,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	ID                 string        `json:"id"`
	TotalPauseDuration time.Duration `json:"total_pause_duration"`
	IsRunning          bool          `json:"is_running"`
}

// NewTimer creates an empty timer record for the given label.
func NewTimer(label string, createdAt time.Time) *Timer {
	return &Timer{
		ID:            uuid.NewString(),
		ActivityLabel: &label,
		CreatedAt:     createdAt,
	}
}

// Label returns the activity label or an empty string if unset.
func (t *Timer) Label() string {
	if t.ActivityLabel == nil {
		return ""
	}

	return *t.ActivityLabel
}

// Paused reports whether a pause is in progress.
func (t *Timer) Paused() bool {
	return t.LastPauseTime != nil
}

// ElapsedAt returns the active (non-paused) time between the start of the
// timer and now. It returns false if the timer was never started.
func (t *Timer) ElapsedAt(now time.Time) (time.Duration, bool) {
	if t.StartTime == nil {
		return 0, false
	}

	absolute := now.Sub(*t.StartTime)

	pauseStart := now
	if t.LastPauseTime != nil {
		pauseStart = *t.LastPauseTime
	}

	currentPause := now.Sub(pauseStart)

	return absolute - (t.TotalPauseDuration + currentPause), true
}

// Clone returns a deep copy of the timer.
func (t *Timer) Clone() *Timer {
	c := *t

	if t.ActivityLabel != nil {
		label := *t.ActivityLabel
		c.ActivityLabel = &label
	}

	if t.StartTime != nil {
		start := *t.StartTime
		c.StartTime = &start
	}

	if t.LastPauseTime != nil {
		paused := *t.LastPauseTime
		c.LastPauseTime = &paused
	}

	return &c
}

// Repeat is a single completed run of an activity.
type Repeat struct {
	Date time.Time     `json:"date"`
	Time time.Duration `json:"time"`
}

// Activity is a named habit and its recorded repeats.
type Activity struct {
	CreatedAt time.Time `json:"created_at"`
	Title     string    `json:"title"`
	Repeats   []Repeat  `json:"repeats"`
}
