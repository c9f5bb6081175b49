// Package timer tracks elapsed-time sessions, recovers sessions left behind
// by a previous process and renders the live watch view
package timer

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/ayoisaiah/elapsed/internal/config"
)

// Action is what the user chose to do before the watch view exited.
type Action int

const (
	// Detached leaves the timer as it is.
	Detached Action = iota
	// Saved ends the timer so that its elapsed time can be recorded.
	Saved
	// Discarded ends the timer without recording anything.
	Discarded
)

// Outcome describes how a watch view ended.
type Outcome struct {
	Label   string
	Elapsed time.Duration
	Action  Action
}

// Notifier delivers a desktop notification.
type Notifier func(title, msg string) error

func desktopNotify(title, msg string) error {
	return beeep.Notify(title, msg, "")
}

// WatchOption customises a Watcher.
type WatchOption func(*Watcher)

// WithStatusFile makes the view mirror the timer to path on every tick.
func WithStatusFile(path string) WatchOption {
	return func(w *Watcher) {
		w.statusPath = path
	}
}

// WithNotifier replaces the desktop notifier used for reminders.
func WithNotifier(n Notifier) WatchOption {
	return func(w *Watcher) {
		w.notify = n
	}
}

// Watcher is the bubbletea model for the live timer view.
type Watcher struct {
	sess       *Session
	Opts       *config.Config
	notify     Notifier
	err        error
	styles     styles
	statusPath string
	outcome    Outcome
	help       help.Model
	// reminders counts the remind_every intervals already announced
	reminders int64
}

// NewWatcher returns a watch view over sess.
func NewWatcher(sess *Session, cfg *config.Config, opts ...WatchOption) *Watcher {
	w := &Watcher{
		sess:   sess,
		Opts:   cfg,
		notify: desktopNotify,
		styles: newStyles(cfg.Display.DarkTheme),
		help:   help.New(),
	}

	for _, opt := range opts {
		opt(w)
	}

	if d, ok := sess.Elapsed(); ok {
		w.reminders = w.intervals(d)
	}

	w.outcome.Label, _ = sess.ActivityLabel()

	return w
}

// Outcome reports how the view ended. It is only meaningful after the
// program has exited.
func (w *Watcher) Outcome() Outcome {
	return w.outcome
}

// Run blocks until the user leaves the watch view.
func (w *Watcher) Run() (Outcome, error) {
	p := tea.NewProgram(w)

	_, err := p.Run()
	if err != nil {
		return Outcome{}, err
	}

	return w.outcome, nil
}
