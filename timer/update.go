package timer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/elapsed/internal/timeutil"
)

type tickMsg time.Time

type autoResumeMsg struct{}

func (w *Watcher) tickInterval() time.Duration {
	if w.Opts.Display.Milliseconds {
		return 100 * time.Millisecond
	}

	return time.Second
}

func (w *Watcher) tick() tea.Cmd {
	return tea.Tick(w.tickInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// intervals returns how many whole reminder intervals fit in d.
func (w *Watcher) intervals(d time.Duration) int64 {
	every := w.Opts.Notifications.RemindEvery
	if every <= 0 {
		return 0
	}

	return int64(d / every)
}

func (w *Watcher) Init() tea.Cmd {
	cmds := []tea.Cmd{w.tick()}

	if w.Opts.Settings.AutoResume && w.sess.State() == Paused {
		cmds = append(cmds, func() tea.Msg {
			return autoResumeMsg{}
		})
	}

	return tea.Batch(cmds...)
}

// handleTick refreshes the status file and sends a reminder whenever
// another remind_every interval has elapsed.
func (w *Watcher) handleTick() (tea.Model, tea.Cmd) {
	if w.statusPath != "" {
		err := WriteStatusFile(w.statusPath, w.sess.Snapshot(), w.sess.clock.Now())
		if err != nil {
			slog.Warn("unable to write status file", slog.Any("error", err))
		}
	}

	d, ok := w.sess.Elapsed()
	if !ok || !w.Opts.Notifications.Enabled {
		return w, w.tick()
	}

	if n := w.intervals(d); n > w.reminders {
		w.reminders = n

		w.sendReminder(d)
	}

	return w, w.tick()
}

func (w *Watcher) sendReminder(d time.Duration) {
	label := w.outcome.Label
	if label == "" {
		label = "Timer"
	}

	msg := fmt.Sprintf(
		"%s has been running for %s",
		label,
		timeutil.TimerString(d, w.Opts.Display.FullFormat, false),
	)

	err := w.notify("elapsed", msg)
	if err != nil {
		slog.Warn("unable to send reminder", slog.Any("error", err))
	}
}

func (w *Watcher) toggle() {
	var err error

	if w.sess.State() == Paused {
		err = w.sess.Resume()
	} else {
		err = w.sess.Pause()
	}

	w.err = err
}

// finish ends the session and leaves the view.
// A timer that never started has nothing to save, so it is discarded.
func (w *Watcher) finish(action Action) (tea.Model, tea.Cmd) {
	d, ok := w.sess.Elapsed()
	if !ok {
		action = Discarded
	}

	w.outcome.Elapsed = d

	err := w.sess.End()
	if err != nil {
		w.err = err
		return w, nil
	}

	w.outcome.Action = action

	return w.quit()
}

func (w *Watcher) quit() (tea.Model, tea.Cmd) {
	if w.statusPath != "" {
		_ = os.Remove(w.statusPath)
	}

	return w, tea.Quit
}

func (w *Watcher) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("watch key", slog.String("msg", spew.Sdump(msg)))
	}

	switch {
	case key.Matches(msg, defaultKeymap.toggle):
		w.toggle()

	case key.Matches(msg, defaultKeymap.save):
		return w.finish(Saved)

	case key.Matches(msg, defaultKeymap.discard):
		return w.finish(Discarded)

	case key.Matches(msg, defaultKeymap.quit):
		w.outcome.Action = Detached

		return w.quit()
	}

	return w, nil
}

func (w *Watcher) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return w.handleTick()

	case autoResumeMsg:
		w.err = w.sess.Resume()

		return w, nil

	case tea.KeyMsg:
		return w.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		w.help.Width = msg.Width

		return w, nil
	}

	return w, nil
}
