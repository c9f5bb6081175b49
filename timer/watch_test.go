package timer_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/elapsed/internal/config"
	"github.com/ayoisaiah/elapsed/internal/models"
	"github.com/ayoisaiah/elapsed/store"
	"github.com/ayoisaiah/elapsed/timer"
)

type notifications struct {
	msgs []string
}

func (n *notifications) notify(_, msg string) error {
	n.msgs = append(n.msgs, msg)
	return nil
}

func watchConfig() *config.Config {
	return &config.Config{
		Display: config.DisplayConfig{
			Milliseconds: true,
		},
		Notifications: config.NotificationConfig{
			Enabled:     true,
			RemindEvery: 30 * time.Minute,
		},
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

// tick delivers one tick message to w.
func tick(w *timer.Watcher) {
	for _, msg := range drain(w.Init()) {
		if _, ok := msg.(tea.KeyMsg); ok {
			continue
		}

		w.Update(msg)

		return
	}
}

// drain executes cmd and returns the messages it produces.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()

	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}

	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, drain(c)...)
	}

	return msgs
}

func TestWatchTogglePauseResume(t *testing.T) {
	db, clk := setup(t)
	m := timer.NewManager(db, clk)
	s := startRunning(t, m, "Reading")

	w := timer.NewWatcher(s, watchConfig())

	clk.Advance(10 * time.Second)
	w.Update(spaceKey)
	assert.Equal(t, timer.Paused, s.State())

	clk.Advance(5 * time.Second)
	w.Update(spaceKey)
	assert.Equal(t, timer.Running, s.State())

	clk.Advance(5 * time.Second)
	assert.Equal(t, 15*time.Second, elapsed(t, s))
	assert.Contains(t, w.View(), "0:15")
}

func TestWatchStopAndSave(t *testing.T) {
	db, clk := setup(t)
	m := timer.NewManager(db, clk)
	s := startRunning(t, m, "Reading")

	w := timer.NewWatcher(s, watchConfig())

	clk.Advance(90 * time.Second)

	_, cmd := w.Update(runeKey('s'))
	require.NotNil(t, cmd)

	out := w.Outcome()
	assert.Equal(t, timer.Saved, out.Action)
	assert.Equal(t, "Reading", out.Label)
	assert.Equal(t, 90*time.Second, out.Elapsed)
	assert.Equal(t, timer.Ended, s.State())
	assert.Nil(t, m.Current())

	rec, err := db.FindTimer(store.TimerFilter{})
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestWatchSaveUnstartedTimerDiscards(t *testing.T) {
	db, clk := setup(t)
	m := timer.NewManager(db, clk)

	s, err := m.StartNew("Reading")
	require.NoError(t, err)

	w := timer.NewWatcher(s, watchConfig())

	clk.Advance(time.Minute)
	w.Update(runeKey('s'))

	out := w.Outcome()
	assert.Equal(t, timer.Discarded, out.Action)
	assert.Zero(t, out.Elapsed)
	assert.Equal(t, timer.Ended, s.State())
}

func TestWatchDiscard(t *testing.T) {
	db, clk := setup(t)
	m := timer.NewManager(db, clk)
	s := startRunning(t, m, "Reading")

	w := timer.NewWatcher(s, watchConfig())

	w.Update(runeKey('d'))

	assert.Equal(t, timer.Discarded, w.Outcome().Action)
	assert.Equal(t, timer.Ended, s.State())
}

func TestWatchQuitLeavesTimerRunning(t *testing.T) {
	db, clk := setup(t)
	m := timer.NewManager(db, clk)
	s := startRunning(t, m, "Reading")

	w := timer.NewWatcher(s, watchConfig())

	_, cmd := w.Update(runeKey('q'))
	require.NotNil(t, cmd)

	assert.Equal(t, timer.Detached, w.Outcome().Action)
	assert.Equal(t, timer.Running, s.State())
}

func TestWatchReminders(t *testing.T) {
	db, clk := setup(t)
	m := timer.NewManager(db, clk)
	s := startRunning(t, m, "Reading")

	var n notifications

	w := timer.NewWatcher(s, watchConfig(), timer.WithNotifier(n.notify))

	clk.Advance(29 * time.Minute)
	tick(w)
	assert.Empty(t, n.msgs)

	clk.Advance(2 * time.Minute)
	tick(w)
	require.Len(t, n.msgs, 1)
	assert.Equal(t, "Reading has been running for 31:00", n.msgs[0])

	clk.Advance(time.Minute)
	tick(w)
	assert.Len(t, n.msgs, 1)

	clk.Advance(30 * time.Minute)
	tick(w)
	assert.Len(t, n.msgs, 2)
}

func TestWatchRemindersDisabled(t *testing.T) {
	db, clk := setup(t)
	m := timer.NewManager(db, clk)
	s := startRunning(t, m, "Reading")

	cfg := watchConfig()
	cfg.Notifications.Enabled = false

	var n notifications

	w := timer.NewWatcher(s, cfg, timer.WithNotifier(n.notify))

	clk.Advance(2 * time.Hour)
	tick(w)
	assert.Empty(t, n.msgs)
}

func TestWatchNoReminderForTimeAlreadyElapsed(t *testing.T) {
	db, clk := setup(t)
	m := timer.NewManager(db, clk)
	s := startRunning(t, m, "Reading")

	clk.Advance(45 * time.Minute)

	var n notifications

	w := timer.NewWatcher(s, watchConfig(), timer.WithNotifier(n.notify))

	tick(w)
	assert.Empty(t, n.msgs)
}

func TestWatchAutoResume(t *testing.T) {
	db, clk := setup(t)
	m := timer.NewManager(db, clk)
	s := startRunning(t, m, "Reading")

	clk.Advance(time.Minute)
	require.NoError(t, s.Pause())
	clk.Advance(time.Minute)

	cfg := watchConfig()
	cfg.Settings.AutoResume = true

	w := timer.NewWatcher(s, cfg)

	for _, msg := range drain(w.Init()) {
		w.Update(msg)
	}

	assert.Equal(t, timer.Running, s.State())
	assert.Equal(t, time.Minute, elapsed(t, s))
}

func TestWatchStatusFile(t *testing.T) {
	db, clk := setup(t)
	m := timer.NewManager(db, clk)
	s := startRunning(t, m, "Reading")

	path := filepath.Join(t.TempDir(), "status.json")

	w := timer.NewWatcher(s, watchConfig(), timer.WithStatusFile(path))

	clk.Advance(time.Minute)
	tick(w)

	rec, err := timer.ReadStatusFile(path)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, s.ID(), rec.ID)

	d, ok := rec.ElapsedAt(clk.Now())
	require.True(t, ok)
	assert.Equal(t, time.Minute, d)

	w.Update(runeKey('q'))

	rec, err = timer.ReadStatusFile(path)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestMirrorStatus(t *testing.T) {
	db, clk := setup(t)
	m := timer.NewManager(db, clk)
	s := startRunning(t, m, "Reading")

	path := filepath.Join(t.TempDir(), "status.json")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		timer.MirrorStatus(ctx, m, path, 10*time.Millisecond)
	}()

	t.Cleanup(func() {
		cancel()
		<-done
	})

	mirrored := func() *models.Timer {
		rec, err := timer.ReadStatusFile(path)
		if err != nil {
			return nil
		}

		return rec
	}

	require.Eventually(t, func() bool {
		rec := mirrored()
		return rec != nil && rec.ID == s.ID()
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, s.Pause())

	require.Eventually(t, func() bool {
		rec := mirrored()
		return rec != nil && timer.StateOf(rec) == timer.Paused
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, s.End())

	require.Eventually(t, func() bool {
		_, err := os.Stat(path)
		return errors.Is(err, os.ErrNotExist)
	}, time.Second, 10*time.Millisecond)
}
