package timer

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/elapsed/internal/models"
	"github.com/ayoisaiah/elapsed/internal/osutil"
)

type keymap struct {
	toggle  key.Binding
	save    key.Binding
	discard key.Binding
	quit    key.Binding
}

var defaultKeymap = keymap{
	toggle: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "pause/resume"),
	),
	save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop & save"),
	),
	discard: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "discard"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type styles struct {
	base    lipgloss.Style
	label   lipgloss.Style
	clock   lipgloss.Style
	running lipgloss.Style
	paused  lipgloss.Style
	hint    lipgloss.Style
	err     lipgloss.Style
}

func newStyles(dark bool) styles {
	accent := lipgloss.Color("#0B7A75")
	muted := lipgloss.Color("#6C6C6C")

	if dark {
		accent = lipgloss.Color("#7AE7C7")
		muted = lipgloss.Color("#A8A8A8")
	}

	return styles{
		base:    lipgloss.NewStyle().Padding(1, 2),
		label:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		clock:   lipgloss.NewStyle().Bold(true),
		running: lipgloss.NewStyle().Foreground(lipgloss.Color("#3FB950")),
		paused:  lipgloss.NewStyle().Foreground(lipgloss.Color("#D29922")),
		hint:    lipgloss.NewStyle().Foreground(muted),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F85149")),
	}
}

// Status is the snapshot mirrored to the status file while a view holds
// the database.
type Status struct {
	UpdatedAt time.Time     `json:"updated_at"`
	Timer     *models.Timer `json:"timer"`
}

// WriteStatusFile replaces the status file at path with rec.
func WriteStatusFile(path string, rec *models.Timer, now time.Time) error {
	b, err := json.Marshal(Status{
		UpdatedAt: now,
		Timer:     rec,
	})
	if err != nil {
		return err
	}

	return osutil.WriteFileAtomic(path, b)
}

// ReadStatusFile returns the timer mirrored at path, or nil if there is no
// status file.
func ReadStatusFile(path string) (*models.Timer, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	var s Status

	err = json.Unmarshal(b, &s)
	if err != nil {
		return nil, errStatusFile.Wrap(err)
	}

	return s.Timer, nil
}

// MirrorStatus keeps the status file at path in step with the current timer
// of m until ctx is done. The file is removed on return.
func MirrorStatus(
	ctx context.Context,
	m *Manager,
	path string,
	every time.Duration,
) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	defer func() {
		_ = os.Remove(path)
	}()

	for {
		err := mirrorStatus(m, path)
		if err != nil {
			slog.Warn("unable to update status file", slog.Any("error", err))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func mirrorStatus(m *Manager, path string) error {
	sess, err := m.RecoverActive()
	if err != nil {
		return err
	}

	if sess == nil || sess.State() == Ended {
		err = os.Remove(path)
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return err
	}

	return WriteStatusFile(path, sess.Snapshot(), m.Clock().Now())
}
