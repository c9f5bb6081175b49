package timer

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/elapsed/internal/timeutil"
)

// formatElapsed renders the elapsed time with the configured display
// settings.
func (w *Watcher) formatElapsed() string {
	d, _ := w.sess.Elapsed()

	return timeutil.TimerString(
		d,
		w.Opts.Display.FullFormat,
		w.Opts.Display.Milliseconds,
	)
}

func (w *Watcher) stateView() string {
	state := w.sess.State()

	switch state {
	case Running:
		return w.styles.running.Render("● " + state.String())
	case Paused:
		return w.styles.paused.Render("❚❚ " + state.String())
	default:
		return w.styles.hint.Render(state.String())
	}
}

func (w *Watcher) timerView() string {
	var s strings.Builder

	label := w.outcome.Label
	if label == "" {
		label = "Untitled"
	}

	s.WriteString(w.styles.label.Render(label))
	s.WriteString("  " + w.stateView())

	if snap := w.sess.Snapshot(); snap.StartTime != nil {
		s.WriteString(
			w.styles.hint.Render(
				"  since " + snap.StartTime.Local().Format(w.Opts.TimeFormat()),
			),
		)
	}

	s.WriteString("\n\n")
	s.WriteString(w.styles.clock.Render(w.formatElapsed()))

	if w.err != nil {
		s.WriteString("\n\n" + w.styles.err.Render(w.err.Error()))
	}

	s.WriteString("\n\n" + w.help.ShortHelpView([]key.Binding{
		defaultKeymap.toggle,
		defaultKeymap.save,
		defaultKeymap.discard,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (w *Watcher) View() string {
	if w.sess.State() == Ended {
		return ""
	}

	return w.styles.base.Render(w.timerView())
}
