package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/elapsed/internal/clock"
	"github.com/ayoisaiah/elapsed/internal/config"
	"github.com/ayoisaiah/elapsed/internal/logger"
	"github.com/ayoisaiah/elapsed/internal/models"
	"github.com/ayoisaiah/elapsed/internal/pathutil"
	"github.com/ayoisaiah/elapsed/internal/timeutil"
	"github.com/ayoisaiah/elapsed/internal/ui"
	"github.com/ayoisaiah/elapsed/stats"
	"github.com/ayoisaiah/elapsed/store"
	"github.com/ayoisaiah/elapsed/timer"
)

const (
	envNoColor        = "NO_COLOR"
	envElapsedNoColor = "ELAPSED_NO_COLOR"
)

func (e *env) format(d time.Duration) string {
	return timeutil.TimerString(
		d,
		e.cfg.Display.FullFormat,
		e.cfg.Display.Milliseconds,
	)
}

func labelOrDefault(label string) string {
	if label == "" {
		return "timer"
	}

	return strconv.Quote(label)
}

// startAction creates a timer for the given label, or picks up the one left
// behind for it, and starts counting.
func startAction(ctx *cli.Context) error {
	e, err := newEnv(ctx, true)
	if err != nil {
		return err
	}

	defer e.close()

	label := ctx.Args().First()

	_, err = e.timers.RecoverActive()
	if err != nil {
		return err
	}

	sess, err := e.timers.StartNew(label)
	if err != nil {
		return err
	}

	if state := sess.State(); state != timer.Uninitialized {
		pterm.Info.Printfln(
			"%s is already %s (%s)",
			labelOrDefault(label),
			state,
			e.duration(sess),
		)

		return nil
	}

	start := e.cfg.CLI.StartTime

	err = sess.BeginAt(start)
	if err != nil {
		return err
	}

	pterm.Success.Printfln(
		"Started %s at %s",
		labelOrDefault(label),
		start.Local().Format(e.cfg.TimeFormat()),
	)

	return nil
}

func pauseAction(ctx *cli.Context) error {
	e, err := newEnv(ctx, false)
	if err != nil {
		return err
	}

	defer e.close()

	sess, err := e.active()
	if err != nil {
		return err
	}

	if sess.State() != timer.Running {
		pterm.Info.Printfln("Timer is %s", sess.State())
		return nil
	}

	err = sess.Pause()
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Paused at %s", e.duration(sess))

	return nil
}

func resumeAction(ctx *cli.Context) error {
	e, err := newEnv(ctx, false)
	if err != nil {
		return err
	}

	defer e.close()

	sess, err := e.active()
	if err != nil {
		return err
	}

	if sess.State() != timer.Paused {
		pterm.Info.Printfln("Timer is %s", sess.State())
		return nil
	}

	err = sess.Resume()
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Resumed at %s", e.duration(sess))

	return nil
}

func labelAction(ctx *cli.Context) error {
	label := ctx.Args().First()
	if label == "" {
		return errMissingArg.Fmt("LABEL")
	}

	e, err := newEnv(ctx, false)
	if err != nil {
		return err
	}

	defer e.close()

	sess, err := e.active()
	if err != nil {
		return err
	}

	err = sess.SetActivityLabel(label)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Timer is now labelled %q", label)

	return nil
}

func printStatus(
	cfg *config.Config,
	rec *models.Timer,
	now time.Time,
	asJSON bool,
) error {
	status := stats.TimerStatus{
		Timer: rec,
		State: timer.StateOf(rec).String(),
	}

	elapsed := "-"

	if d, ok := rec.ElapsedAt(now); ok {
		secs := timeutil.Seconds(d)
		status.ElapsedSeconds = &secs
		elapsed = timeutil.TimerString(
			d,
			cfg.Display.FullFormat,
			cfg.Display.Milliseconds,
		)
	}

	if asJSON {
		return stats.WriteJSON(config.Stdout, status)
	}

	label := rec.Label()
	if label == "" {
		label = "-"
	}

	ui.PrintKV(config.Stdout, [][2]string{
		{"Activity", ui.Highlight(label)},
		{"State", ui.State(status.State)},
		{"Elapsed", elapsed},
	})

	return nil
}

// statusAction prints the current timer. While another process holds the
// database it reads the status file mirrored by the watch view instead.
func statusAction(ctx *cli.Context) error {
	e, err := newEnv(ctx, false)
	if errors.Is(err, store.ErrUnavailable) {
		slog.Debug("database locked, reading status file")

		cfg, cfgErr := loadConfig(ctx, clock.System, false)
		if cfgErr != nil {
			return cfgErr
		}

		rec, fileErr := timer.ReadStatusFile(pathutil.StatusFilePath())
		if fileErr != nil {
			return fileErr
		}

		if rec == nil {
			return errNoTimer
		}

		return printStatus(cfg, rec, clock.System.Now(), ctx.Bool("json"))
	}

	if err != nil {
		return err
	}

	defer e.close()

	sess, err := e.active()
	if err != nil {
		return err
	}

	return printStatus(e.cfg, sess.Snapshot(), e.clock.Now(), ctx.Bool("json"))
}

// runHookCmd executes settings.cmd after a repeat is recorded. The title and
// time are passed through the environment.
func runHookCmd(hook, title string, d time.Duration) error {
	if hook == "" {
		return nil
	}

	args, err := shellquote.Split(hook)
	if err != nil {
		return errHookCmd.Wrap(err)
	}

	if len(args) == 0 {
		return nil
	}

	//nolint:gosec // the command comes from the user's own config
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Env = append(
		os.Environ(),
		"ELAPSED_TITLE="+title,
		fmt.Sprintf("ELAPSED_SECONDS=%.3f", timeutil.Seconds(d)),
	)
	cmd.Stdout = config.Stdout
	cmd.Stderr = config.Stderr

	err = cmd.Run()
	if err != nil {
		return errHookCmd.Wrap(err)
	}

	return nil
}

// record saves d as a repeat of title, asking for a title when none is
// known.
func (e *env) record(title string, d time.Duration) error {
	if title == "" {
		known, err := e.activities.List()
		if err != nil {
			return err
		}

		title, err = promptTitle(known)
		if err != nil {
			return err
		}
	}

	a, err := e.activities.Record(title, d)
	if err != nil {
		return err
	}

	pterm.Success.Printfln(
		"Recorded %s for %q (repeat #%d)",
		e.format(d),
		a.Title,
		len(a.Repeats),
	)

	return runHookCmd(e.cfg.Settings.Cmd, a.Title, d)
}

// stopAction ends the timer and records its elapsed time as a repeat.
func stopAction(ctx *cli.Context) error {
	e, err := newEnv(ctx, false)
	if err != nil {
		return err
	}

	defer e.close()

	sess, err := e.active()
	if err != nil {
		return err
	}

	d, started := sess.Elapsed()
	label, _ := sess.ActivityLabel()

	err = sess.End()
	if err != nil {
		return err
	}

	if e.cfg.CLI.Discard {
		pterm.Info.Printfln("Discarded %s", labelOrDefault(label))
		return nil
	}

	if !started {
		pterm.Info.Println("Timer was never started, nothing to record")
		return nil
	}

	return e.record(firstNonEmptyString(e.cfg.CLI.Title, label), d)
}

// watchAction opens the live view on the current timer.
func watchAction(ctx *cli.Context) error {
	e, err := newEnv(ctx, true)
	if err != nil {
		return err
	}

	defer e.close()

	sess, err := e.active()
	if err != nil {
		return err
	}

	w := timer.NewWatcher(
		sess,
		e.cfg,
		timer.WithStatusFile(pathutil.StatusFilePath()),
	)

	out, err := w.Run()
	if err != nil {
		return err
	}

	switch out.Action {
	case timer.Saved:
		return e.record(out.Label, out.Elapsed)
	case timer.Discarded:
		pterm.Info.Printfln("Discarded %s", labelOrDefault(out.Label))
	case timer.Detached:
	}

	return nil
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func beforeAction(ctx *cli.Context) error {
	cli.AppHelpTemplate = helpText()

	err := pathutil.Initialize()
	if err != nil {
		return err
	}

	logCloser = logger.Init(
		pathutil.LogFilePath(),
		logger.WithDebug(ctx.Bool("debug")),
	)

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	if _, exists := os.LookupEnv(envElapsedNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	slog.Debug("running command", slog.Any("args", ctx.Args().Slice()))

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.DebugContext(ctx.Context, "exiting elapsed")

	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}

	return nil
}
