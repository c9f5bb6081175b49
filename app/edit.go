package app

import (
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/elapsed/internal/clock"
	"github.com/ayoisaiah/elapsed/internal/osutil"
	"github.com/ayoisaiah/elapsed/internal/pathutil"
	"github.com/ayoisaiah/elapsed/stats"
	"github.com/ayoisaiah/elapsed/timer"
)

const statusInterval = time.Second

// renameAction gives an activity a new title.
func renameAction(ctx *cli.Context) error {
	if ctx.NArg() < 2 {
		return errMissingArg.Fmt("OLD and NEW titles")
	}

	e, err := newEnv(ctx, false)
	if err != nil {
		return err
	}

	defer e.close()

	return e.reporter().Rename(ctx.Args().Get(0), ctx.Args().Get(1))
}

// editConfigAction opens the config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	// writes the defaults if the file does not exist yet
	_, err := loadConfig(ctx, clock.System, false)
	if err != nil {
		return err
	}

	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// serveAction serves the JSON API until interrupted. The database stays
// locked meanwhile, so the status file is kept current for 'elapsed status'.
func serveAction(ctx *cli.Context) error {
	e, err := newEnv(ctx, false)
	if err != nil {
		return err
	}

	defer e.close()

	sigCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	mirrored := make(chan struct{})

	go func() {
		defer close(mirrored)

		timer.MirrorStatus(
			sigCtx,
			e.timers,
			pathutil.StatusFilePath(),
			statusInterval,
		)
	}()

	srv := stats.NewServer(e.timers, e.activities)

	err = srv.ListenAndServe(sigCtx, ctx.Uint("port"))

	stop()
	<-mirrored

	return err
}
