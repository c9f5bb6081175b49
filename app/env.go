package app

import (
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/elapsed/activity"
	"github.com/ayoisaiah/elapsed/internal/clock"
	"github.com/ayoisaiah/elapsed/internal/config"
	"github.com/ayoisaiah/elapsed/internal/pathutil"
	"github.com/ayoisaiah/elapsed/internal/ui"
	"github.com/ayoisaiah/elapsed/stats"
	"github.com/ayoisaiah/elapsed/store"
	"github.com/ayoisaiah/elapsed/timer"
)

// env holds what a command needs once the config is loaded and the
// database is open.
type env struct {
	cfg        *config.Config
	db         *store.Client
	clock      clock.Clock
	timers     *timer.Manager
	activities *activity.Service
}

// loadConfig reads the config file and applies the command-line flags. The
// first-run prompt is only shown to interactive commands.
func loadConfig(ctx *cli.Context, c clock.Clock, prompt bool) (*config.Config, error) {
	configPath := pathutil.ConfigFilePath()

	var opts []config.Option

	if prompt {
		opts = append(opts, config.WithPromptConfig(configPath))
	}

	opts = append(
		opts,
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx, c.Now()),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	slog.Debug("config loaded", slog.String("config", cfg.String()))

	return cfg, nil
}

func newEnv(ctx *cli.Context, prompt bool) (*env, error) {
	c := clock.System

	cfg, err := loadConfig(ctx, c, prompt)
	if err != nil {
		return nil, err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:        cfg,
		db:         db,
		clock:      c,
		timers:     timer.NewManager(db, c),
		activities: activity.NewService(db, c),
	}, nil
}

func (e *env) close() {
	err := e.db.Close()
	if err != nil {
		slog.Warn("unable to close database", slog.Any("error", err))
	}
}

func (e *env) reporter() *stats.Reporter {
	return stats.NewReporter(e.activities, e.cfg, config.Stdout, confirm)
}

// active returns the timer left behind by a previous command.
func (e *env) active() (*timer.Session, error) {
	sess, err := e.timers.RecoverActive()
	if err != nil {
		return nil, err
	}

	if sess == nil {
		return nil, errNoTimer
	}

	return sess, nil
}

func (e *env) duration(sess *timer.Session) string {
	d, ok := sess.Elapsed()
	if !ok {
		return "-"
	}

	return e.format(d)
}
