package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/elapsed/internal/timeutil"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Since         string
	Title         string
	Milliseconds  bool
	FullFormat    bool
	DisableNotify bool
	Discard       bool
}

// WithCLIConfig returns an Option that applies command-line flags on top of
// the file configuration. now anchors relative --since values.
func WithCLIConfig(ctx *cli.Context, now time.Time) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Since:         ctx.String("since"),
			Title:         ctx.String("title"),
			Milliseconds:  ctx.Bool("milliseconds"),
			FullFormat:    ctx.Bool("full-format"),
			DisableNotify: ctx.Bool("disable-notification"),
			Discard:       ctx.Bool("discard"),
		}

		return applyCLIOptions(c, opts, now)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions, now time.Time) error {
	if opts.Milliseconds {
		c.Display.Milliseconds = true
	}

	if opts.FullFormat {
		c.Display.FullFormat = true
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	c.CLI.Title = strings.TrimSpace(opts.Title)
	c.CLI.Discard = opts.Discard
	c.CLI.StartTime = now

	if opts.Since != "" {
		startTime, err := timeutil.FromStr(opts.Since, now)
		if err != nil {
			return errInvalidSince.Fmt(opts.Since).Wrap(err)
		}

		if startTime.After(now) {
			return errFutureSince
		}

		c.CLI.StartTime = startTime
	}

	return nil
}
