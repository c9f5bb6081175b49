// Package app wires the elapsed commands together
package app

import (
	"io"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/elapsed/internal/config"
)

var logCloser io.Closer

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// checkFlagOrder rejects flags written after a positional argument. The flag
// parser stops at the first argument, so such flags would be silently
// ignored.
func checkFlagOrder(ctx *cli.Context) error {
	args := ctx.Args().Slice()

	for i, arg := range args {
		if i > 0 && len(arg) > 1 && strings.HasPrefix(arg, "-") {
			return errFlagAfterArg.Fmt(arg, args[0])
		}
	}

	return nil
}

// Get retrieves the elapsed app instance.
func Get() *cli.App {
	displayFlags := []cli.Flag{millisecondsFlag, fullFormatFlag}

	return &cli.App{
		Name: "elapsed",
		Usage: `
		elapsed is a stopwatch for the command-line. Time an activity, pause and
		resume it across terminals, and keep a history of every repeat.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Writer:               config.Stdout,
		ErrWriter:            config.Stderr,
		Commands: []*cli.Command{
			{
				Name:      "start",
				Before:    checkFlagOrder,
				Usage:     "Start timing an activity",
				ArgsUsage: "[--since TEXT] [LABEL]",
				Flags:     append([]cli.Flag{sinceFlag}, displayFlags...),
				Action:    startAction,
			},
			{
				Name:   "pause",
				Usage:  "Pause the current timer",
				Flags:  displayFlags,
				Action: pauseAction,
			},
			{
				Name:   "resume",
				Usage:  "Resume the current timer",
				Flags:  displayFlags,
				Action: resumeAction,
			},
			{
				Name:      "label",
				Before:    checkFlagOrder,
				Usage:     "Change the activity label of the current timer",
				ArgsUsage: "LABEL",
				Action:    labelAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the current timer",
				Flags:  append([]cli.Flag{jsonFlag}, displayFlags...),
				Action: statusAction,
			},
			{
				Name:   "stop",
				Usage:  "Stop the current timer and record its time",
				Flags:  append([]cli.Flag{titleFlag, discardFlag}, displayFlags...),
				Action: stopAction,
			},
			{
				Name:  "watch",
				Usage: "Follow the current timer live",
				Flags: append(
					[]cli.Flag{disableNotificationFlag},
					displayFlags...,
				),
				Action: watchAction,
			},
			{
				Name:    "activities",
				Aliases: []string{"ls"},
				Usage:   "List recorded activities",
				Flags:   append([]cli.Flag{jsonFlag}, displayFlags...),
				Action:  activitiesAction,
			},
			{
				Name:      "show",
				Before:    checkFlagOrder,
				Usage:     "Show the statistics and history of an activity",
				ArgsUsage: "[--json] TITLE",
				Flags:     append([]cli.Flag{jsonFlag}, displayFlags...),
				Action:    showAction,
			},
			{
				Name:      "rename",
				Before:    checkFlagOrder,
				Usage:     "Rename an activity",
				ArgsUsage: "OLD NEW",
				Action:    renameAction,
			},
			{
				Name:      "delete",
				Before:    checkFlagOrder,
				Usage:     "Delete an activity and its history",
				ArgsUsage: "[--force] TITLE",
				Flags:     []cli.Flag{forceFlag},
				Action:    deleteAction,
			},
			{
				Name:      "remove-repeat",
				Before:    checkFlagOrder,
				Usage:     "Remove one repeat of an activity (1 is the most recent)",
				ArgsUsage: "[--force] TITLE N",
				Flags:     []cli.Flag{forceFlag},
				Action:    removeRepeatAction,
			},
			{
				Name:   "timers",
				Usage:  "List persisted timer records",
				Flags:  displayFlags,
				Action: timersAction,
			},
			{
				Name:   "delete-timer",
				Usage:  "Delete persisted timer records",
				Flags:  []cli.Flag{allFlag, forceFlag},
				Action: deleteTimerAction,
			},
			{
				Name:   "serve",
				Usage:  "Serve timers and activities as a JSON API",
				Flags:  []cli.Flag{portFlag},
				Action: serveAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
			debugFlag,
		},
		Before: beforeAction,
		After:  afterAction,
	}
}
