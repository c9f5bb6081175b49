package app

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

// deleteAction removes an activity and all its repeats.
func deleteAction(ctx *cli.Context) error {
	title := ctx.Args().First()
	if title == "" {
		return errMissingArg.Fmt("TITLE")
	}

	e, err := newEnv(ctx, false)
	if err != nil {
		return err
	}

	defer e.close()

	return e.reporter().Delete(title, ctx.Bool("force"))
}

// removeRepeatAction removes one repeat of an activity, numbered as in the
// show command.
func removeRepeatAction(ctx *cli.Context) error {
	if ctx.NArg() < 2 {
		return errMissingArg.Fmt("TITLE and repeat number")
	}

	title := ctx.Args().Get(0)

	n, err := strconv.Atoi(ctx.Args().Get(1))
	if err != nil || n < 1 {
		return errRepeatNumber.Fmt(ctx.Args().Get(1))
	}

	e, err := newEnv(ctx, false)
	if err != nil {
		return err
	}

	defer e.close()

	return e.reporter().RemoveRepeat(title, n, ctx.Bool("force"))
}

// deleteTimerAction removes timer records chosen by the user, or all of them
// with --all.
func deleteTimerAction(ctx *cli.Context) error {
	e, err := newEnv(ctx, false)
	if err != nil {
		return err
	}

	defer e.close()

	if ctx.Bool("all") {
		if !ctx.Bool("force") {
			ok, err := confirm("Delete every timer record?")
			if err != nil || !ok {
				return err
			}
		}

		err = e.db.DeleteAllTimers()
		if err != nil {
			return err
		}

		pterm.Success.Println("Deleted all timers")

		return nil
	}

	timers, err := e.db.Timers()
	if err != nil {
		return err
	}

	if len(timers) == 0 {
		pterm.Info.Println("No timers to delete")
		return nil
	}

	now := e.clock.Now()

	labels := make([]string, len(timers))

	for i, t := range timers {
		elapsed := "-"
		if d, ok := t.ElapsedAt(now); ok {
			elapsed = e.format(d)
		}

		labels[i] = fmt.Sprintf(
			"%s (%s, created %s)",
			firstNonEmptyString(t.Label(), "unlabelled"),
			elapsed,
			t.CreatedAt.Local().Format(e.cfg.TimeFormat()),
		)
	}

	ids, err := selectTimers(timers, labels)
	if err != nil {
		return err
	}

	for _, id := range ids {
		err = e.db.DeleteTimer(id)
		if err != nil {
			return err
		}
	}

	pterm.Success.Printfln("Deleted %d timer(s)", len(ids))

	return nil
}
