package app

import (
	"github.com/urfave/cli/v2"
)

// activitiesAction prints every recorded activity.
func activitiesAction(ctx *cli.Context) error {
	e, err := newEnv(ctx, false)
	if err != nil {
		return err
	}

	defer e.close()

	return e.reporter().List(ctx.Bool("json"))
}

// showAction prints the statistics and history of one activity.
func showAction(ctx *cli.Context) error {
	title := ctx.Args().First()
	if title == "" {
		return errMissingArg.Fmt("TITLE")
	}

	e, err := newEnv(ctx, false)
	if err != nil {
		return err
	}

	defer e.close()

	return e.reporter().Show(title, ctx.Bool("json"))
}

// timersAction prints the persisted timer records.
func timersAction(ctx *cli.Context) error {
	e, err := newEnv(ctx, false)
	if err != nil {
		return err
	}

	defer e.close()

	timers, err := e.db.Timers()
	if err != nil {
		return err
	}

	return e.reporter().Timers(timers, e.clock.Now())
}
