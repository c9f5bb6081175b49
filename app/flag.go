package app

import "github.com/urfave/cli/v2"

var (
	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Start the timer in the past (e.g. '20 mins ago' or '7:30am')",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:    "debug",
		Usage:   "Write debug messages to the log file",
		EnvVars: []string{"ELAPSED_DEBUG"},
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:  "disable-notification",
		Usage: "Disable the periodic reminder notifications",
	}

	millisecondsFlag = &cli.BoolFlag{
		Name:    "milliseconds",
		Aliases: []string{"ms"},
		Usage:   "Show tenths of a second",
	}

	fullFormatFlag = &cli.BoolFlag{
		Name:    "full-format",
		Aliases: []string{"f"},
		Usage:   "Always show hours (HH:MM:SS)",
	}

	titleFlag = &cli.StringFlag{
		Name:    "title",
		Aliases: []string{"t"},
		Usage:   "Record the repeat under this activity instead of the timer's label",
	}

	discardFlag = &cli.BoolFlag{
		Name:  "discard",
		Usage: "End the timer without recording a repeat",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	forceFlag = &cli.BoolFlag{
		Name:  "force",
		Usage: "Do not ask for confirmation",
	}

	allFlag = &cli.BoolFlag{
		Name:  "all",
		Usage: "Delete every timer record",
	}

	portFlag = &cli.UintFlag{
		Name:  "port",
		Usage: "Specify the port for the API server",
		Value: 1111,
	}
)
