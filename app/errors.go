package app

import "github.com/ayoisaiah/elapsed/internal/apperr"

var (
	errNoTimer = &apperr.Error{
		Message: "no timer in progress: start one with 'elapsed start'",
	}

	errMissingArg = &apperr.Error{
		Message: "missing argument: %s",
	}

	errRepeatNumber = &apperr.Error{
		Message: "%q is not a valid repeat number",
	}

	errNoTitle = &apperr.Error{
		Message: "a title is required to record a repeat",
	}

	errFlagAfterArg = &apperr.Error{
		Message: "flags must precede arguments: move %q before %q",
	}

	errHookCmd = &apperr.Error{
		Message: "settings.cmd failed",
	}
)
