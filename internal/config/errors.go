package config

import "github.com/ayoisaiah/elapsed/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidRemindInterval = &apperr.Error{
		Message: "reminder interval must be 0 (disabled) or between %v and %v, got %v",
	}

	errInvalidCmd = &apperr.Error{
		Message: "unable to parse settings.cmd",
	}

	errInvalidSince = &apperr.Error{
		Message: "invalid --since value %q",
	}

	errFutureSince = &apperr.Error{
		Message: "--since must not be in the future",
	}
)
