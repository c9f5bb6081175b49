package activity

import "github.com/ayoisaiah/elapsed/internal/apperr"

var (
	errEmptyTitle = &apperr.Error{
		Message: "activity title cannot be empty",
	}

	errNotFound = &apperr.Error{
		Message: "activity %q does not exist",
	}

	errRepeatIndex = &apperr.Error{
		Message: "activity %q has no repeat #%d",
	}
)
