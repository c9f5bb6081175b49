package app

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/elapsed/internal/models"
)

func confirm(question string) (bool, error) {
	var ok bool

	err := huh.NewConfirm().
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()

	return ok, err
}

// promptTitle asks for the activity a repeat should be recorded under,
// offering the known titles as suggestions.
func promptTitle(known []*models.Activity) (string, error) {
	suggestions := make([]string, 0, len(known))
	for _, a := range known {
		suggestions = append(suggestions, a.Title)
	}

	var title string

	err := huh.NewInput().
		Title("Which activity was this?").
		Suggestions(suggestions).
		Value(&title).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errNoTitle
			}

			return nil
		}).
		Run()

	return strings.TrimSpace(title), err
}

// selectTimers asks which of the given timer records to act on.
func selectTimers(timers []*models.Timer, labels []string) ([]string, error) {
	opts := make([]huh.Option[string], 0, len(timers))

	for i, t := range timers {
		opts = append(opts, huh.NewOption(labels[i], t.ID))
	}

	var ids []string

	err := huh.NewMultiSelect[string]().
		Title("Select the timers to delete").
		Options(opts...).
		Value(&ids).
		Run()

	return ids, err
}
