package stats

import (
	"github.com/pterm/pterm"
)

// Rename gives an activity a new title.
func (r *Reporter) Rename(oldTitle, newTitle string) error {
	err := r.svc.Rename(oldTitle, newTitle)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Renamed %q to %q", oldTitle, newTitle)

	return nil
}
