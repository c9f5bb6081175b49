package stats

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Delete removes an activity and all its repeats after confirmation.
func (r *Reporter) Delete(title string, force bool) error {
	a, err := r.svc.Get(title)
	if err != nil {
		return err
	}

	if !force {
		ok, err := r.confirm(fmt.Sprintf(
			"Delete %q and its %d repeats permanently?",
			a.Title,
			len(a.Repeats),
		))
		if err != nil || !ok {
			return err
		}
	}

	err = r.svc.Delete(a.Title)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Deleted %q", a.Title)

	return nil
}

// RemoveRepeat deletes the nth repeat (1 is the most recent) of an activity.
func (r *Reporter) RemoveRepeat(title string, n int, force bool) error {
	if !force {
		ok, err := r.confirm(fmt.Sprintf("Remove repeat #%d of %q?", n, title))
		if err != nil || !ok {
			return err
		}
	}

	err := r.svc.RemoveRepeat(title, n-1)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Removed repeat #%d of %q", n, title)

	return nil
}
